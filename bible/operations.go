package bible

import (
	"context"
	"strings"
)

// ListBibles gets the Bibles authorized for the API key. Recognized
// params: language (ISO 639-3), abbreviation, name, ids (comma separated
// or []string).
func (c *Client) ListBibles(ctx context.Context, params Params) (Response, error) {
	return c.do(ctx, OpListBibles, params)
}

// GetBible gets a single Bible. An empty bibleID behaves exactly like
// ListBibles with the same params.
func (c *Client) GetBible(ctx context.Context, bibleID string, params Params) (Response, error) {
	if strings.TrimSpace(bibleID) == "" {
		return c.ListBibles(ctx, params)
	}
	return c.do(ctx, OpGetBible, params, bibleID)
}

// ListBooks gets the books of a Bible. Recognized params:
// includeChapters, includeChaptersAndSections.
func (c *Client) ListBooks(ctx context.Context, bibleID string, params Params) (Response, error) {
	return c.do(ctx, OpListBooks, params, bibleID)
}

// GetBook gets a single book. Recognized params: includeChapters.
func (c *Client) GetBook(ctx context.Context, bibleID, bookID string, params Params) (Response, error) {
	return c.do(ctx, OpGetBook, params, bibleID, bookID)
}

// ListChapters gets the chapters of a book.
func (c *Client) ListChapters(ctx context.Context, bibleID, bookID string, params Params) (Response, error) {
	return c.do(ctx, OpListChapters, params, bibleID, bookID)
}

// GetChapter gets a chapter including its content.
func (c *Client) GetChapter(ctx context.Context, bibleID, chapterID string, params Params) (Response, error) {
	return c.do(ctx, OpGetChapter, params, bibleID, chapterID)
}

// GetPassage gets a passage. passageID may name a chapter, a verse or a
// range of verses such as "GEN.1.1-GEN.1.5".
func (c *Client) GetPassage(ctx context.Context, bibleID, passageID string, params Params) (Response, error) {
	return c.do(ctx, OpGetPassage, params, bibleID, passageID)
}

// Search matches verses containing every keyword in params["query"].
// limit defaults to 10 and offset to 0; invalid values fall back to those
// defaults.
func (c *Client) Search(ctx context.Context, bibleID string, params Params) (Response, error) {
	return c.do(ctx, OpSearch, params, bibleID)
}

// ListBookSections gets the sections of a book.
func (c *Client) ListBookSections(ctx context.Context, bibleID, bookID string, params Params) (Response, error) {
	return c.do(ctx, OpListBookSections, params, bibleID, bookID)
}

// ListChapterSections gets the sections of a chapter.
func (c *Client) ListChapterSections(ctx context.Context, bibleID, chapterID string, params Params) (Response, error) {
	return c.do(ctx, OpListChapterSections, params, bibleID, chapterID)
}

// GetSection gets a single section including its content.
func (c *Client) GetSection(ctx context.Context, bibleID, sectionID string, params Params) (Response, error) {
	return c.do(ctx, OpGetSection, params, bibleID, sectionID)
}

// ListChapterVerses gets the verses of a chapter.
func (c *Client) ListChapterVerses(ctx context.Context, bibleID, chapterID string, params Params) (Response, error) {
	return c.do(ctx, OpListChapterVerses, params, bibleID, chapterID)
}

// GetVerse gets a single verse including its content.
func (c *Client) GetVerse(ctx context.Context, bibleID, verseID string, params Params) (Response, error) {
	return c.do(ctx, OpGetVerse, params, bibleID, verseID)
}
