package bible

import (
	"context"
	"net/http"
)

// API defines the scripture operations offered by Client
type API interface {
	ListBibles(ctx context.Context, params Params) (Response, error)
	GetBible(ctx context.Context, bibleID string, params Params) (Response, error)

	ListBooks(ctx context.Context, bibleID string, params Params) (Response, error)
	GetBook(ctx context.Context, bibleID, bookID string, params Params) (Response, error)

	ListChapters(ctx context.Context, bibleID, bookID string, params Params) (Response, error)
	GetChapter(ctx context.Context, bibleID, chapterID string, params Params) (Response, error)

	GetPassage(ctx context.Context, bibleID, passageID string, params Params) (Response, error)
	Search(ctx context.Context, bibleID string, params Params) (Response, error)

	ListBookSections(ctx context.Context, bibleID, bookID string, params Params) (Response, error)
	ListChapterSections(ctx context.Context, bibleID, chapterID string, params Params) (Response, error)
	GetSection(ctx context.Context, bibleID, sectionID string, params Params) (Response, error)

	ListChapterVerses(ctx context.Context, bibleID, chapterID string, params Params) (Response, error)
	GetVerse(ctx context.Context, bibleID, verseID string, params Params) (Response, error)
}

// Transport issues a single GET. Implementations return a transport-level
// error only when no HTTP response was received; a non-2xx status is a
// normal RawResponse.
type Transport interface {
	Get(ctx context.Context, url string, header http.Header) (*RawResponse, error)
}

// RawResponse is the undecoded outcome of a GET
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

var _ API = (*Client)(nil)
