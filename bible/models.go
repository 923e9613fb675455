package bible

// Typed views of the API payloads. The client never requires them; use
// DecodeData or Response.Decode when a typed value is more convenient than
// the raw map.

// Language describes the language of a Bible
type Language struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	NameLocal       string `json:"nameLocal"`
	Script          string `json:"script"`
	ScriptDirection string `json:"scriptDirection"`
}

// Country is a country a Bible is associated with
type Country struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameLocal string `json:"nameLocal"`
}

// Bible is one published translation
type Bible struct {
	ID                string    `json:"id"`
	DblID             string    `json:"dblId"`
	Abbreviation      string    `json:"abbreviation"`
	AbbreviationLocal string    `json:"abbreviationLocal"`
	Name              string    `json:"name"`
	NameLocal         string    `json:"nameLocal"`
	Description       string    `json:"description"`
	DescriptionLocal  string    `json:"descriptionLocal"`
	Language          Language  `json:"language"`
	Countries         []Country `json:"countries"`
	Type              string    `json:"type"`
	UpdatedAt         string    `json:"updatedAt"`
	Copyright         string    `json:"copyright,omitempty"`
	Info              string    `json:"info,omitempty"`
}

// Book is a book of a Bible
type Book struct {
	ID           string           `json:"id"`
	BibleID      string           `json:"bibleId"`
	Abbreviation string           `json:"abbreviation"`
	Name         string           `json:"name"`
	NameLong     string           `json:"nameLong"`
	Chapters     []ChapterSummary `json:"chapters,omitempty"`
}

// ChapterSummary is a chapter without content, as listed under a book
type ChapterSummary struct {
	ID        string           `json:"id"`
	BibleID   string           `json:"bibleId"`
	BookID    string           `json:"bookId"`
	Number    string           `json:"number"`
	Reference string           `json:"reference"`
	Sections  []SectionSummary `json:"sections,omitempty"`
}

// Ref points at a neighbouring chapter or verse
type Ref struct {
	ID     string `json:"id"`
	BookID string `json:"bookId"`
	Number string `json:"number"`
}

// Chapter is a chapter with its content. Content is a string for html and
// text content types and a nested structure for json.
type Chapter struct {
	ID         string `json:"id"`
	BibleID    string `json:"bibleId"`
	BookID     string `json:"bookId"`
	Number     string `json:"number"`
	Reference  string `json:"reference"`
	Content    any    `json:"content"`
	VerseCount int    `json:"verseCount"`
	Copyright  string `json:"copyright"`
	Next       *Ref   `json:"next,omitempty"`
	Previous   *Ref   `json:"previous,omitempty"`
}

// Passage is an addressable range of verses
type Passage struct {
	ID         string   `json:"id"`
	OrgID      string   `json:"orgId"`
	BibleID    string   `json:"bibleId"`
	BookID     string   `json:"bookId"`
	ChapterIDs []string `json:"chapterIds"`
	Reference  string   `json:"reference"`
	Content    any      `json:"content"`
	VerseCount int      `json:"verseCount"`
	Copyright  string   `json:"copyright"`
}

// SectionSummary is a section without content
type SectionSummary struct {
	ID           string `json:"id"`
	BibleID      string `json:"bibleId"`
	BookID       string `json:"bookId"`
	Title        string `json:"title"`
	FirstVerseID string `json:"firstVerseId"`
	LastVerseID  string `json:"lastVerseId"`
}

// Section is a titled grouping of verses with its content
type Section struct {
	SectionSummary `json:",squash"`
	ChapterID      string `json:"chapterId"`
	Content        any    `json:"content"`
	VerseCount     int    `json:"verseCount"`
	Copyright      string `json:"copyright"`
	Next           *Ref   `json:"next,omitempty"`
	Previous       *Ref   `json:"previous,omitempty"`
}

// Verse is a single verse. Content is only set by GetVerse; search
// results carry Text instead.
type Verse struct {
	ID        string `json:"id"`
	OrgID     string `json:"orgId"`
	BibleID   string `json:"bibleId"`
	BookID    string `json:"bookId"`
	ChapterID string `json:"chapterId"`
	Reference string `json:"reference"`
	Text      string `json:"text,omitempty"`
	Content   any    `json:"content,omitempty"`
	Copyright string `json:"copyright,omitempty"`
	Next      *Ref   `json:"next,omitempty"`
	Previous  *Ref   `json:"previous,omitempty"`
}

// SearchResult is the data member of a search response
type SearchResult struct {
	Query      string    `json:"query"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
	Total      int       `json:"total"`
	VerseCount int       `json:"verseCount"`
	Verses     []Verse   `json:"verses"`
	Passages   []Passage `json:"passages"`
}

// PageSize is the number of results on this page: verses for keyword
// searches, passages for reference searches
func (s *SearchResult) PageSize() int {
	if len(s.Verses) == 0 {
		return len(s.Passages)
	}
	return len(s.Verses)
}

// HasMore reports whether another page of results exists past this one
func (s *SearchResult) HasMore() bool {
	n := s.PageSize()
	return n > 0 && s.Offset+n < s.Total
}
