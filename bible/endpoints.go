package bible

// Operation identifies one logical endpoint of the scripture API
type Operation int

const (
	OpListBibles Operation = iota
	OpGetBible
	OpListBooks
	OpGetBook
	OpListChapters
	OpGetChapter
	OpGetPassage
	OpSearch
	OpListBookSections
	OpListChapterSections
	OpGetSection
	OpListChapterVerses
	OpGetVerse
)

// String returns the operation name used in logs and errors
func (op Operation) String() string {
	if ep, ok := endpoints[op]; ok {
		return ep.name
	}
	return "unknown operation"
}

// fieldKind controls how a query field is validated and serialized
type fieldKind int

const (
	// kindString emits the value verbatim when it is truthy
	kindString fieldKind = iota
	// kindBool emits "true" when enabled and nothing otherwise
	kindBool
	// kindNumber emits a non-negative numeric value or falls back to def
	kindNumber
	// kindContentType is always emitted, resolved against json/html/text
	kindContentType
)

// field maps one logical option onto one query parameter
type field struct {
	wire string
	keys []string // logical option names, first match wins
	kind fieldKind
	def  string
}

// endpoint describes one operation: its path template, the path
// parameters the template needs (in positional order) and its query
// fields in canonical emission order.
type endpoint struct {
	name       string
	path       string
	pathParams []string
	fields     []field
}

// Path parameter names used in the templates
const (
	pathBibleID   = "bibleId"
	pathBookID    = "bookId"
	pathChapterID = "chapterId"
	pathPassageID = "passageId"
	pathVerseID   = "verseId"
	pathSectionID = "sectionId"
)

// contentFields are shared by every endpoint that returns scripture text
var contentFields = []field{
	{wire: "include-notes", keys: []string{ParamIncludeNotes}, kind: kindBool},
	{wire: "include-titles", keys: []string{ParamIncludeTitles}, kind: kindBool},
	{wire: "include-chapter-numbers", keys: []string{ParamIncludeChapterNumbers}, kind: kindBool},
	{wire: "include-verse-numbers", keys: []string{ParamIncludeVerseNumbers}, kind: kindBool},
	{wire: "include-verse-spans", keys: []string{ParamIncludeVerseSpans}, kind: kindBool},
	{wire: "parallels", keys: []string{ParamParallels}, kind: kindString},
	{wire: "content-type", keys: []string{ParamContentType}, kind: kindContentType},
}

var endpoints = map[Operation]endpoint{
	OpListBibles: {
		name: "list bibles",
		path: "/bibles",
		fields: []field{
			{wire: "language", keys: []string{ParamLanguage}, kind: kindString},
			{wire: "abbreviation", keys: []string{ParamAbbreviation}, kind: kindString},
			{wire: "name", keys: []string{ParamName}, kind: kindString},
			{wire: "ids", keys: []string{ParamIDs}, kind: kindString},
		},
	},
	OpGetBible: {
		name:       "get bible",
		path:       "/bibles/{bibleId}",
		pathParams: []string{pathBibleID},
	},
	OpListBooks: {
		name:       "list books",
		path:       "/bibles/{bibleId}/books",
		pathParams: []string{pathBibleID},
		fields: []field{
			{wire: "include-chapters", keys: []string{ParamIncludeChapters}, kind: kindBool},
			{wire: "include-chapters-and-sections", keys: []string{ParamIncludeChaptersAndSections, "includeChaptersAndSection"}, kind: kindBool},
		},
	},
	OpGetBook: {
		name:       "get book",
		path:       "/bibles/{bibleId}/books/{bookId}",
		pathParams: []string{pathBibleID, pathBookID},
		fields: []field{
			{wire: "include-chapters", keys: []string{ParamIncludeChapters}, kind: kindBool},
		},
	},
	OpListChapters: {
		name:       "list chapters",
		path:       "/bibles/{bibleId}/books/{bookId}/chapters",
		pathParams: []string{pathBibleID, pathBookID},
	},
	OpGetChapter: {
		name:       "get chapter",
		path:       "/bibles/{bibleId}/chapters/{chapterId}",
		pathParams: []string{pathBibleID, pathChapterID},
		fields:     contentFields,
	},
	OpGetPassage: {
		name:       "get passage",
		path:       "/bibles/{bibleId}/passages/{passageId}",
		pathParams: []string{pathBibleID, pathPassageID},
		fields:     contentFields,
	},
	OpSearch: {
		name:       "search",
		path:       "/bibles/{bibleId}/search",
		pathParams: []string{pathBibleID},
		fields: []field{
			{wire: "query", keys: []string{ParamQuery}, kind: kindString},
			{wire: "limit", keys: []string{ParamLimit}, kind: kindNumber, def: "10"},
			{wire: "offset", keys: []string{ParamOffset}, kind: kindNumber, def: "0"},
		},
	},
	OpListBookSections: {
		name:       "list book sections",
		path:       "/bibles/{bibleId}/books/{bookId}/sections",
		pathParams: []string{pathBibleID, pathBookID},
		fields:     contentFields,
	},
	OpListChapterSections: {
		name:       "list chapter sections",
		path:       "/bibles/{bibleId}/chapters/{chapterId}/sections",
		pathParams: []string{pathBibleID, pathChapterID},
		fields:     contentFields,
	},
	OpGetSection: {
		name:       "get section",
		path:       "/bibles/{bibleId}/sections/{sectionId}",
		pathParams: []string{pathBibleID, pathSectionID},
		fields:     contentFields,
	},
	OpListChapterVerses: {
		name:       "list chapter verses",
		path:       "/bibles/{bibleId}/chapters/{chapterId}/verses",
		pathParams: []string{pathBibleID, pathChapterID},
	},
	OpGetVerse: {
		name:       "get verse",
		path:       "/bibles/{bibleId}/verses/{verseId}",
		pathParams: []string{pathBibleID, pathVerseID},
		fields:     contentFields,
	},
}
