package bible

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://api.scripture.api.bible/v1"

func buildURL(t *testing.T, op Operation, params Params, ids ...string) string {
	t.Helper()
	req, err := BuildRequest(testBase, "test-key", op, params, ids...)
	require.NoError(t, err)
	return req.URL
}

func TestBuildRequestMandatoryOnly(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		ids  []string
		want string
	}{
		{"list bibles", OpListBibles, nil, testBase + "/bibles"},
		{"get bible", OpGetBible, []string{"de4e12af7f28f599-01"}, testBase + "/bibles/de4e12af7f28f599-01"},
		{"list books", OpListBooks, []string{"b1"}, testBase + "/bibles/b1/books"},
		{"get book", OpGetBook, []string{"b1", "GEN"}, testBase + "/bibles/b1/books/GEN"},
		{"list chapters", OpListChapters, []string{"b1", "GEN"}, testBase + "/bibles/b1/books/GEN/chapters"},
		{"get chapter", OpGetChapter, []string{"b1", "GEN.1"}, testBase + "/bibles/b1/chapters/GEN.1?content-type=json"},
		{"get passage", OpGetPassage, []string{"b1", "GEN.1.1-GEN.1.5"}, testBase + "/bibles/b1/passages/GEN.1.1-GEN.1.5?content-type=json"},
		{"search", OpSearch, []string{"b1"}, testBase + "/bibles/b1/search?limit=10&offset=0"},
		{"list book sections", OpListBookSections, []string{"b1", "GEN"}, testBase + "/bibles/b1/books/GEN/sections?content-type=json"},
		{"list chapter sections", OpListChapterSections, []string{"b1", "GEN.1"}, testBase + "/bibles/b1/chapters/GEN.1/sections?content-type=json"},
		{"get section", OpGetSection, []string{"b1", "GEN.S1"}, testBase + "/bibles/b1/sections/GEN.S1?content-type=json"},
		{"list chapter verses", OpListChapterVerses, []string{"b1", "GEN.1"}, testBase + "/bibles/b1/chapters/GEN.1/verses"},
		{"get verse", OpGetVerse, []string{"b1", "GEN.1.1"}, testBase + "/bibles/b1/verses/GEN.1.1?content-type=json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildURL(t, tt.op, nil, tt.ids...)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "&&")
			assert.NotRegexp(t, `[?&]$`, got)
		})
	}
}

func TestBuildRequestCanonicalOrder(t *testing.T) {
	params := Params{
		ParamParallels:             "b2",
		ParamContentType:           "html",
		ParamIncludeVerseSpans:     true,
		ParamIncludeVerseNumbers:   true,
		ParamIncludeChapterNumbers: true,
		ParamIncludeTitles:         true,
		ParamIncludeNotes:          true,
	}

	got := buildURL(t, OpGetChapter, params, "b1", "GEN.1")
	want := testBase + "/bibles/b1/chapters/GEN.1?include-notes=true&include-titles=true" +
		"&include-chapter-numbers=true&include-verse-numbers=true&include-verse-spans=true" +
		"&parallels=b2&content-type=html"
	assert.Equal(t, want, got)
}

func TestBuildRequestListBiblesFilters(t *testing.T) {
	t.Run("all filters", func(t *testing.T) {
		got := buildURL(t, OpListBibles, Params{
			ParamIDs:          "a,b",
			ParamName:         "King James",
			ParamAbbreviation: "KJV",
			ParamLanguage:     "eng",
		})
		assert.Equal(t, testBase+"/bibles?language=eng&abbreviation=KJV&name=King+James&ids=a%2Cb", got)
	})

	t.Run("only last filter", func(t *testing.T) {
		got := buildURL(t, OpListBibles, Params{ParamIDs: []string{"a", "b"}})
		assert.Equal(t, testBase+"/bibles?ids=a%2Cb", got)
	})

	t.Run("only first filter", func(t *testing.T) {
		got := buildURL(t, OpListBibles, Params{ParamLanguage: "eng"})
		assert.Equal(t, testBase+"/bibles?language=eng", got)
	})

	t.Run("empty values omitted", func(t *testing.T) {
		got := buildURL(t, OpListBibles, Params{ParamLanguage: "", ParamName: nil, ParamIDs: []string{}})
		assert.Equal(t, testBase+"/bibles", got)
	})
}

func TestBuildRequestFalsyBooleans(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "false is omitted",
			params: Params{ParamIncludeChapters: false, ParamIncludeChaptersAndSections: false},
			want:   testBase + "/bibles/b1/books",
		},
		{
			name:   "true is emitted",
			params: Params{ParamIncludeChapters: true, ParamIncludeChaptersAndSections: true},
			want:   testBase + "/bibles/b1/books?include-chapters=true&include-chapters-and-sections=true",
		},
		{
			name:   "only second flag",
			params: Params{ParamIncludeChaptersAndSections: true},
			want:   testBase + "/bibles/b1/books?include-chapters-and-sections=true",
		},
		{
			name:   "legacy singular alias",
			params: Params{"includeChaptersAndSection": true},
			want:   testBase + "/bibles/b1/books?include-chapters-and-sections=true",
		},
		{
			name:   "string booleans",
			params: Params{ParamIncludeChapters: "true", ParamIncludeChaptersAndSections: "false"},
			want:   testBase + "/bibles/b1/books?include-chapters=true",
		},
		{
			name:   "garbage string is unset",
			params: Params{ParamIncludeChapters: "yes please"},
			want:   testBase + "/bibles/b1/books",
		},
		{
			name:   "unknown keys ignored",
			params: Params{"includeEverything": true, "include-chapters": true},
			want:   testBase + "/bibles/b1/books",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildURL(t, OpListBooks, tt.params, "b1"))
		})
	}
}

func TestBuildRequestContentType(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{"HTML", "html"},
		{"html", "html"},
		{"Text", "text"},
		{"json", "json"},
		{"xml", "json"},
		{"json, htnl, text", "json"},
		{nil, "json"},
		{42, "json"},
		{ContentTypeText, "text"},
	}

	for _, tt := range tests {
		params := Params{}
		if tt.input != nil {
			params[ParamContentType] = tt.input
		}
		got := buildURL(t, OpGetVerse, params, "b1", "GEN.1.1")
		assert.Equal(t, testBase+"/bibles/b1/verses/GEN.1.1?content-type="+tt.want, got, "input %v", tt.input)
	}
}

func TestBuildRequestSearchDefaults(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "non numeric falls back",
			params: Params{ParamLimit: "abc", ParamOffset: "-shouldFailNumericCheck"},
			want:   "limit=10&offset=0",
		},
		{
			name:   "numbers verbatim",
			params: Params{ParamLimit: 5, ParamOffset: 20},
			want:   "limit=5&offset=20",
		},
		{
			name:   "numeric strings verbatim",
			params: Params{ParamLimit: "5", ParamOffset: "20"},
			want:   "limit=5&offset=20",
		},
		{
			name:   "NaN and infinity fall back",
			params: Params{ParamLimit: math.NaN(), ParamOffset: math.Inf(1)},
			want:   "limit=10&offset=0",
		},
		{
			name:   "objects fall back",
			params: Params{ParamLimit: map[string]any{"n": 1}, ParamOffset: []int{1}},
			want:   "limit=10&offset=0",
		},
		{
			name:   "negative falls back",
			params: Params{ParamLimit: -5, ParamOffset: "-1"},
			want:   "limit=10&offset=0",
		},
		{
			name:   "go literal forms fall back",
			params: Params{ParamLimit: "1_000", ParamOffset: "0x1p4"},
			want:   "limit=10&offset=0",
		},
		{
			name:   "zero limit falls back",
			params: Params{ParamLimit: 0},
			want:   "limit=10&offset=0",
		},
		{
			name:   "zero string limit falls back",
			params: Params{ParamLimit: "0", ParamOffset: 0},
			want:   "limit=10&offset=0",
		},
		{
			name:   "query first",
			params: Params{ParamQuery: "love one another", ParamLimit: 25},
			want:   "query=love+one+another&limit=25&offset=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildURL(t, OpSearch, tt.params, "b1")
			assert.Equal(t, testBase+"/bibles/b1/search?"+tt.want, got)
		})
	}
}

func TestBuildRequestMissingParameter(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		ids   []string
		param string
	}{
		{"no ids", OpGetChapter, nil, "bibleId"},
		{"empty bible", OpListBooks, []string{""}, "bibleId"},
		{"whitespace book", OpGetBook, []string{"b1", "  "}, "bookId"},
		{"missing verse", OpGetVerse, []string{"b1"}, "verseId"},
		{"missing section", OpGetSection, []string{"b1", ""}, "sectionId"},
		{"missing passage", OpGetPassage, []string{"b1"}, "passageId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest(testBase, "test-key", tt.op, Params{ParamLimit: "abc"}, tt.ids...)
			require.Error(t, err)
			assert.Nil(t, req)
			assert.True(t, errors.Is(err, ErrMissingParameter))

			var mpe *MissingParameterError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, tt.param, mpe.Parameter)
			assert.Equal(t, tt.op, mpe.Operation)
		})
	}
}

func TestBuildRequestHeaders(t *testing.T) {
	req, err := BuildRequest(testBase+"/", "secret", OpListBibles, nil)
	require.NoError(t, err)

	assert.Equal(t, testBase+"/bibles", req.URL)
	assert.Equal(t, "secret", req.Header.Get("api-key"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, OpListBibles, req.Operation)
}

func TestBuildRequestPathEscaping(t *testing.T) {
	got := buildURL(t, OpGetPassage, nil, "b1", "GEN 1/2")
	assert.Equal(t, testBase+"/bibles/b1/passages/GEN%201%2F2?content-type=json", got)
}

func TestBuildRequestDeterministic(t *testing.T) {
	params := Params{
		ParamContentType:         "text",
		ParamIncludeVerseNumbers: true,
		ParamIncludeTitles:       true,
		ParamParallels:           []string{"b2", "b3"},
	}

	first := buildURL(t, OpGetSection, params, "b1", "GEN.S1")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, buildURL(t, OpGetSection, params, "b1", "GEN.S1"))
	}
}

func TestBuildRequestUnknownOperation(t *testing.T) {
	_, err := BuildRequest(testBase, "k", Operation(99), nil)
	require.Error(t, err)
	assert.Equal(t, "unknown operation", Operation(99).String())
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "get chapter", OpGetChapter.String())
	assert.Equal(t, "search", OpSearch.String())
}
