package filter

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBibles() []Record {
	return []Record{
		{
			"id":           "de4e12af7f28f599-01",
			"abbreviation": "engKJV",
			"name":         "King James (Authorised) Version",
			"language":     map[string]any{"id": "eng", "name": "English"},
			"type":         "text",
		},
		{
			"id":           "9879dbb7cfe39e4d-01",
			"abbreviation": "WEB",
			"name":         "World English Bible",
			"language":     map[string]any{"id": "eng", "name": "English"},
			"type":         "text",
		},
		{
			"id":           "b32b9d1b64b4ef29-01",
			"abbreviation": "SBLGNT",
			"name":         "The Greek New Testament",
			"language":     map[string]any{"id": "grc", "name": "Greek, Ancient"},
			"type":         "text",
			"copyright":    "SBL",
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "field comparison",
			expression: `abbreviation == "WEB"`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `name == "unclosed`,
			wantErr:    true,
		},
		{
			name:       "nested fields and helpers",
			expression: `language.id == "eng" and containsFold(name, "king")`,
		},
		{
			name:       "operators",
			expression: `name contains "Bible" or abbreviation startsWith "SBL"`,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var ce *CompilationError
				assert.True(t, errors.As(err, &ce))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestEvaluate(t *testing.T) {
	bibles := testBibles()

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{"nested language", `language.id == "eng"`, []string{"engKJV", "WEB"}},
		{"case insensitive contains", `containsFold(name, "GREEK")`, []string{"SBLGNT"}},
		{"case insensitive prefix", `hasPrefixFold(abbreviation, "eng")`, []string{"engKJV"}},
		{"case insensitive suffix", `hasSuffixFold(name, "bible")`, []string{"WEB"}},
		{"field presence", `hasField("copyright")`, []string{"SBLGNT"}},
		{"whole record", `item.abbreviation == "WEB"`, []string{"WEB"}},
		{"str helper", `str(language.id) != "grc"`, []string{"engKJV", "WEB"}},
		{"missing field is nil", `missing == nil`, []string{"engKJV", "WEB", "SBLGNT"}},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			got := []string{}
			for _, r := range Apply(f, bibles) {
				got = append(got, r["abbreviation"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyNilFilter(t *testing.T) {
	bibles := testBibles()
	assert.Equal(t, bibles, Apply(nil, bibles))
}

func TestConcurrentEvaluation(t *testing.T) {
	f, err := NewExprCompiler().Compile(`language.id == "eng"`)
	require.NoError(t, err)

	bibles := testBibles()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, Apply(f, bibles), 2)
		}()
	}
	wg.Wait()
}

func TestManager(t *testing.T) {
	manager := NewManager()

	err := manager.RegisterFilters(map[string]string{
		"english": `language.id == "eng"`,
		"greek":   `language.id == "grc"`,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"english", "greek"}, manager.ListFilters())

	f, err := manager.GetFilter("greek")
	require.NoError(t, err)
	assert.Len(t, Apply(f, testBibles()), 1)

	_, err = manager.GetFilter("latin")
	require.Error(t, err)
	var pnf *PresetNotFoundError
	require.True(t, errors.As(err, &pnf))
	assert.Equal(t, "latin", pnf.Name)
	assert.Equal(t, "preset 'latin' not found in config", err.Error())
}

func TestManagerRegisterIsAtomic(t *testing.T) {
	manager := NewManager()

	err := manager.RegisterFilters(map[string]string{
		"good": `id != ""`,
		"bad":  `id ==`,
	})
	require.Error(t, err)
	assert.Empty(t, manager.ListFilters())
}

func TestResolve(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.RegisterFilters(map[string]string{"greek": `language.id == "grc"`}))

	t.Run("expression wins", func(t *testing.T) {
		f, err := Resolve(manager, `abbreviation == "WEB"`, "greek")
		require.NoError(t, err)
		assert.Len(t, Apply(f, testBibles()), 1)
		assert.Equal(t, "WEB", Apply(f, testBibles())[0]["abbreviation"])
	})

	t.Run("preset", func(t *testing.T) {
		f, err := Resolve(manager, "", "greek")
		require.NoError(t, err)
		assert.Equal(t, "SBLGNT", Apply(f, testBibles())[0]["abbreviation"])
	})

	t.Run("neither", func(t *testing.T) {
		f, err := Resolve(manager, " ", "")
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := Resolve(manager, "", "nope")
		require.Error(t, err)
	})
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`id != ""`)
	require.NoError(t, err)

	second, err := compiler.Compile(`id != ""`)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`id == "x"`)
	require.NoError(t, err)
	_, err = compiler.Compile(`name == "x"`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isGreek": func(id string) bool { return id == "grc" },
	}))

	f, err := compiler.Compile(`isGreek(language.id)`)
	require.NoError(t, err)
	assert.Len(t, Apply(f, testBibles()), 1)
}

func TestEvaluateJSONNumbers(t *testing.T) {
	records := []Record{
		{"id": "GEN.1", "verseCount": json.Number("31"), "meta": map[string]any{"rank": json.Number("1.5")}},
		{"id": "GEN.2", "verseCount": json.Number("25"), "meta": map[string]any{"rank": json.Number("0.5")}},
	}

	compiler := NewExprCompiler()

	f, err := compiler.Compile(`verseCount > 30`)
	require.NoError(t, err)
	matched := Apply(f, records)
	require.Len(t, matched, 1)
	assert.Equal(t, "GEN.1", matched[0]["id"])

	f, err = compiler.Compile(`meta.rank < 1`)
	require.NoError(t, err)
	matched = Apply(f, records)
	require.Len(t, matched, 1)
	assert.Equal(t, "GEN.2", matched[0]["id"])

	// Records are left untouched
	assert.Equal(t, json.Number("31"), records[0]["verseCount"])
}
