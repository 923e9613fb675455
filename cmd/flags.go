package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
	"github.com/s0up4200/scripture/filter"
)

// contentFlags are the rendering options shared by every command that
// returns scripture content
type contentFlags struct {
	contentType    string
	notes          bool
	titles         bool
	chapterNumbers bool
	verseNumbers   bool
	verseSpans     bool
	parallels      []string
}

func (f *contentFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.contentType, "content-type", "", "content type: json, html or text (default from config)")
	cmd.Flags().BoolVar(&f.notes, "notes", false, "include footnotes")
	cmd.Flags().BoolVar(&f.titles, "titles", false, "include section titles")
	cmd.Flags().BoolVar(&f.chapterNumbers, "chapter-numbers", false, "include chapter numbers")
	cmd.Flags().BoolVar(&f.verseNumbers, "verse-numbers", false, "include verse numbers")
	cmd.Flags().BoolVar(&f.verseSpans, "verse-spans", false, "include verse spans")
	cmd.Flags().StringSliceVar(&f.parallels, "parallels", nil, "comma separated bible IDs to include as parallels")
}

// params maps the flags onto request options. Unset flags stay falsy and
// are left out of the query.
func (f *contentFlags) params(defaultContentType string) bible.Params {
	contentType := f.contentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return bible.Params{
		bible.ParamContentType:           contentType,
		bible.ParamIncludeNotes:          f.notes,
		bible.ParamIncludeTitles:         f.titles,
		bible.ParamIncludeChapterNumbers: f.chapterNumbers,
		bible.ParamIncludeVerseNumbers:   f.verseNumbers,
		bible.ParamIncludeVerseSpans:     f.verseSpans,
		bible.ParamParallels:             f.parallels,
	}
}

// listFlags select a client-side filter for list results
type listFlags struct {
	expression string
	preset     string
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.expression, "filter", "f", "", "filter expression applied to each result")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "use a preset filter from config")
}

// apply narrows items to those matching the selected filter
func (f *listFlags) apply(items []map[string]any) ([]map[string]any, error) {
	flt, err := filter.Resolve(filters, f.expression, f.preset)
	if err != nil {
		return nil, err
	}

	records := filter.Apply(flt, items)
	if flt != nil {
		logger.Debug().
			Int("total", len(items)).
			Int("matched", len(records)).
			Msg("Applied filter")
	}
	return records, nil
}

// printList filters the response's items and prints them
func (f *listFlags) printList(resp bible.Response, columns []column) error {
	records, err := f.apply(resp.Items())
	if err != nil {
		return err
	}
	return out.List(resp, records, columns)
}
