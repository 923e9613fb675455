package cmd

import (
	"context"
	"maps"

	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
)

var (
	passageContent contentFlags
	searchList     listFlags
	searchLimit    int
	searchOffset   int
)

var searchVerseColumns = []column{
	{"ID", "id"},
	{"REFERENCE", "reference"},
	{"TEXT", "text"},
}

var searchPassageColumns = []column{
	{"ID", "id"},
	{"REFERENCE", "reference"},
	{"VERSES", "verseCount"},
}

// passageCmd represents the passage command
var passageCmd = &cobra.Command{
	Use:   "passage <bibleId> <passageId>...",
	Short: "Show one or more passages",
	Long: `Show passages such as GEN.1.1-GEN.1.5. Several passage IDs are fetched
concurrently and printed in the order given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPassage,
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <bibleId> <query>",
	Short: "Search a Bible for keywords or a passage reference",
	Long: `Search a Bible for keywords or a passage reference.

Examples:
  scripture search de4e12af7f28f599-01 "love one another" --limit 20`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(passageCmd)
	rootCmd.AddCommand(searchCmd)

	passageContent.bind(passageCmd)

	searchList.bind(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
}

func runPassage(cmd *cobra.Command, args []string) error {
	bibleID := args[0]
	params := passageContent.params(cfg.Output.ContentType)

	responses, err := fetchAll(cmd.Context(), args[1:], cfg.Output.Concurrency,
		func(ctx context.Context, id string) (bible.Response, error) {
			return client.GetPassage(ctx, bibleID, id, params)
		})
	if err != nil {
		return err
	}
	return printAll(responses)
}

func runSearch(cmd *cobra.Command, args []string) error {
	resp, err := client.Search(cmd.Context(), args[0], bible.Params{
		bible.ParamQuery:  args[1],
		bible.ParamLimit:  searchLimit,
		bible.ParamOffset: searchOffset,
	})
	if err != nil {
		return err
	}
	return printSearch(resp)
}

// printSearch prints the verses or passages of a search response. JSON
// output keeps the rest of the search data, such as query and total.
func printSearch(resp bible.Response) error {
	result, err := bible.DecodeData[bible.SearchResult](resp)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("query", result.Query).
		Int("total", result.Total).
		Msg("Search complete")

	// Reference searches answer with passages, keyword searches with verses
	key, columns := "verses", searchVerseColumns
	if len(result.Verses) == 0 && len(result.Passages) > 0 {
		key, columns = "passages", searchPassageColumns
	}

	data, _ := resp.Data().(map[string]any)
	page := bible.Response{"data": data[key]}
	records, err := searchList.apply(page.Items())
	if err != nil {
		return err
	}

	if !out.table {
		body := maps.Clone(data)
		if body == nil {
			body = make(map[string]any)
		}
		body[key] = records

		filtered := bible.Response{"data": body}
		if meta := resp.Meta(); meta != nil {
			filtered["meta"] = meta
		}
		return out.JSON(filtered)
	}

	if err := out.List(page, records, columns); err != nil {
		return err
	}
	if result.HasMore() {
		n := result.PageSize()
		logger.Info().Msgf("Showing %d of %d results, use --offset %d for more", n, result.Total, result.Offset+n)
	}
	return nil
}
