package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
)

var (
	biblesList     listFlags
	biblesLanguage string
	biblesAbbrev   string
	biblesName     string
	biblesIDs      []string
)

var bibleColumns = []column{
	{"ID", "id"},
	{"ABBREVIATION", "abbreviation"},
	{"NAME", "name"},
	{"LANGUAGE", "language.name"},
}

// biblesCmd represents the bibles command
var biblesCmd = &cobra.Command{
	Use:   "bibles",
	Short: "List available Bible translations",
	Long: `List the Bible translations your API key can access, optionally narrowed
by language, abbreviation, name or IDs.

Examples:
  scripture bibles --language eng
  scripture bibles -f 'containsFold(name, "king james")'`,
	Args: cobra.NoArgs,
	RunE: runBibles,
}

// bibleCmd represents the bible command
var bibleCmd = &cobra.Command{
	Use:   "bible [bibleId]",
	Short: "Show a single Bible translation",
	Long:  `Show the details of one translation. Without an ID it lists all translations.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBible,
}

func init() {
	rootCmd.AddCommand(biblesCmd)
	rootCmd.AddCommand(bibleCmd)

	biblesList.bind(biblesCmd)
	biblesCmd.Flags().StringVar(&biblesLanguage, "language", "", "ISO 639-3 language code, e.g. eng")
	biblesCmd.Flags().StringVar(&biblesAbbrev, "abbreviation", "", "translation abbreviation")
	biblesCmd.Flags().StringVar(&biblesName, "name", "", "translation name")
	biblesCmd.Flags().StringSliceVar(&biblesIDs, "ids", nil, "comma separated translation IDs")
}

func biblesParams() bible.Params {
	return bible.Params{
		bible.ParamLanguage:     biblesLanguage,
		bible.ParamAbbreviation: biblesAbbrev,
		bible.ParamName:         biblesName,
		bible.ParamIDs:          biblesIDs,
	}
}

func runBibles(cmd *cobra.Command, args []string) error {
	resp, err := client.ListBibles(cmd.Context(), biblesParams())
	if err != nil {
		return err
	}
	return biblesList.printList(resp, bibleColumns)
}

func runBible(cmd *cobra.Command, args []string) error {
	var bibleID string
	if len(args) > 0 {
		bibleID = args[0]
	}

	resp, err := client.GetBible(cmd.Context(), bibleID, nil)
	if err != nil {
		return err
	}

	// GetBible without an ID answers with the full list
	if _, isList := resp.Data().([]any); isList {
		return out.List(resp, resp.Items(), bibleColumns)
	}
	return out.Object(resp)
}
