package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
)

var (
	versesList   listFlags
	verseContent contentFlags
)

var verseColumns = []column{
	{"ID", "id"},
	{"REFERENCE", "reference"},
}

// versesCmd represents the verses command
var versesCmd = &cobra.Command{
	Use:   "verses <bibleId> <chapterId>",
	Short: "List the verses of a chapter",
	Args:  cobra.ExactArgs(2),
	RunE:  runVerses,
}

// verseCmd represents the verse command
var verseCmd = &cobra.Command{
	Use:   "verse <bibleId> <verseId>...",
	Short: "Show one or more verses",
	Long: `Show verses with their content. Several verse IDs are fetched
concurrently (output.concurrency at a time) and printed in the order given.

Examples:
  scripture verse de4e12af7f28f599-01 JHN.3.16 ROM.5.8 --content-type text`,
	Args: cobra.MinimumNArgs(2),
	RunE: runVerse,
}

func init() {
	rootCmd.AddCommand(versesCmd)
	rootCmd.AddCommand(verseCmd)

	versesList.bind(versesCmd)
	verseContent.bind(verseCmd)
}

func runVerses(cmd *cobra.Command, args []string) error {
	resp, err := client.ListChapterVerses(cmd.Context(), args[0], args[1], nil)
	if err != nil {
		return err
	}
	return versesList.printList(resp, verseColumns)
}

func runVerse(cmd *cobra.Command, args []string) error {
	bibleID := args[0]
	params := verseContent.params(cfg.Output.ContentType)

	responses, err := fetchAll(cmd.Context(), args[1:], cfg.Output.Concurrency,
		func(ctx context.Context, id string) (bible.Response, error) {
			return client.GetVerse(ctx, bibleID, id, params)
		})
	if err != nil {
		return err
	}
	return printAll(responses)
}
