package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
)

var (
	booksList           listFlags
	booksChapters       bool
	booksSections       bool
	bookIncludeChapters bool
	chaptersList        listFlags
	chapterContent      contentFlags
)

var bookColumns = []column{
	{"ID", "id"},
	{"ABBREVIATION", "abbreviation"},
	{"NAME", "name"},
	{"LONG NAME", "nameLong"},
}

var chapterColumns = []column{
	{"ID", "id"},
	{"NUMBER", "number"},
	{"REFERENCE", "reference"},
}

// booksCmd represents the books command
var booksCmd = &cobra.Command{
	Use:   "books <bibleId>",
	Short: "List the books of a Bible",
	Args:  cobra.ExactArgs(1),
	RunE:  runBooks,
}

// bookCmd represents the book command
var bookCmd = &cobra.Command{
	Use:   "book <bibleId> <bookId>",
	Short: "Show a single book",
	Args:  cobra.ExactArgs(2),
	RunE:  runBook,
}

// chaptersCmd represents the chapters command
var chaptersCmd = &cobra.Command{
	Use:   "chapters <bibleId> <bookId>",
	Short: "List the chapters of a book",
	Args:  cobra.ExactArgs(2),
	RunE:  runChapters,
}

// chapterCmd represents the chapter command
var chapterCmd = &cobra.Command{
	Use:   "chapter <bibleId> <chapterId>",
	Short: "Show a chapter with its content",
	Long: `Show a chapter with its content.

Examples:
  scripture chapter de4e12af7f28f599-01 GEN.1 --content-type text --verse-numbers`,
	Args: cobra.ExactArgs(2),
	RunE: runChapter,
}

func init() {
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(chapterCmd)

	booksList.bind(booksCmd)
	booksCmd.Flags().BoolVar(&booksChapters, "include-chapters", false, "include chapter summaries for each book")
	booksCmd.Flags().BoolVar(&booksSections, "include-sections", false, "include chapters and their sections for each book")

	bookCmd.Flags().BoolVar(&bookIncludeChapters, "include-chapters", false, "include chapter summaries")

	chaptersList.bind(chaptersCmd)
	chapterContent.bind(chapterCmd)
}

func runBooks(cmd *cobra.Command, args []string) error {
	resp, err := client.ListBooks(cmd.Context(), args[0], bible.Params{
		bible.ParamIncludeChapters:            booksChapters,
		bible.ParamIncludeChaptersAndSections: booksSections,
	})
	if err != nil {
		return err
	}
	return booksList.printList(resp, bookColumns)
}

func runBook(cmd *cobra.Command, args []string) error {
	resp, err := client.GetBook(cmd.Context(), args[0], args[1], bible.Params{
		bible.ParamIncludeChapters: bookIncludeChapters,
	})
	if err != nil {
		return err
	}
	return out.Object(resp)
}

func runChapters(cmd *cobra.Command, args []string) error {
	resp, err := client.ListChapters(cmd.Context(), args[0], args[1], nil)
	if err != nil {
		return err
	}
	return chaptersList.printList(resp, chapterColumns)
}

func runChapter(cmd *cobra.Command, args []string) error {
	resp, err := client.GetChapter(cmd.Context(), args[0], args[1], chapterContent.params(cfg.Output.ContentType))
	if err != nil {
		return err
	}
	return out.Object(resp)
}
