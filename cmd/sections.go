package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
)

var (
	sectionsList    listFlags
	sectionsContent contentFlags
	sectionsBook    string
	sectionsChapter string
	sectionContent  contentFlags
)

var sectionColumns = []column{
	{"ID", "id"},
	{"TITLE", "title"},
	{"FIRST VERSE", "firstVerseId"},
	{"LAST VERSE", "lastVerseId"},
}

// sectionsCmd represents the sections command
var sectionsCmd = &cobra.Command{
	Use:   "sections <bibleId> (--book <bookId> | --chapter <chapterId>)",
	Short: "List the sections of a book or chapter",
	Args:  cobra.ExactArgs(1),
	RunE:  runSections,
}

// sectionCmd represents the section command
var sectionCmd = &cobra.Command{
	Use:   "section <bibleId> <sectionId>",
	Short: "Show a section with its content",
	Args:  cobra.ExactArgs(2),
	RunE:  runSection,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(sectionCmd)

	sectionsList.bind(sectionsCmd)
	sectionsContent.bind(sectionsCmd)
	sectionsCmd.Flags().StringVar(&sectionsBook, "book", "", "list the sections of this book")
	sectionsCmd.Flags().StringVar(&sectionsChapter, "chapter", "", "list the sections of this chapter")
	sectionsCmd.MarkFlagsMutuallyExclusive("book", "chapter")
	sectionsCmd.MarkFlagsOneRequired("book", "chapter")

	sectionContent.bind(sectionCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	params := sectionsContent.params(cfg.Output.ContentType)

	var (
		resp bible.Response
		err  error
	)
	switch {
	case sectionsBook != "":
		resp, err = client.ListBookSections(cmd.Context(), args[0], sectionsBook, params)
	case sectionsChapter != "":
		resp, err = client.ListChapterSections(cmd.Context(), args[0], sectionsChapter, params)
	default:
		return errors.New("one of --book or --chapter is required")
	}
	if err != nil {
		return err
	}
	return sectionsList.printList(resp, sectionColumns)
}

func runSection(cmd *cobra.Command, args []string) error {
	resp, err := client.GetSection(cmd.Context(), args[0], args[1], sectionContent.params(cfg.Output.ContentType))
	if err != nil {
		return err
	}
	return out.Object(resp)
}
