package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/scripture/bible"
	"github.com/s0up4200/scripture/config"
	"github.com/s0up4200/scripture/filter"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  bible.API
	filters *filter.Manager
	out     *printer

	// Global flags
	outputFormat string

	defaultLogging = config.LoggingConfig{Level: "info", Format: "console", Color: true}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scripture",
	Short: "Read and search Bible translations from scripture.api.bible",
	Long: `scripture is a CLI for the scripture.api.bible REST API. It lists
translations, books, chapters, sections and verses, fetches passages and
runs full-text searches. List results can be narrowed with filter
expressions or named presets from the config file.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: auto, json or table (overrides config)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	out, err = newPrinter(os.Stdout, cfg.Output.Format)
	if err != nil {
		return err
	}

	client, err = bible.NewClient(cfg.API.Key, logger,
		bible.WithBaseURL(cfg.API.URL),
		bible.WithTimeout(cfg.API.Timeout),
		bible.WithUserAgent(cfg.API.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create scripture client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the scripture API",
	Long:  `Test the API key against the scripture API and display basic information.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.API.URL)

	resp, err := client.ListBibles(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Println("✓ Connection successful!")

	bibles, err := bible.DecodeData[[]bible.Bible](resp)
	if err != nil {
		return fmt.Errorf("failed to decode bibles: %w", err)
	}

	languages := make(map[string]struct{})
	for _, b := range bibles {
		languages[b.Language.ID] = struct{}{}
	}

	fmt.Printf("\nAPI Statistics:\n")
	fmt.Printf("- Available bibles: %d\n", len(bibles))
	fmt.Printf("- Languages: %d\n", len(languages))

	if names := filters.ListFilters(); len(names) > 0 {
		fmt.Printf("\nFilter presets:\n")
		for _, name := range names {
			fmt.Printf("  • %s\n", name)
		}
	}

	return nil
}
