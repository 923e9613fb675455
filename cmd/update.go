package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/scripture"

var (
	appVersion = "dev"
	buildTime  = "unknown"

	checkOnly bool
)

// SetVersion records the build metadata injected by main
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
	rootCmd.Version = version
}

// noConfig skips config loading for commands that never call the API
func noConfig(cmd *cobra.Command, args []string) error {
	logger = setupLogger(defaultLogging)
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: noConfig,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scripture %s (built %s, %s/%s)\n", appVersion, buildTime, runtime.GOOS, runtime.GOARCH)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update scripture to the latest release",
	Long:              `Check GitHub for a newer release and replace the running binary with it.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: noConfig,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if appVersion == "dev" {
		return fmt.Errorf("cannot update a development build")
	}

	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("invalid current version %q: %w", appVersion, err)
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("invalid release version %q: %w", latest.Version(), err)
	}

	if latestVersion.LTE(current) {
		fmt.Printf("✓ scripture %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Printf("Update available: %s → %s\n", current, latestVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().
		Str("from", current.String()).
		Str("to", latestVersion.String()).
		Str("asset", latest.AssetName).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Printf("✓ Updated to %s\n", latestVersion)
	return nil
}
