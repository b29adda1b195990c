// Command cafelist drives the cafe list page flows from a terminal: the same
// client the browser runs, against an in-memory page. Card markup goes to
// stdout, alerts are drawn as boxes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/cafelist/config"
)

var (
	// Global flags
	configPath string
	baseURL    string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cafelist",
	Short: "Browse the cafe listing service from a terminal",
	Long: `cafelist runs the cafe list page client outside the browser.

Each subcommand performs one page flow against the backend and prints what
the page would show: the list container's HTML, or the alert text.

The backend location comes from --base-url, CAFELIST_BASE_URL or the
api.base_url key of the --config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if baseURL != "" {
			loaded.API.BaseURL = baseURL
		}
		if loaded.API.BaseURL == "" {
			return fmt.Errorf("no backend configured: set --base-url or CAFELIST_BASE_URL")
		}
		cfg = loaded

		level, err := cfg.Logging.ZapLevel()
		if err != nil {
			return err
		}

		// Initialize logger
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Load every cafe, as the page does on start",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search [location...]",
	Short: "Submit the search form with the given location",
	Long: `Types the location into the search input and submits the form.
Words are joined with spaces. An empty location raises the same warning
the page shows, without calling the backend.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Ask for a random cafe recommendation",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are embedded)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "cafe backend base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd, searchCmd, randomCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
