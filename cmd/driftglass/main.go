package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"driftglass/internal/logging"
	"driftglass/internal/settings"
)

var (
	// Global flags
	verbose      bool
	workspace    string
	settingsPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "driftglass",
	Short: "driftglass - scroll-driven effects coordination",
	Long: `driftglass coordinates scroll-driven reveal animations: a persisted
effects-settings store, a visibility tracker with latching, and a pure
presentation resolver.

Run "driftglass demo" for an interactive page that exercises the full
pipeline, or "driftglass settings" to inspect and edit the persisted
configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The demo builds its own file-backed logger so log lines never
		// tear the TUI.
		if cmd.Name() == "demo" {
			return nil
		}

		var err error
		logger, err = logging.New(verbose, "")
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

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file path (default: <workspace>/.driftglass/settings.json)")

	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(demoCmd)
}

// resolveSettingsPath picks the settings file location from flags.
func resolveSettingsPath() string {
	if settingsPath != "" {
		return settingsPath
	}
	ws := workspace
	if ws == "" {
		cwd, err := os.Getwd()
		if err != nil {
			ws = "."
		} else {
			ws = cwd
		}
	}
	return settings.DefaultPath(ws)
}

// demoLogPath returns the demo's log file location, beside the settings file.
func demoLogPath() string {
	dir := filepath.Dir(resolveSettingsPath())
	return filepath.Join(dir, fmt.Sprintf("demo_%s.log", time.Now().Format("2006-01-02")))
}
