package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"driftglass/cmd/driftglass/ui"
	"driftglass/internal/config"
	"driftglass/internal/logging"
	"driftglass/internal/page"
	"driftglass/internal/settings"
)

var (
	demoDeckPath  string
	demoWriteDeck string
	demoNoWatch   bool
)

// demoCmd runs the interactive demo page.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive scroll demo",
	Long: `Runs a scrollable deck of sections through the full pipeline: the
persisted settings store, the visibility tracker, and the resolver. The
effects panel (press e) edits the same store the library exposes, and edits
made externally with "driftglass settings set" are picked up live.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoWriteDeck != "" {
		if err := config.DefaultDeck().Save(demoWriteDeck); err != nil {
			return err
		}
		fmt.Printf("wrote default deck to %s\n", demoWriteDeck)
		return nil
	}

	demoLogger, err := logging.New(verbose, demoLogPath())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer demoLogger.Sync()

	deck, err := config.LoadDeck(demoDeckPath)
	if err != nil {
		return err
	}

	store := settings.NewStore(resolveSettingsPath(), demoLogger)

	// Viewport height arrives with the first WindowSizeMsg.
	pg := page.New(deck, 0, demoLogger)
	defer pg.Close()

	model := ui.New(pg, store, ui.DefaultStyles(), demoLogger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Panel edits and external file edits both land here; the update loop
	// receives them as a single message type.
	subID := store.Subscribe(func(s settings.EffectsSettings) {
		program.Send(ui.SettingsMsg(s))
	})
	defer store.Unsubscribe(subID)

	if !demoNoWatch {
		watcher, err := settings.NewWatcher(store, demoLogger)
		if err != nil {
			// Live reload is an extra, not a requirement.
			demoLogger.Warn("settings watcher unavailable", zap.Error(err))
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if err := watcher.Start(ctx); err == nil {
				defer watcher.Stop()
			}
		}
	}

	_, err = program.Run()
	return err
}

func init() {
	demoCmd.Flags().StringVar(&demoDeckPath, "deck", "", "deck YAML file (default: built-in deck)")
	demoCmd.Flags().StringVar(&demoWriteDeck, "write-deck", "", "write the built-in deck to a file and exit")
	demoCmd.Flags().BoolVar(&demoNoWatch, "no-watch", false, "disable live reload of the settings file")
}
