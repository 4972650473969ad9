package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"driftglass/internal/settings"
)

// settingsCmd groups the persisted-settings surface.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit the persisted effects settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore(resolveSettingsPath(), logger)
		fmt.Println(store.Settings())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Update one setting",
	Long: `Updates a single setting and persists the result.

Keys:
  animationStyle                 fade-up | slide | scale | blur-morph | clip-reveal
  transitionSpeed                fast | normal | slow | off
  parallaxIntensity              off | subtle | normal | intense
  effectToggles.customCursor     true | false
  effectToggles.ambientLighting  true | false
  effectToggles.filmGrain        true | false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore(resolveSettingsPath(), logger)
		if !store.UpdateSetting(args[0], args[1]) {
			return fmt.Errorf("invalid setting %q = %q (see --help for legal values)", args[0], args[1])
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the compiled-in default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore(resolveSettingsPath(), logger)
		store.ResetToDefaults()
		fmt.Println(store.Settings())
		return nil
	},
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all settable keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range settings.Keys() {
			fmt.Println(key)
		}
		return nil
	},
}

// settingsWatchCmd tails the settings file and prints every adopted change.
var settingsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the settings file and print changes as they land",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := settings.NewStore(resolveSettingsPath(), logger)
		store.Subscribe(func(s settings.EffectsSettings) {
			fmt.Println(s)
		})

		watcher, err := settings.NewWatcher(store, logger)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()

		fmt.Printf("watching %s (ctrl-c to stop)\n", store.Path())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWatchCmd)
}
