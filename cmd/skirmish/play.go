package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmfed/skirmish/internal/platform/tui"
	"github.com/dmfed/skirmish/internal/sim"
	"github.com/dmfed/skirmish/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a battle",
	Long: `Start an interactive battle in the terminal.

Controls:
  Mouse drag   - Select your units (box select)
  Left click   - Add a unit to the selection, or click empty space to clear
  Right click  - Order selected units to a position
  Space/P      - Pause
  Tab          - Toggle diagnostics line
  Q/Ctrl+C     - Quit (the result is saved)

Examples:
  skirmish play
  skirmish play --scenario duel
  skirmish play --seed 7 --scenario crowded
  skirmish play --config ./my-scenario.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, label, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	params, board, control := cfg.ToSim()
	world, err := sim.New(params, board, control)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the battle still works
		store = nil
	}

	runErr := tui.Run(world, store, label)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running battle: %v\n", runErr)
		os.Exit(1)
	}
}
