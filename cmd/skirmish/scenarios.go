package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmfed/skirmish/internal/config"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenario presets",
	Long:  `Shows the built-in scenario presets and their board setups.`,
	Run:   runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) {
	fmt.Println("Available scenarios:")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-6s  %s\n", "Name", "Players", "Board", "Spawn interval")
	fmt.Printf("  %-10s  %-8s  %-6s  %s\n", "----", "-------", "-----", "--------------")

	for _, preset := range config.Presets {
		cfg := config.DefaultScenarioConfig()
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			continue
		}
		fmt.Printf("  %-10s  %-8d  %-6.0f  %.1fs\n",
			preset, cfg.Board.Players, cfg.Board.Size, cfg.Board.SpawnInterval)
	}

	fmt.Println()
	fmt.Println("Run 'skirmish play --scenario <name>' to start a battle.")
}
