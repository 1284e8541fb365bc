// skirmish is a deterministic real-time-strategy combat sandbox for the
// terminal.
//
// Usage:
//
//	skirmish play                - Play a battle interactively
//	skirmish run                 - Run a battle headless and print the digest
//	skirmish scenarios           - List built-in scenario presets
//	skirmish results             - Browse recorded match history
//	skirmish serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - RNG seed for reproducible battles
//	--scenario <name>   - Scenario preset: duel, standard, crowded
//	--config <path>     - Custom scenario YAML
//	--db <path>         - Match database path (default: ~/.skirmish/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmfed/skirmish/internal/config"
)

var (
	// Global flags
	flagSeed     uint64
	flagScenario string
	flagConfig   string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "Skirmish - deterministic RTS battles in your terminal",
	Long: `Skirmish is a terminal battle sandbox. Colored armies spawn, regroup,
and fight under your mouse: drag to select, right-click to order.
Given the same seed and scenario, every battle replays identically.

Available commands:
  play       - Play a battle interactively
  run        - Run a battle headless and print the final digest
  scenarios  - List built-in scenario presets
  results    - Browse recorded match history
  serve      - Start SSH server for remote play

Examples:
  skirmish play
  skirmish play --scenario duel --seed 7
  skirmish run --seed 42 --frames 3600
  skirmish results
  skirmish serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = use scenario's seed)")
	rootCmd.PersistentFlags().StringVar(&flagScenario, "scenario", "", "Scenario preset: duel, standard, crowded")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scenario YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skirmish/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadScenario resolves the effective scenario from the global flags:
// config file first, then the preset override, then the seed override.
// Returns the config and the label used for saved matches.
func loadScenario() (config.ScenarioConfig, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	label := "standard"
	if flagConfig != "" {
		label = "custom"
	}
	if flagScenario != "" {
		if err := config.ApplyPreset(&cfg, config.ScenarioPreset(flagScenario)); err != nil {
			return cfg, "", err
		}
		label = flagScenario
	}

	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}

	return cfg, label, nil
}
