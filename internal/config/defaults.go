package config

import (
	_ "embed"

	"github.com/dmfed/skirmish/internal/sim"
)

//go:embed defaults/skirmish.yaml
var defaultScenarioYAML []byte

// DefaultScenarioConfig returns the default scenario configuration.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Simulation: SimulationConfig{
			Seed:       sim.DefaultSeed,
			FixedDelta: sim.DefaultFixedDelta,
		},
		Board: BoardConfig{
			Size:          sim.DefaultBoardSize,
			Players:       sim.DefaultPlayerCount,
			SpawnInterval: sim.DefaultSpawnInterval,
		},
		Control: ControlConfig{
			LocalPlayer: 0,
		},
	}
}
