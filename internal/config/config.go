// Package config provides YAML-based scenario configuration loading and
// preset management for the skirmish sandbox.
package config

import (
	"fmt"

	"github.com/dmfed/skirmish/internal/sim"
)

// ScenarioConfig contains all configuration for one simulation run.
type ScenarioConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Board      BoardConfig      `yaml:"board"`
	Control    ControlConfig    `yaml:"control"`
}

// SimulationConfig defines the deterministic core parameters.
type SimulationConfig struct {
	Seed       uint64  `yaml:"seed"`
	FixedDelta float64 `yaml:"fixed_delta"` // seconds per tick; 0 means the stock 1/30
}

// BoardConfig defines the battlefield and its population schedule.
type BoardConfig struct {
	Size          float64 `yaml:"size"`
	Players       int     `yaml:"players"`
	SpawnInterval float64 `yaml:"spawn_interval"`
}

// ControlConfig defines which player the local commands act on.
type ControlConfig struct {
	LocalPlayer int `yaml:"local_player"`
}

// ToSim converts the scenario into simulation settings. A zero
// fixed_delta falls back to the stock tick rate; everything else is
// passed through unchanged and validated by sim.New.
func (c ScenarioConfig) ToSim() (sim.Params, sim.Board, sim.Control) {
	params := sim.Params{
		Seed:       c.Simulation.Seed,
		FixedDelta: c.Simulation.FixedDelta,
	}
	if params.FixedDelta == 0 {
		params.FixedDelta = sim.DefaultFixedDelta
	}
	board := sim.Board{
		Size:          c.Board.Size,
		Players:       c.Board.Players,
		SpawnInterval: c.Board.SpawnInterval,
	}
	control := sim.Control{LocalPlayer: sim.PlayerID(c.Control.LocalPlayer)}
	return params, board, control
}

// ScenarioPreset represents a named battle setup.
type ScenarioPreset string

const (
	PresetDuel     ScenarioPreset = "duel"
	PresetStandard ScenarioPreset = "standard"
	PresetCrowded  ScenarioPreset = "crowded"
)

// Presets lists the known presets in menu order.
var Presets = []ScenarioPreset{PresetDuel, PresetStandard, PresetCrowded}

// ApplyPreset overrides the board section of cfg with a named setup.
// The simulation section (seed, tick rate) is left untouched so replays
// stay comparable across presets.
func ApplyPreset(cfg *ScenarioConfig, preset ScenarioPreset) error {
	switch preset {
	case PresetDuel:
		cfg.Board.Players = 2
		cfg.Board.Size = 1200
		cfg.Board.SpawnInterval = 1.2
	case PresetStandard:
		cfg.Board.Players = 4
		cfg.Board.Size = 1600
		cfg.Board.SpawnInterval = 1.0
	case PresetCrowded:
		cfg.Board.Players = 8
		cfg.Board.Size = 2000
		cfg.Board.SpawnInterval = 0.7
	default:
		return fmt.Errorf("config: unknown scenario preset %q", preset)
	}
	return nil
}
