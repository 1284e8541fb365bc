// Package sim implements a deterministic real-time-strategy combat
// simulation. A World advances in fixed steps: per tick it spawns units,
// integrates rally-seeking movement with separation, rebuilds the
// intra-player support graph, and resolves cooldown-gated laser combat.
// Selection and move orders arrive at host-frame rate through
// CommandBatch values; pylons and beam effects also animate at frame
// rate. Given the same seed, settings, and command schedule, two runs
// are bit-identical.
//
// The package contains pure logic with no external dependencies, in
// particular no terminal or UI imports; rendering lives in
// internal/platform/tui.
package sim

// Tuning constants for the combat sandbox. These values are part of the
// determinism contract: changing any of them changes every replay.
const (
	DefaultSeed          uint64 = 42
	DefaultFixedDelta           = 1.0 / 30.0
	DefaultBoardSize            = 1600.0
	DefaultPlayerCount          = 4
	DefaultSpawnInterval        = 1.0

	// MinPlayers and MaxPlayers bound the accepted player count.
	MinPlayers = 2
	MaxPlayers = 8

	UnitSpeed            = 120.0
	UnitAcceleration     = 8.0
	UnitSeparationRadius = 40.0
	SeparationForce      = 60.0
	FormationSpacing     = 60.0

	LaserRange    = 260.0
	LaserDamage   = 6.0
	LaserCooldown = 0.7
	// LaserHealRange is the support-graph edge length: two same-player
	// units within this distance are connected.
	LaserHealRange = 150.0

	BeamLifetime         = 0.15
	SupportHealPerSecond = 1.0
	SupportDamageBonus   = 0.05

	PylonCount       = 3
	PylonRadius      = 180.0
	PylonDamageBonus = 0.04
	PylonGravity     = 18000.0
	PylonMaxSpeed    = 240.0
	// pylonSofteningFloor is the squared-distance floor for pylon
	// gravity. It is a floor on the squared distance, not the distance.
	pylonSofteningFloor = 4000.0
)

// PlayerID identifies one of the competing players. Valid ids are
// 0..PlayerCount-1.
type PlayerID int

// Params seeds the deterministic core.
type Params struct {
	Seed       uint64
	FixedDelta float64
}

// DefaultParams returns the stock simulation parameters.
func DefaultParams() Params {
	return Params{Seed: DefaultSeed, FixedDelta: DefaultFixedDelta}
}

// Board describes the square battlefield and its population schedule.
type Board struct {
	Size          float64
	Players       int
	SpawnInterval float64
}

// DefaultBoard returns the stock board settings.
func DefaultBoard() Board {
	return Board{
		Size:          DefaultBoardSize,
		Players:       DefaultPlayerCount,
		SpawnInterval: DefaultSpawnInterval,
	}
}

// Control selects which player the selection and order commands act on.
type Control struct {
	LocalPlayer PlayerID
}

// DefaultControl returns control settings for player 0.
func DefaultControl() Control {
	return Control{LocalPlayer: 0}
}

// Color is an opaque display tint. The simulation never reads it.
type Color struct {
	R, G, B float64
}

// PlayerColors assigns a fixed tint per player id.
var PlayerColors = [MaxPlayers]Color{
	{0.93, 0.26, 0.28},
	{0.26, 0.65, 0.93},
	{0.94, 0.76, 0.16},
	{0.63, 0.47, 0.94},
	{0.18, 0.80, 0.57},
	{0.94, 0.44, 0.16},
	{0.22, 0.85, 0.85},
	{0.93, 0.36, 0.60},
}

// Beam tints. Support links turn from green to cyan when the component
// is pylon-active; pylon-to-unit links are blue.
var (
	ColorLaser             = Color{1.0, 0.2, 0.2}
	ColorSupportLink       = Color{0.24, 0.98, 0.55}
	ColorSupportLinkActive = Color{0.22, 0.80, 0.95}
	ColorPylonLink         = Color{0.2, 0.7, 1.0}
)
