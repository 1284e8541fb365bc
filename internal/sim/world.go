package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/dmfed/skirmish/internal/geom"
)

// EntityID is an opaque handle to a simulation entity. Ids are never
// reused within one world.
type EntityID uint64

// UnitKind is a tagged unit variant. Only lasers exist today; new kinds
// need per-variant health and cooldown accessors, nothing else.
type UnitKind int

// KindLaser is the basic ranged combat unit.
const KindLaser UnitKind = iota

// BaseHealth returns the spawn health for the kind.
func (k UnitKind) BaseHealth() float64 {
	switch k {
	case KindLaser:
		return 45
	}
	return 0
}

// AttackCooldown returns the seconds between shots for the kind.
func (k UnitKind) AttackCooldown() float64 {
	switch k {
	case KindLaser:
		return LaserCooldown
	}
	return 0
}

type unit struct {
	id          EntityID
	player      PlayerID
	pos         geom.Vec2
	vel         geom.Vec2
	rally       geom.Vec2
	kind        UnitKind
	health      float64
	maxHealth   float64
	attackTimer Timer
	color       Color
}

type pylonBody struct {
	pos  geom.Vec2
	vel  geom.Vec2
	mass float64
}

type beamEffect struct {
	start     geom.Vec2
	end       geom.Vec2
	color     Color
	thickness float64
	timer     Timer
}

type spawnEntry struct {
	player PlayerID
	anchor geom.Vec2
}

// CommandBatch carries one host frame's worth of pointer state.
// A nil Cursor means the pointer is off the board; commands that need a
// cursor are silently dropped.
type CommandBatch struct {
	Cursor       *geom.Vec2
	LeftPressed  bool
	LeftDown     bool
	LeftReleased bool
	RightPressed bool
}

// World owns every entity of one simulation run. All methods must be
// called from a single goroutine; the fixed-step pipeline relies on the
// read-snapshot-then-apply-writes discipline instead of locks.
type World struct {
	params  Params
	board   Board
	control Control

	rng  *RNG
	tick uint64
	acc  float64

	nextID    EntityID
	units     []*unit
	unitIndex map[EntityID]int
	spawns    []spawnEntry
	timers    []Timer
	pylons    []*pylonBody
	beams     []*beamEffect

	sel     selectionState
	support supportState
}

// New constructs a world from the given settings. The spawn registry,
// the two initial units per player, and the pylons are created here;
// the RNG is seeded exactly once from params.Seed.
func New(params Params, board Board, control Control) (*World, error) {
	if params.FixedDelta <= 0 {
		return nil, fmt.Errorf("sim: fixed delta must be positive, got %v", params.FixedDelta)
	}
	if board.Players < MinPlayers || board.Players > MaxPlayers {
		return nil, fmt.Errorf("sim: player count %d out of range [%d, %d]", board.Players, MinPlayers, MaxPlayers)
	}
	if board.SpawnInterval <= 0 {
		return nil, fmt.Errorf("sim: spawn interval must be positive, got %v", board.SpawnInterval)
	}
	if board.Size <= 0 {
		return nil, fmt.Errorf("sim: board size must be positive, got %v", board.Size)
	}
	if control.LocalPlayer < 0 || int(control.LocalPlayer) >= board.Players {
		return nil, fmt.Errorf("sim: local player %d outside 0..%d", control.LocalPlayer, board.Players-1)
	}

	w := &World{
		params:    params,
		board:     board,
		control:   control,
		rng:       NewRNG(params.Seed),
		nextID:    1,
		unitIndex: make(map[EntityID]int),
	}

	radius := board.Size * 0.35
	for i := 0; i < board.Players; i++ {
		angle := float64(i) / float64(board.Players) * 2 * math.Pi
		anchor := geom.FromAngle(angle).Scale(radius)
		w.spawns = append(w.spawns, spawnEntry{player: PlayerID(i), anchor: anchor})
		w.timers = append(w.timers, NewTimer(board.SpawnInterval, TimerRepeating))

		offset := geom.V(18, 0)
		w.spawnUnit(PlayerID(i), anchor.Add(offset), anchor)
		w.spawnUnit(PlayerID(i), anchor.Sub(offset), anchor)
	}

	w.initPylons()
	return w, nil
}

// Advance drives the fixed-step loop with the elapsed wall-clock time of
// one host frame. Zero or more ticks are emitted, then the command-rate
// systems (selection, orders, pylons, beam expiry) run exactly once, so
// commands issued this frame take effect on the next tick.
func (w *World) Advance(elapsed time.Duration, cmds CommandBatch) {
	dt := elapsed.Seconds()
	if dt < 0 {
		dt = 0
	}

	w.acc += dt
	for w.acc >= w.params.FixedDelta {
		w.acc -= w.params.FixedDelta
		w.step(w.params.FixedDelta)
	}

	w.applyCommands(cmds)
	w.stepPylons(dt)
	w.expireBeams(dt)
}

// step runs one fixed simulation tick. Sub-system order is part of the
// contract: spawning, movement, separation, then combat (which rebuilds
// the support graph before reading it).
func (w *World) step(dt float64) {
	w.tick++
	w.tickSpawns(dt)
	w.moveUnits(dt)
	w.separateUnits()
	w.runCombat(dt)
	w.pruneSelection()
}

func (w *World) spawnUnit(player PlayerID, pos, rally geom.Vec2) EntityID {
	id := w.nextID
	w.nextID++
	u := &unit{
		id:          id,
		player:      player,
		pos:         pos,
		rally:       rally,
		kind:        KindLaser,
		health:      KindLaser.BaseHealth(),
		maxHealth:   KindLaser.BaseHealth(),
		attackTimer: NewTimer(KindLaser.AttackCooldown(), TimerRepeating),
		color:       PlayerColors[int(player)%MaxPlayers],
	}
	w.unitIndex[id] = len(w.units)
	w.units = append(w.units, u)
	return id
}

func (w *World) unitByID(id EntityID) *unit {
	idx, ok := w.unitIndex[id]
	if !ok {
		return nil
	}
	return w.units[idx]
}

// removeUnit deletes a unit, compacting the slice so iteration order
// stays spawn order. Every tie-break in the simulation depends on that.
func (w *World) removeUnit(id EntityID) {
	idx, ok := w.unitIndex[id]
	if !ok {
		return
	}
	copy(w.units[idx:], w.units[idx+1:])
	w.units = w.units[:len(w.units)-1]
	delete(w.unitIndex, id)
	for i := idx; i < len(w.units); i++ {
		w.unitIndex[w.units[i].id] = i
	}
}

type unitSnap struct {
	id     EntityID
	player PlayerID
	pos    geom.Vec2
}

// snapshotUnits captures (id, player, position) for every unit in spawn
// order. Both the separation pass and combat read from a snapshot so
// their writes cannot cascade within a tick.
func (w *World) snapshotUnits() []unitSnap {
	snap := make([]unitSnap, len(w.units))
	for i, u := range w.units {
		snap[i] = unitSnap{id: u.id, player: u.player, pos: u.pos}
	}
	return snap
}

func (w *World) addBeam(start, end geom.Vec2, color Color, thickness float64) {
	w.beams = append(w.beams, &beamEffect{
		start:     start,
		end:       end,
		color:     color,
		thickness: thickness,
		timer:     NewTimer(BeamLifetime, TimerOnce),
	})
}

func (w *World) expireBeams(dt float64) {
	kept := w.beams[:0]
	for _, b := range w.beams {
		b.timer.Tick(dt)
		if !b.timer.Finished() {
			kept = append(kept, b)
		}
	}
	w.beams = kept
}
