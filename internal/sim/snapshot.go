package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmfed/skirmish/internal/geom"
)

// UnitView is the read-only projection of one unit for rendering and
// tests.
type UnitView struct {
	ID          EntityID
	Player      PlayerID
	Pos         geom.Vec2
	Vel         geom.Vec2
	Health      float64
	MaxHealth   float64
	Color       Color
	Boosted     bool
	Connections int
}

// PylonView is the read-only projection of one pylon.
type PylonView struct {
	Pos  geom.Vec2
	Mass float64
}

// BeamView is the read-only projection of one beam effect.
type BeamView struct {
	Start     geom.Vec2
	End       geom.Vec2
	Color     Color
	Thickness float64
	Remaining float64
}

// AnchorView is the read-only projection of one spawn anchor.
type AnchorView struct {
	Player PlayerID
	Pos    geom.Vec2
	Color  Color
}

// Units returns the alive units in spawn order. Boosted reflects
// supplied-set membership as of the last tick.
func (w *World) Units() []UnitView {
	views := make([]UnitView, len(w.units))
	for i, u := range w.units {
		views[i] = UnitView{
			ID:          u.id,
			Player:      u.player,
			Pos:         u.pos,
			Vel:         u.vel,
			Health:      u.health,
			MaxHealth:   u.maxHealth,
			Color:       u.color,
			Boosted:     w.support.supplied[u.id],
			Connections: w.support.connections[u.id],
		}
	}
	return views
}

// Pylons returns the pylon positions and masses.
func (w *World) Pylons() []PylonView {
	views := make([]PylonView, len(w.pylons))
	for i, p := range w.pylons {
		views[i] = PylonView{Pos: p.pos, Mass: p.mass}
	}
	return views
}

// Beams returns the live beam effects.
func (w *World) Beams() []BeamView {
	views := make([]BeamView, len(w.beams))
	for i, b := range w.beams {
		views[i] = BeamView{
			Start:     b.start,
			End:       b.end,
			Color:     b.color,
			Thickness: b.thickness,
			Remaining: b.timer.Remaining(),
		}
	}
	return views
}

// Anchors returns the immutable spawn anchors with their player colors.
func (w *World) Anchors() []AnchorView {
	views := make([]AnchorView, len(w.spawns))
	for i, s := range w.spawns {
		views[i] = AnchorView{
			Player: s.player,
			Pos:    s.anchor,
			Color:  PlayerColors[int(s.player)%MaxPlayers],
		}
	}
	return views
}

// Selected returns the ids of the currently selected units.
func (w *World) Selected() []EntityID {
	out := make([]EntityID, len(w.sel.selected))
	copy(out, w.sel.selected)
	return out
}

// DragRect returns the live drag rectangle corners while a drag is in
// progress.
func (w *World) DragRect() (start, current geom.Vec2, active bool) {
	return w.sel.start, w.sel.current, w.sel.dragging
}

// Tick returns the number of fixed steps executed so far.
func (w *World) Tick() uint64 {
	return w.tick
}

// Seed returns the RNG seed the world was built with.
func (w *World) Seed() uint64 {
	return w.rng.Seed()
}

// FixedDelta returns the fixed-step duration in seconds.
func (w *World) FixedDelta() float64 {
	return w.params.FixedDelta
}

// BoardSize returns the square board extent.
func (w *World) BoardSize() float64 {
	return w.board.Size
}

// Players returns the number of competing players.
func (w *World) Players() int {
	return w.board.Players
}

// SpawnInterval returns the seconds between reinforcements per player.
func (w *World) SpawnInterval() float64 {
	return w.board.SpawnInterval
}

// LocalPlayer returns the player id selection commands act on.
func (w *World) LocalPlayer() PlayerID {
	return w.control.LocalPlayer
}

// UnitSnapshot is one unit's full dynamic state for determinism checks.
type UnitSnapshot struct {
	ID     EntityID
	Player PlayerID
	Pos    geom.Vec2
	Vel    geom.Vec2
	Health float64
}

// PylonSnapshot is one pylon's full dynamic state.
type PylonSnapshot struct {
	Pos  geom.Vec2
	Vel  geom.Vec2
	Mass float64
}

// Snapshot captures the complete dynamic state of the world for
// determinism verification and replay tests. Two runs with the same
// seed, settings, and command schedule produce equal snapshots at every
// tick boundary.
type Snapshot struct {
	Tick   uint64
	Units  []UnitSnapshot
	Pylons []PylonSnapshot
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{Tick: w.tick}
	s.Units = make([]UnitSnapshot, len(w.units))
	for i, u := range w.units {
		s.Units[i] = UnitSnapshot{
			ID:     u.id,
			Player: u.player,
			Pos:    u.pos,
			Vel:    u.vel,
			Health: u.health,
		}
	}
	s.Pylons = make([]PylonSnapshot, len(w.pylons))
	for i, p := range w.pylons {
		s.Pylons[i] = PylonSnapshot{Pos: p.pos, Vel: p.vel, Mass: p.mass}
	}
	return s
}

// PlayerCentroids returns each player's integer-rounded unit centroid
// and alive count, indexed by player id. Players with no units report a
// zero centroid.
func (w *World) PlayerCentroids() []CentroidStat {
	stats := make([]CentroidStat, w.board.Players)
	sums := make([]geom.Vec2, w.board.Players)
	for _, u := range w.units {
		idx := int(u.player)
		sums[idx] = sums[idx].Add(u.pos)
		stats[idx].Alive++
	}
	for i := range stats {
		stats[i].Player = PlayerID(i)
		if stats[i].Alive > 0 {
			c := sums[i].Scale(1 / float64(stats[i].Alive))
			stats[i].X = int(math.Round(c.X))
			stats[i].Y = int(math.Round(c.Y))
		}
	}
	return stats
}

// CentroidStat summarizes one player's forces.
type CentroidStat struct {
	Player PlayerID
	X, Y   int
	Alive  int
}

// Digest renders the per-player centroid stats as a compact stable
// string, suitable for regression comparison and storage.
func (w *World) Digest() string {
	var b strings.Builder
	for i, s := range w.PlayerCentroids() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "p%d:%d@(%d,%d)", s.Player, s.Alive, s.X, s.Y)
	}
	return b.String()
}
