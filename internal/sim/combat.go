package sim

import (
	"math"

	"github.com/dmfed/skirmish/internal/geom"
)

// runCombat resolves one tick of support healing, targeting, and laser
// fire. All reads (target selection, distances, supplied membership) use
// the position snapshot taken at the top of the step; damage is queued
// and applied afterwards so results do not depend on unit iteration
// order within the tick.
func (w *World) runCombat(dt float64) {
	snap := w.snapshotUnits()

	pylonPos := make([]geom.Vec2, len(w.pylons))
	for i, p := range w.pylons {
		pylonPos[i] = p.pos
	}
	w.support = buildSupport(snap, w.spawns, pylonPos)

	type damageEvent struct {
		target EntityID
		amount float64
	}
	type shot struct {
		from, to geom.Vec2
	}
	var damages []damageEvent
	var shots []shot

	for _, u := range w.units {
		u.attackTimer.Tick(dt)
		conn := w.support.connections[u.id]
		supplied := w.support.supplied[u.id]

		if supplied && conn > 0 && u.health < u.maxHealth {
			heal := float64(conn) * SupportHealPerSecond * dt
			u.health = math.Min(u.maxHealth, u.health+heal)
		}

		// Nearest enemy by squared distance; ties go to the first unit
		// in snapshot (spawn) order.
		target := -1
		best := math.MaxFloat64
		for i, other := range snap {
			if other.player == u.player {
				continue
			}
			d2 := other.pos.Dist2(u.pos)
			if d2 < best {
				best = d2
				target = i
			}
		}
		if target < 0 {
			continue
		}
		if snap[target].pos.Dist(u.pos) <= LaserRange && u.attackTimer.Finished() {
			mult := 1.0
			if supplied {
				mult += float64(conn)*SupportDamageBonus + w.support.bonus[u.id]
			}
			damages = append(damages, damageEvent{target: snap[target].id, amount: LaserDamage * mult})
			shots = append(shots, shot{from: u.pos, to: snap[target].pos})
			u.attackTimer.Reset()
		}
	}

	dead := make(map[EntityID]bool)
	var deaths []EntityID
	for _, d := range damages {
		target := w.unitByID(d.target)
		if target == nil {
			continue
		}
		target.health -= d.amount
		if target.health <= 0 && !dead[d.target] {
			dead[d.target] = true
			deaths = append(deaths, d.target)
		}
	}

	for _, s := range shots {
		w.addBeam(s.from, s.to, ColorLaser, 4)
	}
	w.emitSupportBeams(snap, pylonPos)

	for _, id := range deaths {
		w.removeUnit(id)
	}
}

// emitSupportBeams spawns the visual link beams: one per support edge,
// green normally and cyan when either endpoint's component is
// pylon-active, plus a blue link from each pylon to every pylon-active
// unit in its radius. The simulation never reads these back.
func (w *World) emitSupportBeams(snap []unitSnap, pylonPos []geom.Vec2) {
	position := make(map[EntityID]geom.Vec2, len(snap))
	for _, u := range snap {
		position[u.id] = u.pos
	}

	for _, link := range w.support.links {
		a, b := link[0], link[1]
		color := ColorSupportLink
		if w.support.pylonActive[a] || w.support.pylonActive[b] {
			color = ColorSupportLinkActive
		}
		w.addBeam(position[a], position[b], color, 2.6)
	}

	for _, pylon := range pylonPos {
		for _, u := range snap {
			if !w.support.pylonActive[u.id] {
				continue
			}
			if u.pos.Dist(pylon) <= PylonRadius {
				w.addBeam(pylon, u.pos, ColorPylonLink, 2.6)
			}
		}
	}
}
