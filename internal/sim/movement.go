package sim

import (
	"math"

	"github.com/dmfed/skirmish/internal/geom"
)

// moveUnits integrates rally-seeking motion with exponential velocity
// smoothing. Units inside one world-unit of their rally point coast to
// a stop instead of oscillating around it.
func (w *World) moveUnits(dt float64) {
	alpha := 1 - math.Exp(-UnitAcceleration*dt)
	for _, u := range w.units {
		delta := u.rally.Sub(u.pos)
		var desired geom.Vec2
		if delta.Len2() > 1 {
			desired = delta.Normalize().Scale(UnitSpeed)
		}
		u.vel = u.vel.Lerp(desired, alpha)
		u.pos = u.pos.Add(u.vel.Scale(dt))
	}
}

// separateUnits pushes same-player units apart when they crowd inside
// the separation radius. Positions are snapshotted before any mutation,
// so the pass is order-independent within a tick. The push nudges both
// the rally target and the velocity; both effects are intended.
func (w *World) separateUnits() {
	snap := w.snapshotUnits()

	for i, u := range w.units {
		var push geom.Vec2
		for j, other := range snap {
			if j == i || other.player != u.player {
				continue
			}
			offset := snap[i].pos.Sub(other.pos)
			d := offset.Len()
			if d > 0.1 && d < UnitSeparationRadius {
				push = push.Add(offset.Normalize().Scale((UnitSeparationRadius - d) / UnitSeparationRadius))
			}
		}
		if push.Len2() > 0 {
			dir := push.Normalize()
			u.rally = u.rally.Add(dir.Scale(5))
			u.vel = u.vel.Add(dir.Scale(SeparationForce)).ClampLen(UnitSpeed * 1.5)
		}
	}
}
