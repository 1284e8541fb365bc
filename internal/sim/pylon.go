package sim

import (
	"math"

	"github.com/dmfed/skirmish/internal/geom"
)

// initPylons places the mobile field sources on orbits around the board
// center. Four draws per pylon, strictly in (radius, angle, speed, mass)
// order; reordering them breaks replay compatibility.
func (w *World) initPylons() {
	for i := 0; i < PylonCount; i++ {
		radius := w.rng.UniformFloat(0.15*w.board.Size, 0.30*w.board.Size)
		angle := w.rng.UniformFloat(0, 2*math.Pi)
		speed := w.rng.UniformFloat(20, 60)
		mass := w.rng.UniformFloat(1, 2)
		w.pylons = append(w.pylons, &pylonBody{
			pos:  geom.FromAngle(angle).Scale(radius),
			vel:  geom.V(-math.Sin(angle), math.Cos(angle)).Scale(speed),
			mass: mass,
		})
	}
}

// stepPylons integrates the mutual gravitation of the pylons with the
// host frame's elapsed time. Accelerations are computed from a snapshot
// before any position changes. The softening floor applies to the
// squared distance, so close encounters stay bounded without ever
// reordering the force direction.
func (w *World) stepPylons(dt float64) {
	if len(w.pylons) == 0 {
		return
	}

	type pylonSnap struct {
		pos  geom.Vec2
		mass float64
	}
	snap := make([]pylonSnap, len(w.pylons))
	for i, p := range w.pylons {
		snap[i] = pylonSnap{pos: p.pos, mass: p.mass}
	}

	acc := make([]geom.Vec2, len(snap))
	for i := range snap {
		for j := range snap {
			if i == j {
				continue
			}
			offset := snap[j].pos.Sub(snap[i].pos)
			dist2 := math.Max(offset.Len2(), pylonSofteningFloor)
			acc[i] = acc[i].Add(offset.Normalize().Scale(PylonGravity * snap[j].mass / dist2))
		}
	}

	boundary := w.board.Size * 0.45
	for i, p := range w.pylons {
		p.vel = p.vel.Add(acc[i].Scale(dt)).ClampLen(PylonMaxSpeed)
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if math.Abs(p.pos.X) > boundary {
			p.pos.X = geom.Clamp(p.pos.X, -boundary, boundary)
			p.vel.X = -p.vel.X
		}
		if math.Abs(p.pos.Y) > boundary {
			p.pos.Y = geom.Clamp(p.pos.Y, -boundary, boundary)
			p.vel.Y = -p.vel.Y
		}
	}
}
