package sim

import "github.com/dmfed/skirmish/internal/geom"

// tickSpawns advances every player's spawn timer and creates one unit
// per timer that finished this tick. Spawns are queued and applied after
// the pass so a unit created for player 0 never shifts the centroid a
// later timer sees.
func (w *World) tickSpawns(dt float64) {
	type pending struct {
		player PlayerID
		pos    geom.Vec2
		rally  geom.Vec2
	}
	var queue []pending

	for i := range w.timers {
		w.timers[i].Tick(dt)
		if !w.timers[i].JustFinished() {
			continue
		}
		entry := w.spawns[i]
		// Jitter draws in (x, y) order; the draw order is part of the
		// determinism contract.
		jx := w.rng.UniformFloat(-20, 20)
		jy := w.rng.UniformFloat(-20, 20)
		rally, ok := w.playerCentroid(entry.player)
		if !ok {
			rally = entry.anchor
		}
		queue = append(queue, pending{
			player: entry.player,
			pos:    entry.anchor.Add(geom.V(jx, jy)),
			rally:  rally,
		})
	}

	for _, p := range queue {
		w.spawnUnit(p.player, p.pos, p.rally)
	}
}

// playerCentroid returns the average position of the player's alive
// units, or false when the player has none.
func (w *World) playerCentroid(player PlayerID) (geom.Vec2, bool) {
	var sum geom.Vec2
	count := 0
	for _, u := range w.units {
		if u.player == player {
			sum = sum.Add(u.pos)
			count++
		}
	}
	if count == 0 {
		return geom.Vec2{}, false
	}
	return sum.Scale(1 / float64(count)), true
}
