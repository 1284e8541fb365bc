package sim

import "github.com/dmfed/skirmish/internal/geom"

// supportState is the per-tick support graph: intra-player adjacency,
// the supplied sets flooded from each spawn anchor, and the per-component
// pylon bonuses. It is rebuilt from a position snapshot every combat
// step and read both by combat and by the view layer.
type supportState struct {
	connections map[EntityID]int
	adjacency   map[EntityID][]EntityID
	supplied    map[EntityID]bool
	bonus       map[EntityID]float64
	pylonActive map[EntityID]bool
	// links lists each adjacency edge once, in snapshot pair order.
	links [][2]EntityID
}

// buildSupport constructs the support graph for one tick.
//
// Adjacency connects same-player units within LaserHealRange. A unit is
// supplied when it is reachable from any unit within LaserHealRange of
// its own player's anchor; membership depends on reachability alone, not
// on iteration order. Each supplied component gets a uniform damage
// bonus of PylonDamageBonus per member standing within PylonRadius of
// any pylon.
func buildSupport(snap []unitSnap, spawns []spawnEntry, pylons []geom.Vec2) supportState {
	s := supportState{
		connections: make(map[EntityID]int),
		adjacency:   make(map[EntityID][]EntityID),
		supplied:    make(map[EntityID]bool),
		bonus:       make(map[EntityID]float64),
		pylonActive: make(map[EntityID]bool),
	}

	player := make(map[EntityID]PlayerID, len(snap))
	position := make(map[EntityID]geom.Vec2, len(snap))
	for _, u := range snap {
		player[u.id] = u.player
		position[u.id] = u.pos
	}

	for i := 0; i < len(snap); i++ {
		for j := i + 1; j < len(snap); j++ {
			a, b := snap[i], snap[j]
			if a.player != b.player {
				continue
			}
			if a.pos.Dist(b.pos) <= LaserHealRange {
				s.connections[a.id]++
				s.connections[b.id]++
				s.adjacency[a.id] = append(s.adjacency[a.id], b.id)
				s.adjacency[b.id] = append(s.adjacency[b.id], a.id)
				s.links = append(s.links, [2]EntityID{a.id, b.id})
			}
		}
	}

	var components [][]EntityID
	for _, entry := range spawns {
		var queue []EntityID
		var component []EntityID
		for _, u := range snap {
			if u.player != entry.player {
				continue
			}
			if u.pos.Dist(entry.anchor) <= LaserHealRange && !s.supplied[u.id] {
				s.supplied[u.id] = true
				queue = append(queue, u.id)
				component = append(component, u.id)
			}
		}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, neighbor := range s.adjacency[current] {
				if player[neighbor] != entry.player || s.supplied[neighbor] {
					continue
				}
				s.supplied[neighbor] = true
				queue = append(queue, neighbor)
				component = append(component, neighbor)
			}
		}
		if len(component) > 0 {
			components = append(components, component)
		}
	}

	for _, component := range components {
		bonus := 0.0
		active := false
		for _, id := range component {
			pos := position[id]
			for _, pylon := range pylons {
				if pos.Dist(pylon) <= PylonRadius {
					bonus += PylonDamageBonus
					active = true
					break
				}
			}
		}
		for _, id := range component {
			s.bonus[id] = bonus
			if active {
				s.pylonActive[id] = true
			}
		}
	}

	return s
}
