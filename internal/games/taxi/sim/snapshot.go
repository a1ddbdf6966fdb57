package sim

import "time"

// NPCState is the observable state of one traffic car.
type NPCState struct {
	Pos Position
	Dir Direction
}

// Snapshot is a comparable copy of the full session state.
type Snapshot struct {
	Tick          uint64
	Elapsed       time.Duration
	Outcome       Outcome
	Player        Position
	Fuel          float64
	Money         float64
	Score         int
	Carrying      bool
	Destination   Destination
	Deliveries    int
	NPCs          [8]NPCState
	NPCCount      int
	Pickups       [PickupCapacity]PickupItem
	ActivePickups int
	Stations      [StationCapacity]FuelStation
}

// Snapshot captures the session state. Sessions built from the same seed
// and driven by the same inputs produce equal snapshots.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.tick,
		Elapsed:       s.elapsed,
		Outcome:       s.outcome,
		Player:        s.player.pos,
		Fuel:          s.player.fuel,
		Money:         s.player.money,
		Score:         s.player.score,
		Carrying:      s.player.carrying,
		Destination:   s.player.dest,
		Deliveries:    s.player.deliveries,
		NPCCount:      len(s.npcs),
		Pickups:       s.world.pickups,
		ActivePickups: s.world.activePickups,
		Stations:      s.world.stations,
	}
	for i, n := range s.npcs {
		if i >= len(snap.NPCs) {
			break
		}
		snap.NPCs[i] = NPCState{Pos: n.pos, Dir: n.dir}
	}
	return snap
}
