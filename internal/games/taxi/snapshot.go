package taxi

import "github.com/vovakirdan/taxi-rush/internal/games/taxi/sim"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Role   sim.Role
	Paused bool
	Sim    sim.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Role: g.role, Paused: g.paused}
	if g.session != nil {
		snap.Sim = g.session.Snapshot()
	}
	return snap
}
