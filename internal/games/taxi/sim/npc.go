package sim

import (
	"math/rand"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// NPCCar is autonomous traffic that wanders the road network.
type NPCCar struct {
	pos       Position
	dir       Direction
	footprint Footprint
}

// NewNPCCar creates traffic at pos heading dir.
func NewNPCCar(pos Position, dir Direction, fp Footprint) *NPCCar {
	return &NPCCar{pos: pos, dir: dir, footprint: fp}
}

func (n *NPCCar) Pos() Position        { return n.pos }
func (n *NPCCar) Bounds() core.Rect    { return n.footprint.Rect(n.pos) }
func (n *NPCCar) Direction() Direction { return n.dir }

// Relocate teleports the car and sets a new heading.
func (n *NPCCar) Relocate(pos Position, dir Direction) {
	n.pos = pos
	n.dir = dir
}

// Step advances the car by speed pixels. A blocked step leaves the car in
// place with a random new heading. Entering a new intersection cell turns
// the car to any heading except straight back. Step reports whether the
// car moved.
func (n *NPCCar) Step(g Grid, rng *rand.Rand, speed int) bool {
	dx, dy := n.dir.Delta(speed)
	target := Position{X: n.pos.X + dx, Y: n.pos.Y + dy}
	if !g.Drivable(target) {
		n.dir = randomDirection(rng)
		return false
	}

	from := g.CellAt(n.pos)
	to := g.CellAt(target)
	n.pos = target
	if to != from && g.IsIntersection(to.I, to.J) {
		n.dir = randomTurn(rng, n.dir)
	}
	return true
}
