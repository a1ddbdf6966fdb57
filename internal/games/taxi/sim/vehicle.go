package sim

import (
	"math/rand"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// Direction is a heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the pixel offset of one step of the given length.
// Up increases Y.
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, step
	case DirDown:
		return 0, -step
	case DirLeft:
		return -step, 0
	default:
		return step, 0
	}
}

func randomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

// randomTurn picks any heading except the reverse of d.
func randomTurn(rng *rand.Rand, d Direction) Direction {
	back := d.Opposite()
	for {
		next := randomDirection(rng)
		if next != back {
			return next
		}
	}
}

// Footprint is the collision box size of a car, anchored at its corner.
type Footprint struct {
	W, H int
}

// Rect returns the footprint placed at p.
func (f Footprint) Rect(p Position) core.Rect {
	return core.NewRect(p.X, p.Y, f.W, f.H)
}

// Vehicle is anything that occupies road space.
type Vehicle interface {
	Pos() Position
	Bounds() core.Rect
}

// Collides reports whether two vehicles' footprints overlap.
func Collides(a, b Vehicle) bool {
	return a.Bounds().Intersects(b.Bounds())
}
