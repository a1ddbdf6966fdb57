// Package sim implements the taxi game simulation: the fixed road grid,
// vehicles, the pickup/fuel-station registry, the delivery state machine and
// the session controller. It has no knowledge of terminals or audio devices.
package sim

import (
	"fmt"

	"github.com/vovakirdan/taxi-rush/internal/config"
)

// Position is a pixel position. The origin is the bottom-left corner of the
// map and Y grows upwards.
type Position struct {
	X, Y int
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a grid index.
type Cell struct {
	I, J int
}

// Grid is the static city layout: a Size×Size board where every Spacing-th
// row and column is road and everything else is building.
type Grid struct {
	Size     int
	CellSize int
	Spacing  int
}

// NewGrid creates a grid from configuration.
func NewGrid(cfg config.GridConfig) Grid {
	return Grid{
		Size:     cfg.Size,
		CellSize: cfg.CellSize,
		Spacing:  cfg.RoadSpacing,
	}
}

// IsRoadCell reports whether cell (i, j) is part of the road network.
func (g Grid) IsRoadCell(i, j int) bool {
	return i%g.Spacing == 0 || j%g.Spacing == 0
}

// IsIntersection reports whether cell (i, j) is where two roads cross.
func (g Grid) IsIntersection(i, j int) bool {
	return i%g.Spacing == 0 && j%g.Spacing == 0
}

// InBounds reports whether (i, j) is a valid cell index.
func (g Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Size && j >= 0 && j < g.Size
}

// IsRoadAdjacent reports whether any 4-neighbour of (i, j) is a road cell.
func (g Grid) IsRoadAdjacent(i, j int) bool {
	return (i > 0 && g.IsRoadCell(i-1, j)) ||
		(i < g.Size-1 && g.IsRoadCell(i+1, j)) ||
		(j > 0 && g.IsRoadCell(i, j-1)) ||
		(j < g.Size-1 && g.IsRoadCell(i, j+1))
}

// IsAdjacentBuilding reports whether (i, j) is a building cell reachable
// from a road, i.e. a valid spot for stations, pickups and destinations.
func (g Grid) IsAdjacentBuilding(i, j int) bool {
	return g.InBounds(i, j) && !g.IsRoadCell(i, j) && g.IsRoadAdjacent(i, j)
}

// MaxX is the largest x a vehicle corner may take.
// The last column is only half covered because cars are half a cell wide.
func (g Grid) MaxX() int {
	return (g.Size-1)*g.CellSize + g.CellSize/2
}

// MaxY is the largest y a vehicle corner may take.
func (g Grid) MaxY() int {
	return (g.Size - 1) * g.CellSize
}

// CellAt maps a pixel position to the cell containing it.
func (g Grid) CellAt(p Position) Cell {
	return Cell{I: p.X / g.CellSize, J: p.Y / g.CellSize}
}

// PixelOf maps a cell to the pixel position of its corner.
func (g Grid) PixelOf(c Cell) Position {
	return Position{X: c.I * g.CellSize, Y: c.J * g.CellSize}
}

// InBox reports whether p lies inside the drivable pixel box.
func (g Grid) InBox(p Position) bool {
	return p.X >= 0 && p.X <= g.MaxX() && p.Y >= 0 && p.Y <= g.MaxY()
}

// Drivable reports whether a vehicle corner may sit at p: inside the map box
// and on a road cell.
func (g Grid) Drivable(p Position) bool {
	if !g.InBox(p) {
		return false
	}
	c := g.CellAt(p)
	return g.InBounds(c.I, c.J) && g.IsRoadCell(c.I, c.J)
}
