package sim

import (
	"fmt"
	"math/rand"
)

// Sampler draws random positions from the grid.
//
// Each draw rejection-samples up to maxAttempts cells. If the budget runs
// out it scans every cell and picks uniformly among the qualifying ones, so
// a draw only fails when no qualifying cell exists at all.
type Sampler struct {
	grid        Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewSampler creates a sampler. A non-positive budget skips straight to the
// exhaustive scan.
func NewSampler(g Grid, rng *rand.Rand, maxAttempts int) *Sampler {
	return &Sampler{grid: g, rng: rng, maxAttempts: maxAttempts}
}

// SampleRoadPosition returns the corner of a uniformly random road cell.
func (s *Sampler) SampleRoadPosition() (Position, error) {
	return s.SampleRoadPositionWhere(nil)
}

// SampleRoadPositionWhere returns a random road cell corner that accept
// approves. A nil accept approves everything.
func (s *Sampler) SampleRoadPositionWhere(accept func(Position) bool) (Position, error) {
	return s.sample("road position", func(c Cell) bool {
		return s.grid.IsRoadCell(c.I, c.J)
	}, accept)
}

// SampleAdjacentBuildingPosition returns a random building cell corner that
// touches a road and is not listed in occupied.
func (s *Sampler) SampleAdjacentBuildingPosition(occupied []Position) (Position, error) {
	free := func(p Position) bool {
		for _, o := range occupied {
			if o == p {
				return false
			}
		}
		return true
	}
	return s.sample("adjacent building position", func(c Cell) bool {
		return s.grid.IsAdjacentBuilding(c.I, c.J)
	}, free)
}

func (s *Sampler) sample(what string, qualifies func(Cell) bool, accept func(Position) bool) (Position, error) {
	for range s.maxAttempts {
		c := Cell{I: s.rng.Intn(s.grid.Size), J: s.rng.Intn(s.grid.Size)}
		if !qualifies(c) {
			continue
		}
		p := s.grid.PixelOf(c)
		if accept == nil || accept(p) {
			return p, nil
		}
	}

	var candidates []Position
	for i := 0; i < s.grid.Size; i++ {
		for j := 0; j < s.grid.Size; j++ {
			c := Cell{I: i, J: j}
			if !qualifies(c) {
				continue
			}
			p := s.grid.PixelOf(c)
			if accept == nil || accept(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Position{}, fmt.Errorf("sim: sample %s: %w", what, ErrNoFreeCell)
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}
