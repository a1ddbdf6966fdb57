package sim

import (
	"math/rand"
	"testing"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDirectionDeltaIsYUp(t *testing.T) {
	if dx, dy := DirUp.Delta(10); dx != 0 || dy != 10 {
		t.Errorf("Up delta = (%d,%d), want (0,10)", dx, dy)
	}
	if dx, dy := DirLeft.Delta(2); dx != -2 || dy != 0 {
		t.Errorf("Left delta = (%d,%d), want (-2,0)", dx, dy)
	}
}

func TestCollides(t *testing.T) {
	fp := Footprint{W: 20, H: 40}
	a := NewNPCCar(Position{0, 0}, DirUp, fp)
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"same spot", Position{0, 0}, true},
		{"partial overlap", Position{10, 30}, true},
		{"touching above", Position{0, 40}, false},
		{"touching right", Position{20, 0}, false},
		{"far", Position{200, 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewNPCCar(tt.pos, DirUp, fp)
			if got := Collides(a, b); got != tt.want {
				t.Errorf("Collides = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNPCStepBlocked(t *testing.T) {
	g := defaultGrid()
	rng := rand.New(rand.NewSource(1))
	n := NewNPCCar(Position{0, 0}, DirLeft, Footprint{20, 40})
	if n.Step(g, rng, 2) {
		t.Fatal("step off the map should be rejected")
	}
	if n.Pos() != (Position{0, 0}) {
		t.Errorf("blocked NPC moved to %v", n.Pos())
	}
}

func TestNPCStepStraight(t *testing.T) {
	g := defaultGrid()
	rng := rand.New(rand.NewSource(1))
	n := NewNPCCar(Position{0, 40}, DirUp, Footprint{20, 40})
	if !n.Step(g, rng, 2) {
		t.Fatal("step along the road should succeed")
	}
	if n.Pos() != (Position{0, 42}) {
		t.Errorf("position = %v, want (0,42)", n.Pos())
	}
	if n.Direction() != DirUp {
		t.Errorf("direction changed mid-cell to %v", n.Direction())
	}
}

func TestNPCNeverReversesAtIntersection(t *testing.T) {
	g := defaultGrid()
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := NewNPCCar(Position{160, 158}, DirUp, Footprint{20, 40})
		if !n.Step(g, rng, 2) {
			t.Fatalf("seed %d: step into intersection rejected", seed)
		}
		if n.Pos() != (Position{160, 160}) {
			t.Fatalf("seed %d: position = %v", seed, n.Pos())
		}
		if n.Direction() == DirDown {
			t.Fatalf("seed %d: NPC reversed at intersection", seed)
		}
	}
}
