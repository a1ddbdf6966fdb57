package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "same car footprint",
			a:        NewRect(0, 640, 20, 40),
			b:        NewRect(0, 640, 20, 40),
			expected: true,
		},
		{
			name:     "overlapping vertically",
			a:        NewRect(0, 0, 20, 40),
			b:        NewRect(0, 30, 20, 40),
			expected: true,
		},
		{
			name:     "side by side (no overlap)",
			a:        NewRect(0, 0, 20, 40),
			b:        NewRect(20, 0, 20, 40),
			expected: false,
		},
		{
			name:     "stacked (no overlap)",
			a:        NewRect(0, 0, 20, 40),
			b:        NewRect(0, 40, 20, 40),
			expected: false,
		},
		{
			name:     "one pixel overlap",
			a:        NewRect(0, 0, 20, 40),
			b:        NewRect(19, 39, 20, 40),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewRect(0, 0, 20, 40),
			b:        NewRect(320, 320, 20, 40),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 4, 0},
		{4, 0, 4, 4},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(-0.25, 0, 100); got != 0 {
		t.Errorf("ClampF(-0.25) = %f, expected 0", got)
	}
}

func TestWithinChebyshev(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       bool
	}{
		{"same point", 0, 640, 0, 640, true},
		{"on the radius", 0, 0, 40, 40, true},
		{"diagonal corner beyond euclidean", 0, 0, 40, -40, true},
		{"just outside x", 0, 0, 41, 0, false},
		{"just outside y", 0, 0, 0, -41, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinChebyshev(tc.x1, tc.y1, tc.x2, tc.y2, 40); got != tc.expected {
				t.Errorf("WithinChebyshev() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
