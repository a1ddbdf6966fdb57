package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'T', ColorYellow)
	c := s.GetCell(5, 5)
	if c.Rune != 'T' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Out of bounds is ignored.
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Fuel=99", ColorBlue)

	if !strings.HasPrefix(s.Row(1)[2:], "Fuel=99") {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorBlue {
		t.Error("text should carry its colour")
	}

	// Clipped at the right edge.
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorGreen)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at expected position: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorWhite)
	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("box corners wrong:\n%s", s.String())
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges wrong")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize: %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("resized screen should be blank, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "        " {
		t.Error("out of bounds row should be spaces")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionUp)
	f.Push(ActionNone)
	f.Push(ActionUp)
	f.Push(ActionInteract)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (none is dropped, repeats kept)", f.Len())
	}
	if !f.Has(ActionInteract) || f.Has(ActionRefuel) {
		t.Error("Has() mismatch")
	}

	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear() should empty the frame")
	}
}
