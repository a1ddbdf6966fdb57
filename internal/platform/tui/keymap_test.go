package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{keyRunes("s"), core.ActionDown, false},
		{keyRunes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionInteract, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRefuel, false},
		{keyRunes("p"), core.ActionPause, false},
		{keyRunes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.wantQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{keyRunes("w"), keyRunes("w"), keyRunes("z"), keyRunes("d")} {
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatal("unexpected quit")
		}
	}
	want := []core.Action{core.ActionUp, core.ActionUp, core.ActionRight}
	if frame.Len() != len(want) {
		t.Fatalf("frame = %v, want %v", frame.Actions, want)
	}
	for i, a := range want {
		if frame.Actions[i] != a {
			t.Errorf("action %d = %v, want %v", i, frame.Actions[i], a)
		}
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame) {
		t.Error("esc should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyRunes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{keyRunes("b"), MenuActionBack},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
