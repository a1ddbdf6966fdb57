package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
)

func sessionPress(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func TestSessionStartsGame(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Services{}, "ssh-user")
	if m.ID() == "" {
		t.Fatal("session should have an id")
	}

	m = sessionPress(t, m, keyEnter, keyDown, keyEnter, keyEnter)
	if m.stage != sessionPlaying || m.game == nil {
		t.Fatalf("stage = %v, want playing", m.stage)
	}
	if m.game.game.ID() != "taxi" {
		t.Errorf("game = %q, want taxi", m.game.game.ID())
	}
	if m.game.config.PlayerName != "ssh-user" {
		t.Errorf("player = %q, want ssh-user", m.game.config.PlayerName)
	}
	if !strings.Contains(m.View(), "Score=") {
		t.Error("game view should show the HUD")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	board := leaderboard.NewFile(filepath.Join(t.TempDir(), "scores.dat"))
	if _, err := board.Record("Ann", 42); err != nil {
		t.Fatalf("Record: %v", err)
	}

	m := NewSessionModel(core.DefaultConfig(), Services{Board: board}, "")
	m = sessionPress(t, m, keyUp, keyEnter)
	if m.stage != sessionScores {
		t.Fatalf("stage = %v, want scores", m.stage)
	}
	if !strings.Contains(m.View(), "Ann") {
		t.Error("scoreboard should list the recorded name")
	}

	m = sessionPress(t, m, keyEsc)
	if m.stage != sessionStart {
		t.Errorf("stage = %v, want start", m.stage)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Services{}, "")
	next, cmd := m.Update(keyRunes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should quit from the start screen")
	}
}
