package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
	"github.com/vovakirdan/taxi-rush/internal/storage"
)

func tabKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 80, 24)
	if !strings.Contains(m.View(), "No high scores yet!") {
		t.Error("empty leaderboard message missing")
	}

	next, _ := m.Update(tabKey())
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("history tab should report a missing store")
	}
}

func TestScoreboardTabs(t *testing.T) {
	dir := t.TempDir()
	board := leaderboard.NewFile(filepath.Join(dir, "scores.dat"))
	if _, err := board.Record("Ann", 42); err != nil {
		t.Fatalf("Record: %v", err)
	}
	store, err := storage.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{
		Name: "Bob", Role: "delivery", Score: 64, Outcome: "time_up", Duration: 180 * time.Second,
	}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(board, store, 100, 30)
	if len(m.table.Rows()) != 1 || m.table.Rows()[0][1] != "Ann" {
		t.Errorf("leaderboard rows = %v", m.table.Rows())
	}

	next, _ := m.Update(tabKey())
	m = next.(ScoreboardModel)
	rows := m.table.Rows()
	if len(rows) != 1 {
		t.Fatalf("history rows = %v", rows)
	}
	if rows[0][1] != "Bob" || rows[0][2] != "delivery" || rows[0][4] != "time_up" || rows[0][5] != "3:00" {
		t.Errorf("history row = %v", rows[0])
	}
	if !strings.Contains(m.View(), "runs 1") {
		t.Error("history tab should show role totals")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                        "0:00",
		59 * time.Second:         "0:59",
		61500 * time.Millisecond: "1:01",
		180 * time.Second:        "3:00",
	}
	for d, want := range tests {
		if got := formatDuration(d); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}
