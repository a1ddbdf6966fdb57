package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/registry"
)

type sessionStage int

const (
	sessionStart sessionStage = iota
	sessionScores
	sessionPlaying
)

// SessionModel runs the whole flow for one player: start screen, then
// either the scoreboard or a game, then back to the start screen.
// It backs both the local menu and every SSH connection.
type SessionModel struct {
	svc    Services
	config core.RuntimeConfig
	id     string
	name   string // Last name entered, prefilled on the next round

	stage  sessionStage
	start  StartModel
	scores ScoreboardModel
	game   *Model

	quitting bool
}

// NewSessionModel creates a session. defaultName prefills the name prompt.
func NewSessionModel(cfg core.RuntimeConfig, svc Services, defaultName string) SessionModel {
	svc = svc.withDefaults()
	id := uuid.NewString()
	svc.Logger = svc.Logger.With("session", id[:8])
	if defaultName == "" {
		defaultName = DefaultPlayerName
	}

	m := SessionModel{
		svc:    svc,
		config: cfg,
		id:     id,
		name:   defaultName,
	}
	m.start = m.newStart()
	return m
}

func (m SessionModel) newStart() StartModel {
	return NewStartModel(m.name, time.Now().UnixNano(), m.config.ScreenW, m.config.ScreenH)
}

// ID returns the session identifier.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.start.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case sessionPlaying:
		return m.updateGame(msg)
	case sessionScores:
		return m.updateScores(msg)
	}
	return m.updateStart(msg)
}

func (m SessionModel) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.start.Update(msg)
	if sm, ok := next.(StartModel); ok {
		m.start = sm
	}

	switch {
	case m.start.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.start.WantsScores():
		m.scores = NewScoreboardModel(m.svc.Board, m.svc.Store, m.config.ScreenW, m.config.ScreenH)
		m.stage = sessionScores
		return m, m.scores.Init()

	case m.start.Selection() != nil:
		return m.startGame(*m.start.Selection())
	}
	return m, cmd
}

func (m SessionModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.GameID, registry.Env{Logger: m.svc.Logger})
	if err != nil {
		m.svc.Logger.Error("cannot create game", "game", sel.GameID, "err", err)
		m.start = m.newStart()
		return m, nil
	}

	m.name = sel.Name
	cfg := m.config
	cfg.PlayerName = sel.Name
	cfg.Seed = time.Now().UnixNano()

	model := NewModel(game, cfg, m.svc)
	model.embedded = true
	m.game = &model
	m.stage = sessionPlaying
	m.svc.Logger.Info("round started", "game", sel.GameID, "name", sel.Name)
	return m, m.game.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.stage = sessionStart
		m.start = m.newStart()
		return m, m.start.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.svc.Logger.Info("round finished", "score", m.game.State().Score)
		m.game = nil
		m.stage = sessionStart
		m.start = m.newStart()
		return m, m.start.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.stage {
	case sessionPlaying:
		return m.game.View()
	case sessionScores:
		return m.scores.View()
	}
	return m.start.View()
}

// RunSession runs the menu-driven flow locally until the player quits.
func RunSession(cfg core.RuntimeConfig, svc Services) error {
	p := tea.NewProgram(NewSessionModel(cfg, svc, cfg.PlayerName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
