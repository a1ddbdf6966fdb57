package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/taxi-rush/internal/audio"
	"github.com/vovakirdan/taxi-rush/internal/core"
	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
	"github.com/vovakirdan/taxi-rush/internal/logging"
	"github.com/vovakirdan/taxi-rush/internal/registry"
	"github.com/vovakirdan/taxi-rush/internal/storage"
)

// Services are the collaborators a round reports to. Nil fields are
// replaced with no-op implementations or skipped.
type Services struct {
	Audio  audio.Player
	Board  *leaderboard.File
	Store  *storage.Store
	Logger *log.Logger
	Remote bool // Session is served over SSH
}

func (s Services) withDefaults() Services {
	if s.Audio == nil {
		s.Audio = audio.Nop{}
	}
	if s.Logger == nil {
		s.Logger = logging.Discard()
	}
	return s
}

// Model is the Bubble Tea model for one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	svc        Services
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	recorded   bool // Result written for the current round
	embedded   bool // Inside a SessionModel
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, svc Services) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultConfig().TickPeriod
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		svc:        svc.withDefaults(),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickPeriod)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The map has a fixed size, so a resize only changes the canvas.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver {
		if action == core.ActionRestart {
			return m.restart()
		}
		// Any other key leaves the finished round.
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Push(action)
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickPeriod)
}

// handleTick advances the game. The tick is not re-armed once the round
// has ended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	for _, cue := range result.Cues {
		m.svc.Audio.Play(cue)
	}

	if m.gameState.GameOver {
		if !m.recorded {
			m.recordResult()
			m.recorded = true
		}
		return m, nil
	}
	return m, tickCmd(m.config.TickPeriod)
}

// recordResult writes the finished round to the leaderboard and the run
// history. Failures are logged and the round carries on.
func (m *Model) recordResult() {
	name := m.config.PlayerName
	score := m.gameState.Score
	logger := m.svc.Logger

	if m.svc.Board != nil {
		added, err := m.svc.Board.Record(name, score)
		switch {
		case err != nil:
			logger.Error("cannot update leaderboard", "path", m.svc.Board.Path(), "err", err)
		case added:
			logger.Info("leaderboard updated", "name", name, "score", score)
		}
	}

	if m.svc.Store == nil {
		return
	}
	run := storage.Run{
		Name:   name,
		Role:   m.game.ID(),
		Score:  score,
		Remote: m.svc.Remote,
	}
	if rep, ok := m.game.(registry.Reporter); ok {
		r := rep.Report()
		run.Role = r.Role
		run.Outcome = r.Outcome
		run.Duration = r.Duration
		run.Deliveries = r.Deliveries
	}
	if _, err := m.svc.Store.SaveRun(run); err != nil {
		logger.Warn("cannot save run history", "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".taxirush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.svc.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the latest game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user dismissed a finished round.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the alternate screen.
func Run(game registry.Game, cfg core.RuntimeConfig, svc Services) error {
	p := tea.NewProgram(NewModel(game, cfg, svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
