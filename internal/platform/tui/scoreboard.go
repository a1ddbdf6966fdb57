package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
	"github.com/vovakirdan/taxi-rush/internal/storage"
)

// maxHistory is the number of recent runs shown on the history tab.
const maxHistory = 50

type scoreTab int

const (
	tabLeaderboard scoreTab = iota
	tabHistory
)

var tabTitles = []string{"Leaderboard", "History"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top-ten leaderboard and, when a history store
// is available, recent runs with per-role totals.
type ScoreboardModel struct {
	board *leaderboard.File
	store *storage.Store

	tab     scoreTab
	entries []leaderboard.Entry
	runs    []storage.Run
	stats   map[string]*storage.RoleStats
	loadErr error

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard reading from board and store.
// Either may be nil.
func NewScoreboardModel(board *leaderboard.File, store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		board:  board,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) reload() {
	m.loadErr = nil
	switch m.tab {
	case tabLeaderboard:
		m.entries = nil
		if m.board != nil {
			b, err := m.board.Load()
			if err != nil {
				m.loadErr = err
			}
			m.entries = b.Entries()
		}

	case tabHistory:
		m.runs, m.stats = nil, nil
		if m.store != nil {
			runs, err := m.store.RecentRuns(maxHistory)
			if err != nil {
				m.loadErr = err
			}
			m.runs = runs
			if stats, err := m.store.GetAllRoleStats(); err == nil {
				m.stats = stats
			}
		}
	}
	m.table = m.createTable()
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

// createTable creates a table with the columns of the current tab.
func (m ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabLeaderboard {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: leaderboard.MaxNameLen + 1},
			{Title: "Score", Width: 8},
		}
	} else {
		columns = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Name", Width: leaderboard.MaxNameLen + 1},
			{Title: "Role", Width: 9},
			{Title: "Score", Width: 6},
			{Title: "Result", Width: 11},
			{Title: "Time", Width: 5},
		}
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) rows() []table.Row {
	if m.tab == tabLeaderboard {
		rows := make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprintf("%d", e.Score)}
		}
		return rows
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Name,
			r.Role,
			fmt.Sprintf("%d", r.Score),
			r.Outcome,
			formatDuration(r.Duration),
		}
	}
	return rows
}

// formatDuration renders d as M:SS.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % scoreTab(len(tabTitles))
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + scoreTab(len(tabTitles)) - 1) % scoreTab(len(tabTitles))
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.tab == tabHistory && len(m.stats) > 0 {
		b.WriteString(m.renderStats())
	}
	if m.loadErr != nil {
		b.WriteString(errorStyle.Render(centerText(m.loadErr.Error(), m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if scoreTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = hintStyle.Render(" " + title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.tab == tabLeaderboard && len(m.entries) == 0:
		return empty.Render("No high scores yet!")
	case m.tab == tabHistory && m.store == nil:
		return empty.Render("Run history is unavailable.")
	case m.tab == tabHistory && len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nFinish a shift to see it here.")
	}
	return m.table.View()
}

// renderStats prints one summary line per role.
func (m ScoreboardModel) renderStats() string {
	roles := make([]string, 0, len(m.stats))
	for role := range m.stats {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	var b strings.Builder
	for _, role := range roles {
		s := m.stats[role]
		line := fmt.Sprintf("%-9s runs %d  wins %d  best %d  avg %.1f  deliveries %d",
			role, s.Runs, s.Wins, s.HighScore, s.AvgScore, s.TotalDeliveries)
		b.WriteString(hintStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
