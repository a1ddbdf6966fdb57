package tui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/taxi-rush/internal/leaderboard"
	"github.com/vovakirdan/taxi-rush/internal/registry"
)

// DefaultPlayerName is used when the name prompt is left empty.
const DefaultPlayerName = "Anonymous"

type startStage int

const (
	stageMenu startStage = iota
	stageRole
	stageName
)

var mainMenuItems = []string{"View leaderboard", "Start game", "Quit"}

const (
	mainItemScores = iota
	mainItemStart
	mainItemQuit
)

// randomRoleID marks the role entry that picks one of the others.
const randomRoleID = "random"

type roleItem struct {
	ID    string
	Title string
}

// Selection is what the start screen hands to the game.
type Selection struct {
	GameID string
	Name   string
}

// StartModel walks the player from the main menu through role choice to
// the name prompt.
type StartModel struct {
	stage     startStage
	cursor    int
	roles     []roleItem
	nameInput textinput.Model
	keyMapper *KeyMapper
	rng       *rand.Rand
	width     int
	height    int

	selection   *Selection
	wantsScores bool
	quitting    bool
}

// NewStartModel creates the start screen. defaultName prefills the prompt.
func NewStartModel(defaultName string, seed int64, width, height int) StartModel {
	roles := make([]roleItem, 0, 3)
	for _, g := range registry.List() {
		roles = append(roles, roleItem{ID: g.ID, Title: g.Title})
	}
	roles = append(roles, roleItem{ID: randomRoleID, Title: "Random"})

	ti := textinput.New()
	ti.Placeholder = DefaultPlayerName
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 1
	ti.Prompt = "Name: "
	if defaultName != DefaultPlayerName {
		ti.SetValue(defaultName)
	}

	return StartModel{
		stage:     stageMenu,
		cursor:    mainItemStart,
		roles:     roles,
		nameInput: ti,
		keyMapper: NewKeyMapper(),
		rng:       rand.New(rand.NewSource(seed)),
		width:     width,
		height:    height,
	}
}

// Init initializes the start model.
func (m StartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the start screen.
func (m StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.stage == stageName {
			return m.handleNameKey(msg)
		}
		return m.handleMenuKey(msg)
	}

	if m.stage == stageName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m StartModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case MenuActionBack:
		if m.stage == stageRole {
			m.stage = stageMenu
			m.cursor = mainItemStart
		}

	case MenuActionSelect:
		return m.selectItem()
	}
	return m, nil
}

func (m StartModel) selectItem() (tea.Model, tea.Cmd) {
	if m.stage == stageMenu {
		switch m.cursor {
		case mainItemScores:
			m.wantsScores = true
		case mainItemStart:
			m.stage = stageRole
			m.cursor = 0
		case mainItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.stage = stageName
	cmd := m.nameInput.Focus()
	return m, cmd
}

func (m StartModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.nameInput.Blur()
		m.stage = stageRole
		return m, nil
	case "enter":
		m.selection = &Selection{
			GameID: m.chosenRole(),
			Name:   m.playerName(),
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m StartModel) itemCount() int {
	if m.stage == stageRole {
		return len(m.roles)
	}
	return len(mainMenuItems)
}

// chosenRole resolves the role under the cursor, rolling for "Random".
func (m StartModel) chosenRole() string {
	item := m.roles[m.cursor]
	if item.ID != randomRoleID {
		return item.ID
	}
	return m.roles[m.rng.Intn(len(m.roles)-1)].ID
}

func (m StartModel) playerName() string {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// View renders the start screen.
func (m StartModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T A X I   R U S H", m.width)))
	b.WriteString("\n\n")

	switch m.stage {
	case stageMenu:
		m.renderList(&b, "Main menu", mainMenuItems)
		b.WriteString(hintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))

	case stageRole:
		titles := make([]string, len(m.roles))
		for i, r := range m.roles {
			titles[i] = r.Title
		}
		m.renderList(&b, "Choose your job", titles)
		b.WriteString(hintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Esc: Back", m.width)))

	case stageName:
		b.WriteString(centerText("Enter your name", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render(centerText("Enter: Start  |  Esc: Back", m.width)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m StartModel) renderList(b *strings.Builder, heading string, items []string) {
	b.WriteString(centerText(heading, m.width))
	b.WriteString("\n\n")
	for i, item := range items {
		line := "  " + item
		if i == m.cursor {
			line = selectedStyle.Render("> " + item)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// Selection returns the chosen game and name, or nil while choosing.
func (m StartModel) Selection() *Selection {
	return m.selection
}

// WantsScores reports whether the leaderboard was requested.
func (m StartModel) WantsScores() bool {
	return m.wantsScores
}

// IsQuitting reports whether the user asked to quit.
func (m StartModel) IsQuitting() bool {
	return m.quitting
}
