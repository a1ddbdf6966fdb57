package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorBlack:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorViolet:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
