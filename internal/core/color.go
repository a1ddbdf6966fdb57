package core

// Color is a named palette entry for a screen cell.
// The platform maps each entry to an ANSI colour.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorViolet
	ColorCyan
	ColorWhite
	ColorOrange
	ColorBrown
	ColorGray
	ColorDarkGray
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorViolet:
		return "violet"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorBrown:
		return "brown"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	default:
		return "default"
	}
}
