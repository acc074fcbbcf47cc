package core

// Color represents a foreground or background color for a screen cell.
// Hosts translate it to their own palette (lipgloss, tcell).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorYellow
	ColorBlue
	ColorNavy
	ColorDarkGreen
	ColorRed
	ColorGray
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorNavy:
		return "navy"
	case ColorDarkGreen:
		return "dark-green"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
