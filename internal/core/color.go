package core

// Color is a fixed visual tag for a board cell.
// Platforms map it to whatever their surface can draw (ANSI 256 in the TUI).
type Color uint8

// Colors used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorGreen         // board background
	ColorOlive         // body segments
	ColorOrange        // head
	ColorBlue          // food
	ColorRed
	ColorWhite
	ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGreen:
		return "green"
	case ColorOlive:
		return "olive"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
