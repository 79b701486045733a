package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Colors used by the slide board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorOrange
	ColorBrightWhite
)
