package core

// Color represents a foreground color for a screen cell.
// The renderer maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the field, paddles and HUD.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
