package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the terminal renderer.
type Color uint8

// Palette used by the field renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
