package core

// Color identifies a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer; game
// logic only treats them as opaque tags attached to cells.
type Color uint8

// Predefined colors. The seven piece colors (cyan, blue, orange,
// yellow, green, red, magenta) follow the conventional tetromino
// palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
