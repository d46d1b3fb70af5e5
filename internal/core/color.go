package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the runner and the gallery.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrown  // ground, crumbs
	ColorPink   // highlight, selected character
	ColorOrange // coins, HUD panels
	ColorGold   // legendary rarity, donuts
	ColorPurple // epic rarity
	ColorGray   // locked entries, common rarity
)
