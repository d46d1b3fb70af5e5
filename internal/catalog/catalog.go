// Package catalog holds the selectable runner characters shown in the
// gallery. Records are static; only the selected index changes.
package catalog

import "github.com/vovakirdan/cookie-run/internal/core"

// StatMax is the full length of a speed or jump stat bar.
const StatMax = 10

// Rarity grades a character for display.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

func (r Rarity) String() string {
	switch r {
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return "Common"
	}
}

// Color returns the badge color for the rarity.
func (r Rarity) Color() core.Color {
	switch r {
	case Rare:
		return core.ColorBlue
	case Epic:
		return core.ColorPurple
	case Legendary:
		return core.ColorGold
	default:
		return core.ColorGray
	}
}

// Character is one gallery entry. Speed and Jump are display stats in
// [0, StatMax]; they do not change the simulation.
type Character struct {
	Name        string
	Description string
	Emoji       string
	Glyph       rune       // Single-cell sprite used by the terminal renderer
	Color       core.Color // Sprite color
	Speed       int
	Jump        int
	Rarity      Rarity
	Unlocked    bool
}

var characters = []Character{
	{Name: "Cookie", Description: "The classic runner", Emoji: "🍪", Glyph: '@', Color: core.ColorBrown, Speed: 5, Jump: 3, Rarity: Common, Unlocked: true},
	{Name: "Croissant", Description: "Quick and light", Emoji: "🥐", Glyph: 'C', Color: core.ColorOrange, Speed: 7, Jump: 4, Rarity: Rare, Unlocked: true},
	{Name: "Cupcake", Description: "High jumper", Emoji: "🧁", Glyph: 'U', Color: core.ColorPink, Speed: 4, Jump: 8, Rarity: Epic, Unlocked: true},
	{Name: "Donut", Description: "Legendary runner", Emoji: "🍩", Glyph: 'O', Color: core.ColorMagenta, Speed: 8, Jump: 7, Rarity: Legendary, Unlocked: true},
	{Name: "Baguette", Description: "Coming soon...", Emoji: "🥖", Glyph: 'B', Color: core.ColorYellow, Speed: 6, Jump: 5, Rarity: Rare},
	{Name: "Cake", Description: "Coming soon...", Emoji: "🍰", Glyph: 'K', Color: core.ColorPink, Speed: 5, Jump: 6, Rarity: Epic},
}

// All returns a copy of every character in gallery order.
func All() []Character {
	return append([]Character(nil), characters...)
}

// Len returns the number of characters.
func Len() int {
	return len(characters)
}

// Get returns the character at index i.
func Get(i int) (Character, bool) {
	if i < 0 || i >= len(characters) {
		return Character{}, false
	}
	return characters[i], true
}

// Selectable reports whether index i names an unlocked character.
func Selectable(i int) bool {
	c, ok := Get(i)
	return ok && c.Unlocked
}

// Select resolves a requested index. Out-of-range or locked indices fall
// back to the default character at index 0.
func Select(i int) (int, Character) {
	if !Selectable(i) {
		i = 0
	}
	return i, characters[i]
}
