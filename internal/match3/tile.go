// Package match3 implements the board model of a match-3 puzzle: tile
// storage, run detection, gravity collapse, refill and the cascade resolver
// that ties them together. It has no dependency on rendering or input so
// the rules can be driven headless, from tests, or from the TUI game.
package match3

import (
	"fmt"
	"strings"
)

// Category is the colour/type tag of a tile. Comparison is case-insensitive.
type Category string

// Same reports whether two categories are equal ignoring case.
func (c Category) Same(other Category) bool {
	return strings.EqualFold(string(c), string(other))
}

// Tile is one playable unit on the board.
// Row 0 is the bottom row; Column 0 is the leftmost column.
type Tile struct {
	ID       uint64
	Row      int
	Column   int
	Category Category
}

// Position returns the tile's stored coordinates.
func (t *Tile) Position() Position {
	return Position{Row: t.Row, Column: t.Column}
}

// IsSameCategory reports whether t and other share a category.
// Returns ErrInvalidTile if either tile is nil.
func (t *Tile) IsSameCategory(other *Tile) (bool, error) {
	if t == nil || other == nil {
		return false, fmt.Errorf("match3: compare categories: %w", ErrInvalidTile)
	}
	return t.Category.Same(other.Category), nil
}

// String returns a short human-readable description.
func (t *Tile) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%s", t.Category, t.Position())
}

// swapCoords exchanges the stored coordinates of two tiles.
func swapCoords(a, b *Tile) {
	a.Row, b.Row = b.Row, a.Row
	a.Column, b.Column = b.Column, a.Column
}

// Position is a (row, column) slot coordinate.
type Position struct {
	Row    int
	Column int
}

// String renders the position as [row][col].
func (p Position) String() string {
	return fmt.Sprintf("[%d][%d]", p.Row, p.Column)
}
