package match3

import "math/rand"

// maxRerolls bounds the no-immediate-match guard so a one-category palette
// cannot spin forever.
const maxRerolls = 64

// TileFactory produces a fresh tile for a slot. The returned tile's
// coordinates are set to (row, col) but it is not placed on any board.
type TileFactory interface {
	NewTile(row, col int) *Tile
}

// RandomFactory picks categories uniformly from a palette.
type RandomFactory struct {
	rng     *rand.Rand
	palette []Category
	nextID  uint64
}

// NewRandomFactory creates a factory drawing from rng. The palette must not be empty.
func NewRandomFactory(rng *rand.Rand, palette []Category) *RandomFactory {
	return &RandomFactory{
		rng:     rng,
		palette: palette,
	}
}

// NewTile implements TileFactory.
func (f *RandomFactory) NewTile(row, col int) *Tile {
	f.nextID++
	return &Tile{
		ID:       f.nextID,
		Row:      row,
		Column:   col,
		Category: f.palette[f.rng.Intn(len(f.palette))],
	}
}

// Palette returns the categories this factory draws from.
func (f *RandomFactory) Palette() []Category {
	return f.palette
}

// guardedFactory rerolls tiles that would complete a run with the two
// already-placed tiles to the left or the two below.
type guardedFactory struct {
	board *Board
	inner TileFactory
}

// Guarded wraps f with the no-immediate-match guard against b.
func Guarded(b *Board, f TileFactory) TileFactory {
	return &guardedFactory{board: b, inner: f}
}

// NewTile implements TileFactory.
func (g *guardedFactory) NewTile(row, col int) *Tile {
	t := g.inner.NewTile(row, col)
	for i := 0; i < maxRerolls && completesRun(g.board, row, col, t.Category); i++ {
		t = g.inner.NewTile(row, col)
	}
	return t
}

// completesRun looks back two slots left and two slots down from (row, col).
func completesRun(b *Board, row, col int, c Category) bool {
	same := func(r, cl int) bool {
		t := b.at(r, cl)
		return t != nil && t.Category.Same(c)
	}
	if col >= 2 && same(row, col-1) && same(row, col-2) {
		return true
	}
	if row >= 2 && same(row-1, col) && same(row-2, col) {
		return true
	}
	return false
}

// Populate fills every slot of b, bottom row first and left to right,
// rerolling any tile that would immediately complete a run with its two
// left or two lower neighbors. Existing tiles are overwritten.
func Populate(b *Board, f TileFactory) error {
	guarded := Guarded(b, f)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			if err := b.Place(row, col, guarded.NewTile(row, col)); err != nil {
				return err
			}
		}
	}
	b.undoA, b.undoB = nil, nil
	return nil
}
