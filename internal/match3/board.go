package match3

import "fmt"

// Default board dimensions.
const (
	DefaultRows    = 11
	DefaultColumns = 8
)

// Config fixes the board dimensions for the lifetime of a Board.
type Config struct {
	Rows    int
	Columns int
}

// DefaultConfig returns the standard 11x8 board.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Columns: DefaultColumns}
}

// Validate checks that a run of three fits along both axes.
func (c Config) Validate() error {
	if c.Rows < 3 || c.Columns < 3 {
		return fmt.Errorf("match3: %dx%d board: %w", c.Rows, c.Columns, ErrBadConfig)
	}
	return nil
}

// Board is a fixed-size grid of tile slots. A slot is either empty (nil) or
// holds a tile whose stored coordinates equal the slot coordinates.
// Row 0 is the bottom of the board; gravity pulls tiles toward it.
type Board struct {
	rows    int
	columns int
	slots   [][]*Tile

	// Last swapped pair, the only undo history kept.
	undoA, undoB *Tile
}

// NewBoard creates an empty board.
func NewBoard(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		rows:    cfg.Rows,
		columns: cfg.Columns,
		slots:   make([][]*Tile, cfg.Rows),
	}
	for r := range b.slots {
		b.slots[r] = make([]*Tile, cfg.Columns)
	}
	return b, nil
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.columns
}

// InBounds reports whether (row, col) is a valid slot.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

func (b *Board) checkBounds(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("match3: [%d][%d] on %dx%d board: %w", row, col, b.rows, b.columns, ErrOutOfRange)
	}
	return nil
}

// Get returns the tile at (row, col), or nil if the slot is empty.
func (b *Board) Get(row, col int) (*Tile, error) {
	if err := b.checkBounds(row, col); err != nil {
		return nil, err
	}
	return b.slots[row][col], nil
}

// at is Get without the bounds error, for internal scans already in range.
func (b *Board) at(row, col int) *Tile {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.slots[row][col]
}

// Set overwrites the slot at (row, col). The tile's coordinates are left as is.
func (b *Board) Set(row, col int, t *Tile) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	b.slots[row][col] = t
	return nil
}

// Place stores t at (row, col) and updates its coordinates to match.
func (b *Board) Place(row, col int, t *Tile) error {
	if t == nil {
		return fmt.Errorf("match3: place at [%d][%d]: %w", row, col, ErrInvalidTile)
	}
	if err := b.Set(row, col, t); err != nil {
		return err
	}
	t.Row = row
	t.Column = col
	return nil
}

// Swap exchanges the slots and coordinates of two placed tiles and records
// the pair as the undo candidate, replacing any previous record. Both tiles
// must be stored at their own coordinates; otherwise the board is untouched
// and ErrInvalidTile is returned.
func (b *Board) Swap(t1, t2 *Tile) error {
	if err := checkPlaced(b, t1); err != nil {
		return fmt.Errorf("match3: swap: %w", err)
	}
	if err := checkPlaced(b, t2); err != nil {
		return fmt.Errorf("match3: swap: %w", err)
	}

	b.undoA, b.undoB = t1, t2

	b.slots[t1.Row][t1.Column], b.slots[t2.Row][t2.Column] =
		b.slots[t2.Row][t2.Column], b.slots[t1.Row][t1.Column]
	swapCoords(t1, t2)
	return nil
}

// UndoSwap reverts the last swap. Returns ErrNoSwap if nothing was swapped.
func (b *Board) UndoSwap() error {
	if b.undoA == nil || b.undoB == nil {
		return fmt.Errorf("match3: undo: %w", ErrNoSwap)
	}
	return b.Swap(b.undoA, b.undoB)
}

// Remove clears the slot at the tile's coordinates. The tile itself is untouched.
func (b *Board) Remove(t *Tile) error {
	if t == nil {
		return fmt.Errorf("match3: remove: %w", ErrInvalidTile)
	}
	return b.Set(t.Row, t.Column, nil)
}

// Collapse applies gravity to the given columns. Each column is scanned
// bottom-up; every empty slot takes the nearest tile above it, whose stored
// row is updated. Returns every tile that moved.
func (b *Board) Collapse(columns []int) (TileSet, error) {
	var moved TileSet
	for _, col := range columns {
		if col < 0 || col >= b.columns {
			return moved, fmt.Errorf("match3: collapse column %d: %w", col, ErrOutOfRange)
		}
		for row := 0; row < b.rows-1; row++ {
			if b.slots[row][col] != nil {
				continue
			}
			for above := row + 1; above < b.rows; above++ {
				t := b.slots[above][col]
				if t == nil {
					continue
				}
				b.slots[row][col] = t
				b.slots[above][col] = nil
				t.Row = row
				t.Column = col
				moved.Add(t)
				break
			}
		}
	}
	return moved, nil
}

// EmptySlotsInColumn lists the empty slots of a column in ascending row order.
func (b *Board) EmptySlotsInColumn(col int) ([]Position, error) {
	if col < 0 || col >= b.columns {
		return nil, fmt.Errorf("match3: column %d: %w", col, ErrOutOfRange)
	}
	var slots []Position
	for row := 0; row < b.rows; row++ {
		if b.slots[row][col] == nil {
			slots = append(slots, Position{Row: row, Column: col})
		}
	}
	return slots, nil
}

// ColumnsMissingTiles returns the columns holding at least one empty slot.
func (b *Board) ColumnsMissingTiles() []int {
	var cols []int
	for col := 0; col < b.columns; col++ {
		for row := b.rows - 1; row >= 0; row-- {
			if b.slots[row][col] == nil {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// Tiles returns all placed tiles in row-major order, bottom row first.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, 0, b.rows*b.columns)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			if t := b.slots[row][col]; t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Categories returns the category grid, "" for empty slots.
func (b *Board) Categories() [][]Category {
	grid := make([][]Category, b.rows)
	for row := range grid {
		grid[row] = make([]Category, b.columns)
		for col := range grid[row] {
			if t := b.slots[row][col]; t != nil {
				grid[row][col] = t.Category
			}
		}
	}
	return grid
}

// Clone returns a deep copy with fresh tiles and no undo record.
// The returned map translates original tiles to their copies.
func (b *Board) Clone() (*Board, map[*Tile]*Tile) {
	c := &Board{
		rows:    b.rows,
		columns: b.columns,
		slots:   make([][]*Tile, b.rows),
	}
	mapping := make(map[*Tile]*Tile)
	for row := range b.slots {
		c.slots[row] = make([]*Tile, b.columns)
		for col, t := range b.slots[row] {
			if t == nil {
				continue
			}
			cp := *t
			c.slots[row][col] = &cp
			mapping[t] = &cp
		}
	}
	return c, mapping
}
