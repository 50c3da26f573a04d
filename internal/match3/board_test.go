package match3

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// boardFrom builds a board from rows listed bottom row first. Each rune is
// a category; '.' leaves the slot empty.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(Config{Rows: len(rows), Columns: len(rows[0])})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	var id uint64
	for r, line := range rows {
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			id++
			if err := b.Place(r, c, &Tile{ID: id, Category: Category(string(ch))}); err != nil {
				t.Fatalf("Place(%d, %d): %v", r, c, err)
			}
		}
	}
	return b
}

func mustGet(t *testing.T, b *Board, row, col int) *Tile {
	t.Helper()
	tile, err := b.Get(row, col)
	if err != nil {
		t.Fatalf("Get(%d, %d): %v", row, col, err)
	}
	return tile
}

// assertConsistent checks every occupied slot's tile reports the slot coordinates.
func assertConsistent(t *testing.T, b *Board) {
	t.Helper()
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			tile := mustGet(t, b, row, col)
			if tile != nil && (tile.Row != row || tile.Column != col) {
				t.Errorf("slot [%d][%d] holds tile reporting %s", row, col, tile.Position())
			}
		}
	}
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"minimum", Config{Rows: 3, Columns: 3}, false},
		{"too short", Config{Rows: 2, Columns: 8}, true},
		{"too narrow", Config{Rows: 11, Columns: 2}, true},
		{"zero", Config{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewBoard(%+v) error = %v, wantErr %v", tc.cfg, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadConfig) {
				t.Errorf("error %v should wrap ErrBadConfig", err)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	b, err := NewBoard(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	tile := &Tile{Category: "Red"}
	if err := b.Set(4, 5, tile); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := mustGet(t, b, 4, 5); got != tile {
		t.Errorf("Get(4, 5) = %v, want %v", got, tile)
	}
	if tile.Row != 0 || tile.Column != 0 {
		t.Errorf("Set should not touch coordinates, got %s", tile.Position())
	}

	if err := b.Place(4, 5, tile); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if tile.Row != 4 || tile.Column != 5 {
		t.Errorf("Place should sync coordinates, got %s", tile.Position())
	}

	if got := mustGet(t, b, 0, 0); got != nil {
		t.Errorf("empty slot Get = %v, want nil", got)
	}
}

func TestOutOfRange(t *testing.T) {
	b, err := NewBoard(Config{Rows: 5, Columns: 4})
	if err != nil {
		t.Fatal(err)
	}

	coords := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 4}, {5, 4}}
	for _, c := range coords {
		if _, err := b.Get(c[0], c[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d, %d) error = %v, want ErrOutOfRange", c[0], c[1], err)
		}
		if err := b.Set(c[0], c[1], &Tile{}); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d, %d) error = %v, want ErrOutOfRange", c[0], c[1], err)
		}
	}

	if _, err := b.EmptySlotsInColumn(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("EmptySlotsInColumn(4) error = %v, want ErrOutOfRange", err)
	}
	if _, err := b.Collapse([]int{-1}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Collapse([-1]) error = %v, want ErrOutOfRange", err)
	}
}

func TestSwapUndoRoundTrip(t *testing.T) {
	b := boardFrom(t,
		"RGB",
		"YPO",
		"BRG",
	)
	a := mustGet(t, b, 0, 0)
	c := mustGet(t, b, 0, 1)

	if err := b.Swap(a, c); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if mustGet(t, b, 0, 0) != c || mustGet(t, b, 0, 1) != a {
		t.Error("Swap did not exchange slot contents")
	}
	if a.Column != 1 || c.Column != 0 {
		t.Errorf("Swap did not exchange coordinates: a=%s c=%s", a.Position(), c.Position())
	}
	assertConsistent(t, b)

	if err := b.UndoSwap(); err != nil {
		t.Fatalf("UndoSwap: %v", err)
	}
	if mustGet(t, b, 0, 0) != a || mustGet(t, b, 0, 1) != c {
		t.Error("UndoSwap did not restore slot contents")
	}
	if a.Column != 0 || c.Column != 1 {
		t.Errorf("UndoSwap did not restore coordinates: a=%s c=%s", a.Position(), c.Position())
	}
	assertConsistent(t, b)
}

func TestSwapRejectsUnplacedTiles(t *testing.T) {
	tests := []struct {
		name  string
		other func(t *testing.T, b *Board) *Tile
		want  error
	}{
		{
			name:  "stray tile",
			other: func(*testing.T, *Board) *Tile { return &Tile{Row: 0, Column: 1, Category: "Z"} },
			want:  ErrInvalidTile,
		},
		{
			name: "removed tile",
			other: func(t *testing.T, b *Board) *Tile {
				x := b.at(1, 1)
				if err := b.Remove(x); err != nil {
					t.Fatal(err)
				}
				return x
			},
			want: ErrInvalidTile,
		},
		{
			name:  "outside the board",
			other: func(*testing.T, *Board) *Tile { return &Tile{Row: 7, Column: 0, Category: "Z"} },
			want:  ErrOutOfRange,
		},
		{
			name:  "nil",
			other: func(*testing.T, *Board) *Tile { return nil },
			want:  ErrInvalidTile,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, "ABC", "DEF", "GHI")
			a := mustGet(t, b, 0, 0)
			other := tc.other(t, b)
			before := b.Categories()

			if err := b.Swap(a, other); !errors.Is(err, tc.want) {
				t.Fatalf("Swap error = %v, want %v", err, tc.want)
			}
			if err := b.Swap(other, a); !errors.Is(err, tc.want) {
				t.Fatalf("reversed Swap error = %v, want %v", err, tc.want)
			}
			if !reflect.DeepEqual(b.Categories(), before) {
				t.Error("rejected Swap changed the board")
			}
			if a.Position() != (Position{0, 0}) {
				t.Errorf("rejected Swap moved the tile to %s", a.Position())
			}
			if err := b.UndoSwap(); !errors.Is(err, ErrNoSwap) {
				t.Errorf("rejected Swap left an undo record: %v", err)
			}
			assertConsistent(t, b)
		})
	}
}

func TestUndoSwapWithoutSwap(t *testing.T) {
	b := boardFrom(t, "RGB", "YPO", "BRG")
	if err := b.UndoSwap(); !errors.Is(err, ErrNoSwap) {
		t.Fatalf("UndoSwap() error = %v, want ErrNoSwap", err)
	}
}

func TestSwapKeepsOnlyLastRecord(t *testing.T) {
	b := boardFrom(t, "RGB", "YPO", "BRG")
	r := mustGet(t, b, 0, 0)
	g := mustGet(t, b, 0, 1)
	y := mustGet(t, b, 1, 0)
	p := mustGet(t, b, 1, 1)

	if err := b.Swap(r, g); err != nil {
		t.Fatal(err)
	}
	if err := b.Swap(y, p); err != nil {
		t.Fatal(err)
	}
	if err := b.UndoSwap(); err != nil {
		t.Fatal(err)
	}

	// Only the second swap is undone.
	if mustGet(t, b, 1, 0) != y || mustGet(t, b, 1, 1) != p {
		t.Error("second swap was not undone")
	}
	if mustGet(t, b, 0, 0) != g || mustGet(t, b, 0, 1) != r {
		t.Error("first swap should remain applied")
	}
}

func TestRemove(t *testing.T) {
	b := boardFrom(t, "RGB", "YPO", "BRG")
	tile := mustGet(t, b, 1, 1)

	if err := b.Remove(tile); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if mustGet(t, b, 1, 1) != nil {
		t.Error("slot should be empty after Remove")
	}
	if tile.Row != 1 || tile.Column != 1 {
		t.Errorf("Remove should not mutate the tile, got %s", tile.Position())
	}
	if err := b.Remove(nil); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("Remove(nil) error = %v, want ErrInvalidTile", err)
	}
}

func TestCollapseCompactsColumn(t *testing.T) {
	b := boardFrom(t,
		"AXY",
		"...",
		"BXY",
		"...",
		"CXY",
	)
	a := mustGet(t, b, 0, 0)
	bb := mustGet(t, b, 2, 0)
	c := mustGet(t, b, 4, 0)

	moved, err := b.Collapse([]int{0})
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}

	if mustGet(t, b, 0, 0) != a || mustGet(t, b, 1, 0) != bb || mustGet(t, b, 2, 0) != c {
		t.Errorf("column not compacted in order: %v", b.Categories())
	}
	for row := 3; row < 5; row++ {
		if mustGet(t, b, row, 0) != nil {
			t.Errorf("row %d should be empty after collapse", row)
		}
	}
	if moved.Len() != 2 || !moved.Contains(bb) || !moved.Contains(c) || moved.Contains(a) {
		t.Errorf("moved = %s, want the tiles from rows 2 and 4", moved)
	}
	assertConsistent(t, b)
}

func TestCollapseIgnoresOtherColumns(t *testing.T) {
	b := boardFrom(t,
		".X.",
		"AXB",
		"CXD",
	)
	moved, err := b.Collapse([]int{0})
	if err != nil {
		t.Fatal(err)
	}
	if moved.Len() != 2 {
		t.Errorf("moved %d tiles, want 2", moved.Len())
	}
	if mustGet(t, b, 0, 2) != nil {
		t.Error("column 2 was not requested and should keep its gap")
	}

	again, err := b.Collapse([]int{0})
	if err != nil {
		t.Fatal(err)
	}
	if again.Len() != 0 {
		t.Errorf("collapsing a compact column moved %d tiles", again.Len())
	}
}

func TestEmptySlotsAndMissingColumns(t *testing.T) {
	b := boardFrom(t,
		"A.CD",
		"A.C.",
		"..CD",
	)

	slots, err := b.EmptySlotsInColumn(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []Position{{0, 1}, {1, 1}, {2, 1}}
	if len(slots) != len(want) {
		t.Fatalf("EmptySlotsInColumn(1) = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, slots[i], want[i])
		}
	}

	cols := b.ColumnsMissingTiles()
	wantCols := []int{0, 1, 3}
	if len(cols) != len(wantCols) {
		t.Fatalf("ColumnsMissingTiles() = %v, want %v", cols, wantCols)
	}
	for i := range wantCols {
		if cols[i] != wantCols[i] {
			t.Errorf("column %d = %d, want %d", i, cols[i], wantCols[i])
		}
	}
}

func TestPopulateNoInitialRuns(t *testing.T) {
	palette := []Category{"Red", "Green", "Blue", "Yellow"}

	for seed := int64(1); seed <= 25; seed++ {
		b, err := NewBoard(Config{Rows: 11, Columns: 8})
		if err != nil {
			t.Fatal(err)
		}
		f := NewRandomFactory(rand.New(rand.NewSource(seed)), palette)
		if err := Populate(b, f); err != nil {
			t.Fatalf("seed %d: Populate: %v", seed, err)
		}

		assertConsistent(t, b)
		for _, tile := range b.Tiles() {
			m, err := MatchesContaining(b, tile)
			if err != nil {
				t.Fatal(err)
			}
			if m.Len() != 0 {
				t.Fatalf("seed %d: initial board has run %s", seed, m)
			}
		}
		if got := len(b.Tiles()); got != 88 {
			t.Fatalf("seed %d: populated %d tiles, want 88", seed, got)
		}
		if err := b.UndoSwap(); !errors.Is(err, ErrNoSwap) {
			t.Errorf("fresh board should have no undo record, got %v", err)
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	palette := []Category{"Red", "Green", "Blue", "Yellow", "Purple"}
	build := func() [][]Category {
		b, _ := NewBoard(DefaultConfig())
		if err := Populate(b, NewRandomFactory(rand.New(rand.NewSource(7)), palette)); err != nil {
			t.Fatal(err)
		}
		return b.Categories()
	}

	a, c := build(), build()
	for row := range a {
		for col := range a[row] {
			if a[row][col] != c[row][col] {
				t.Fatalf("same seed produced different boards at [%d][%d]", row, col)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := boardFrom(t, "RGB", "YPO", "BRG")
	clone, mapping := b.Clone()

	orig := mustGet(t, b, 0, 0)
	cp := mapping[orig]
	if cp == nil || cp == orig {
		t.Fatal("clone should map to a distinct tile")
	}
	if err := clone.Remove(cp); err != nil {
		t.Fatal(err)
	}
	if mustGet(t, b, 0, 0) != orig {
		t.Error("mutating the clone changed the original")
	}
}
