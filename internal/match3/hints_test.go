package match3

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindHint(t *testing.T) {
	b := resolverBoard(t)
	before := b.Categories()

	a, c, ok := FindHint(b)
	if !ok {
		t.Fatal("FindHint found nothing on a playable board")
	}
	if a.Position() != (Position{0, 2}) || c.Position() != (Position{0, 3}) {
		t.Errorf("FindHint = %s, %s; want [0][2], [0][3]", a.Position(), c.Position())
	}
	if mustGet(t, b, 0, 2) != a || mustGet(t, b, 0, 3) != c {
		t.Error("hint tiles should belong to the original board")
	}
	if !reflect.DeepEqual(b.Categories(), before) {
		t.Error("FindHint changed the board")
	}
	if err := b.UndoSwap(); !errors.Is(err, ErrNoSwap) {
		t.Errorf("FindHint should not leave an undo record, got %v", err)
	}
}

func TestCountPotentialSwaps(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		stopAt int
		want   int
	}{
		{
			name: "dead board",
			rows: []string{"ABC", "DEF", "GHI"},
			want: 0,
		},
		{
			name: "single swap",
			rows: []string{"AAB", "CDA", "EFG"},
			want: 1,
		},
		{
			name: "two swaps",
			rows: []string{"AAB", "CDA", "EAG"},
			want: 2,
		},
		{
			name: "three swaps",
			rows: []string{"AABA", "CDAE", "FAGH"},
			want: 3,
		},
		{
			name:   "stop early",
			rows:   []string{"AABA", "CDAE", "FAGH"},
			stopAt: 2,
			want:   2,
		},
		{
			name:   "stop above total",
			rows:   []string{"AABA", "CDAE", "FAGH"},
			stopAt: 5,
			want:   3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.rows...)
			if got := CountPotentialSwaps(b, tc.stopAt); got != tc.want {
				t.Errorf("CountPotentialSwaps = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSwapMatchesRestoresBoard(t *testing.T) {
	tests := []struct {
		name   string
		a, n   Position
		wantOK bool
	}{
		{"matching swap", Position{0, 2}, Position{0, 3}, true},
		{"no match", Position{1, 0}, Position{1, 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := resolverBoard(t)
			before := b.Categories()
			a := mustGet(t, b, tc.a.Row, tc.a.Column)
			n := mustGet(t, b, tc.n.Row, tc.n.Column)

			if got := swapMatches(b, a, n); got != tc.wantOK {
				t.Errorf("swapMatches = %v, want %v", got, tc.wantOK)
			}
			if !reflect.DeepEqual(b.Categories(), before) {
				t.Error("board not restored after the trial swap")
			}
			if a.Position() != tc.a || n.Position() != tc.n {
				t.Errorf("tiles left at %s and %s", a.Position(), n.Position())
			}
			assertConsistent(t, b)
		})
	}
}

func TestFindHintDeadBoard(t *testing.T) {
	b := boardFrom(t, "ABC", "DEF", "GHI")
	if _, _, ok := FindHint(b); ok {
		t.Error("FindHint reported a swap on a dead board")
	}
}
