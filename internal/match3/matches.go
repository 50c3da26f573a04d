package match3

import "fmt"

// MinRun is the shortest straight run that counts as a match.
const MinRun = 3

// MatchesContaining returns the tiles forming a run of at least MinRun
// through t, horizontally and vertically. Each axis is judged on its own and
// the qualifying runs are unioned; L and T shapes are the union of their two
// arms, not a flood fill. Returns an empty set when neither axis qualifies.
func MatchesContaining(b *Board, t *Tile) (TileSet, error) {
	if err := checkPlaced(b, t); err != nil {
		return TileSet{}, fmt.Errorf("match3: matches: %w", err)
	}

	h := run(b, t, 0, 1)
	v := run(b, t, 1, 0)

	var out TileSet
	if len(h) >= MinRun {
		out.AddAll(h)
	}
	if len(v) >= MinRun {
		out.AddAll(v)
	}
	return out, nil
}

// MatchesContainingAll unions MatchesContaining over every tile.
func MatchesContainingAll(b *Board, tiles []*Tile) (TileSet, error) {
	var out TileSet
	for _, t := range tiles {
		m, err := MatchesContaining(b, t)
		if err != nil {
			return TileSet{}, err
		}
		out.AddAll(m.tiles)
	}
	return out, nil
}

// run collects t and its same-category neighbors along one axis, walking
// both directions until the board edge, an empty slot, or a mismatch.
func run(b *Board, t *Tile, dRow, dCol int) []*Tile {
	tiles := []*Tile{t}
	for _, sign := range [2]int{-1, 1} {
		row, col := t.Row+sign*dRow, t.Column+sign*dCol
		for {
			n := b.at(row, col)
			if n == nil || !n.Category.Same(t.Category) {
				break
			}
			tiles = append(tiles, n)
			row += sign * dRow
			col += sign * dCol
		}
	}
	return tiles
}

// checkPlaced verifies t is non-nil and stored at its own coordinates.
func checkPlaced(b *Board, t *Tile) error {
	if t == nil {
		return fmt.Errorf("nil tile: %w", ErrInvalidTile)
	}
	if !b.InBounds(t.Row, t.Column) {
		return fmt.Errorf("tile %s: %w", t, ErrOutOfRange)
	}
	if b.slots[t.Row][t.Column] != t {
		return fmt.Errorf("tile %s not stored at its position: %w", t, ErrInvalidTile)
	}
	return nil
}

// AreNeighbors reports whether two tiles are orthogonally adjacent. Tiles
// must share a row or a column and be at most one step apart on both axes,
// so diagonal pairs are rejected. A tile is its own neighbor under this rule.
func AreNeighbors(a, b *Tile) bool {
	if a == nil || b == nil {
		return false
	}
	return (a.Row == b.Row || a.Column == b.Column) &&
		abs(a.Column-b.Column) <= 1 && abs(a.Row-b.Row) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
