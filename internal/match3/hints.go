package match3

// CountPotentialSwaps counts the adjacent swaps on b that would produce a
// match. Counting stops once stopAt swaps are found; stopAt <= 0 counts all.
// The search runs on a clone, so b and its undo record are left untouched.
func CountPotentialSwaps(b *Board, stopAt int) int {
	count := 0
	forEachMatchingSwap(b, func(_, _ *Tile) bool {
		count++
		return stopAt > 0 && count >= stopAt
	})
	return count
}

// FindHint returns the first swap, scanning bottom row first and left to
// right, that would produce a match. The returned tiles belong to b.
func FindHint(b *Board) (*Tile, *Tile, bool) {
	var first, second *Tile
	found := false
	forEachMatchingSwap(b, func(x, y *Tile) bool {
		first, second, found = x, y, true
		return true
	})
	return first, second, found
}

// forEachMatchingSwap tries every right and up neighbor swap on a clone and
// calls fn with the original tiles of each swap that matches. fn returns
// true to stop.
func forEachMatchingSwap(b *Board, fn func(a, b *Tile) bool) {
	clone, mapping := b.Clone()
	original := make(map[*Tile]*Tile, len(mapping))
	for orig, cp := range mapping {
		original[cp] = orig
	}

	for row := 0; row < clone.rows; row++ {
		for col := 0; col < clone.columns; col++ {
			a := clone.at(row, col)
			if a == nil {
				continue
			}
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				n := clone.at(row+d[0], col+d[1])
				if n == nil || n.Category.Same(a.Category) {
					continue
				}
				if swapMatches(clone, a, n) && fn(original[a], original[n]) {
					return
				}
			}
		}
	}
}

// swapMatches swaps a and n, checks both for a match, and swaps them back.
func swapMatches(b *Board, a, n *Tile) bool {
	if err := b.Swap(a, n); err != nil {
		return false
	}
	m, matchErr := MatchesContainingAll(b, []*Tile{a, n})
	if err := b.Swap(a, n); err != nil {
		return false
	}
	return matchErr == nil && m.Len() >= MinRun
}
