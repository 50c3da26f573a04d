package match3

import "strings"

// TileSet is a deduplicated collection of tiles that remembers insertion
// order. Membership is by pointer identity.
type TileSet struct {
	tiles []*Tile
	index map[*Tile]struct{}
}

// NewTileSet creates a set holding the given tiles.
func NewTileSet(tiles ...*Tile) TileSet {
	var s TileSet
	s.AddAll(tiles)
	return s
}

// Add inserts a tile if it is not already present. Nil tiles are ignored.
func (s *TileSet) Add(t *Tile) {
	if t == nil {
		return
	}
	if s.index == nil {
		s.index = make(map[*Tile]struct{})
	}
	if _, ok := s.index[t]; ok {
		return
	}
	s.index[t] = struct{}{}
	s.tiles = append(s.tiles, t)
}

// AddAll inserts every tile in the slice.
func (s *TileSet) AddAll(tiles []*Tile) {
	for _, t := range tiles {
		s.Add(t)
	}
}

// Union returns a new set containing the members of s followed by other.
func (s TileSet) Union(other TileSet) TileSet {
	out := NewTileSet(s.tiles...)
	out.AddAll(other.tiles)
	return out
}

// Contains reports membership.
func (s TileSet) Contains(t *Tile) bool {
	_, ok := s.index[t]
	return ok
}

// Len returns the number of tiles.
func (s TileSet) Len() int {
	return len(s.tiles)
}

// Tiles returns a copy of the members in insertion order.
func (s TileSet) Tiles() []*Tile {
	out := make([]*Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Columns returns the distinct column indices of the members, first-seen order.
func (s TileSet) Columns() []int {
	seen := make(map[int]bool)
	var cols []int
	for _, t := range s.tiles {
		if !seen[t.Column] {
			seen[t.Column] = true
			cols = append(cols, t.Column)
		}
	}
	return cols
}

// String lists member positions, e.g. "[0][1], [0][2]".
func (s TileSet) String() string {
	parts := make([]string, 0, len(s.tiles))
	for _, t := range s.tiles {
		parts = append(parts, t.Position().String())
	}
	return strings.Join(parts, ", ")
}
