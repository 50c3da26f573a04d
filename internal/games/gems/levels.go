// Package gems implements the match-3 game with campaign and endless modes
// on top of the match3 board core.
package gems

// Level defines a campaign level.
type Level struct {
	ID      int
	Name    string
	Target  int // points to earn within the level
	Moves   int // matching swaps allowed
	Palette int // number of gem categories in play
}

// Levels defines the 10 campaign levels. Later levels add categories, which
// makes matches rarer and cascades shorter.
var Levels = []Level{
	{ID: 1, Name: "Rough Cut", Target: 40, Moves: 20, Palette: 4},
	{ID: 2, Name: "Polished", Target: 60, Moves: 20, Palette: 4},
	{ID: 3, Name: "Facets", Target: 80, Moves: 22, Palette: 5},
	{ID: 4, Name: "Brilliance", Target: 100, Moves: 22, Palette: 5},
	{ID: 5, Name: "Clarity", Target: 120, Moves: 24, Palette: 5},
	{ID: 6, Name: "Carat", Target: 140, Moves: 24, Palette: 6},
	{ID: 7, Name: "Prism", Target: 160, Moves: 25, Palette: 6},
	{ID: 8, Name: "Refraction", Target: 180, Moves: 25, Palette: 6},
	{ID: 9, Name: "Crown Jewel", Target: 200, Moves: 26, Palette: 7},
	{ID: 10, Name: "Treasury", Target: 240, Moves: 28, Palette: 7},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
