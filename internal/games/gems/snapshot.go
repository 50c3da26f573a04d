package gems

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateResolving    GameStateType = "resolving"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // 1-indexed, 0 for endless
	Target    int
	Score     int
	MovesLeft int
	Moves     int
	Board     []string // one string of category initials per row, bottom row first
	Phase     string   // resolver phase
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	case g.board != nil && g.Busy():
		state = StateResolving
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.State().Level,
		Target:    g.target,
		Score:     g.score,
		MovesLeft: g.movesLeft,
		Moves:     g.stats.Moves,
		State:     state,
	}
	if g.resolver != nil {
		snap.Phase = g.resolver.Phase().String()
	}
	if g.board != nil {
		for _, row := range g.board.Categories() {
			line := make([]rune, len(row))
			for i, c := range row {
				line[i] = initial(string(c))
			}
			snap.Board = append(snap.Board, string(line))
		}
	}
	return snap
}

// initial returns the first rune of a category name, or '.' for an empty slot.
func initial(name string) rune {
	for _, r := range name {
		return r
	}
	return '.'
}
