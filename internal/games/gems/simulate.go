package gems

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-gems/internal/config"
	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/match3"
)

// SimMove reports one autoplayed swap.
type SimMove struct {
	N          int // 1-based move number
	From       match3.Position
	To         match3.Position
	Removed    int
	Chains     int
	Points     int
	Reshuffled bool
}

// SimSummary totals an autoplay run.
type SimSummary struct {
	Score    int
	Stats    core.RunStats
	Stuck    bool // a dead board could not be reshuffled
	Final    []string
	Palette  int
	BoardDim match3.Config
}

// Simulate plays up to moves swaps headless, always taking the first hint,
// and calls onMove after each one. It uses the endless palette and ignores
// animation timing.
func Simulate(cfg config.GemsConfig, seed int64, moves int, onMove func(SimMove)) (SimSummary, error) {
	if err := cfg.Validate(); err != nil {
		return SimSummary{}, err
	}

	size := len(cfg.Palette)
	if n := cfg.Rules.EndlessPaletteSize; n > 0 {
		size = n
	}
	palette := make([]match3.Category, size)
	for i := range palette {
		palette[i] = match3.Category(cfg.Palette[i].Name)
	}

	dim := match3.Config{Rows: cfg.Board.Rows, Columns: cfg.Board.Columns}
	board, err := match3.NewBoard(dim)
	if err != nil {
		return SimSummary{}, err
	}
	factory := match3.NewRandomFactory(rand.New(rand.NewSource(seed)), palette)
	if _, err := dealPlayable(board, factory); err != nil {
		return SimSummary{}, err
	}

	var refill match3.TileFactory = factory
	if cfg.Rules.RefillGuard {
		refill = match3.Guarded(board, factory)
	}

	sum := SimSummary{Palette: size, BoardDim: dim}
	var movePoints int
	resolver := match3.NewResolver(board, refill, match3.ScoreSinkFunc(func(count, chain int) {
		movePoints += scorePoints(cfg.Scoring, count, chain)
	}))

	for n := 1; n <= moves; n++ {
		move := SimMove{N: n}
		if match3.CountPotentialSwaps(board, 1) == 0 {
			if !cfg.Rules.ReshuffleDeadBoards {
				sum.Stuck = true
				break
			}
			ok, err := dealPlayable(board, factory)
			if err != nil {
				return sum, fmt.Errorf("simulate move %d: reshuffle: %w", n, err)
			}
			if !ok {
				sum.Stuck = true
				break
			}
			move.Reshuffled = true
			sum.Stats.Reshuffles++
		}

		a, b, ok := match3.FindHint(board)
		if !ok {
			sum.Stuck = true
			break
		}
		move.From, move.To = a.Position(), b.Position()

		movePoints = 0
		res, err := resolver.Resolve(a, b)
		if err != nil {
			return sum, fmt.Errorf("simulate move %d: %w", n, err)
		}
		resolver.Dispose()
		if !res.Matched {
			return sum, fmt.Errorf("simulate move %d: hinted swap %s/%s did not match", n, move.From, move.To)
		}

		move.Removed = len(res.Removed)
		move.Chains = res.Chains
		move.Points = movePoints

		sum.Score += movePoints
		sum.Stats.Moves++
		sum.Stats.TilesCleared += move.Removed
		sum.Stats.LongestChain = max(sum.Stats.LongestChain, res.Chains)

		if onMove != nil {
			onMove(move)
		}
	}

	for _, row := range board.Categories() {
		line := make([]rune, len(row))
		for i, c := range row {
			line[i] = initial(string(c))
		}
		sum.Final = append(sum.Final, string(line))
	}
	return sum, nil
}
