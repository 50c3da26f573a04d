package gems

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-gems/internal/config"
	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/match3"
	"github.com/vovakirdan/tui-gems/internal/registry"
	"github.com/vovakirdan/tui-gems/internal/tween"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// maxReshuffleAttempts bounds the search for a playable board.
const maxReshuffleAttempts = 100

// gemStyle is how one category is drawn.
type gemStyle struct {
	glyph rune
	color core.Color
}

// Game implements the match-3 game.
type Game struct {
	mode       Mode
	cfg        config.GemsConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	board    *match3.Board
	factory  *match3.RandomFactory
	resolver *match3.Resolver
	palette  []match3.Category
	styles   map[string]gemStyle

	// Animation
	tweens    *tween.Engine
	sprites   map[*match3.Tile]*sprite
	waitTicks int
	flash     []*match3.Tile // matched tiles shown before removal

	// Player input
	cursor    match3.Position
	selected  *match3.Tile
	hintA     *match3.Tile
	hintB     *match3.Tile
	hintTicks int

	score      int
	levelIndex int
	levelStart int // score when the current level began
	startLevel int // per-instance override of SetStartLevel
	target     int
	moveLimit  int // 0 means unlimited
	movesLeft  int
	stats      core.RunStats
	events     []core.Event
	err        error

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level settings applied on the next Reset.
var (
	settingsMu         sync.RWMutex
	selectedStartLevel int
	gameConfig         = config.DefaultGemsConfig()
)

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return selectedStartLevel
}

// SetConfig replaces the configuration used by games reset afterwards.
func SetConfig(cfg config.GemsConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameConfig = cfg
}

// GetConfig returns the configuration new games use.
func GetConfig() config.GemsConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return gameConfig
}

// takeStartLevel returns the selected start level and clears it.
func takeStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	level := selectedStartLevel
	selectedStartLevel = 0
	return level
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("gems", func() registry.Game {
		return New()
	})
	registry.Register("gems_endless", func() registry.Game {
		return NewEndless()
	})
}

// StartAtLevel makes every Reset of this instance begin at the given
// campaign level. SSH sessions use it instead of the shared SetStartLevel.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "gems_endless"
	}
	return "gems"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Gems (Endless)"
	}
	return "Gems"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = GetConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, len(g.cfg.Palette))
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.score = 0
	g.levelStart = 0
	g.stats = core.RunStats{}
	g.events = nil
	g.err = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.styles = make(map[string]gemStyle, len(g.cfg.Palette))
	for _, gs := range g.cfg.Palette {
		color, ok := core.ParseColor(gs.Color)
		if !ok {
			color = core.ColorWhite
		}
		glyph := '?'
		for _, r := range gs.Glyph {
			glyph = r
			break
		}
		g.styles[strings.ToLower(gs.Name)] = gemStyle{glyph: glyph, color: color}
	}

	// Apply selected start level (campaign only)
	start := takeStartLevel()
	if g.startLevel > 0 {
		start = g.startLevel
	}
	if g.mode == ModeCampaign && start > 0 && start <= LevelCount() {
		g.levelIndex = start - 1
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
	g.checkScreenSize()
}

// loadLevel sets up the level parameters and deals a fresh board.
func (g *Game) loadLevel() {
	size := len(g.cfg.Palette)
	if g.mode == ModeEndless {
		g.target = 0
		g.moveLimit = 0
		g.movesLeft = 0
		if n := g.cfg.Rules.EndlessPaletteSize; n > 0 {
			size = n
		}
	} else {
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		g.target = g.difficulty.Target(level.Target)
		g.moveLimit = g.difficulty.Moves(level.Moves)
		g.movesLeft = g.moveLimit
		size = g.difficulty.PaletteSize(level.Palette, Levels[0].Palette)
	}
	size = core.Clamp(size, 1, len(g.cfg.Palette))

	g.palette = make([]match3.Category, size)
	for i := range g.palette {
		g.palette[i] = match3.Category(g.cfg.Palette[i].Name)
	}

	board, err := match3.NewBoard(match3.Config{Rows: g.cfg.Board.Rows, Columns: g.cfg.Board.Columns})
	if err != nil {
		g.fail(err)
		return
	}
	g.board = board
	g.factory = match3.NewRandomFactory(g.rng, g.palette)

	var refill match3.TileFactory = g.factory
	if g.cfg.Rules.RefillGuard {
		refill = match3.Guarded(g.board, g.factory)
	}
	g.resolver = match3.NewResolver(g.board, refill, match3.ScoreSinkFunc(g.tilesRemoved))

	g.tweens = tween.NewEngine(g.tickRate, true)
	g.waitTicks = 0
	g.flash = nil
	g.selected = nil
	g.clearHint()
	g.cursor = match3.Position{Row: g.board.Rows() - 1, Column: 0}

	if !g.deal() {
		g.endRun()
	}
}

// deal populates the board until at least one swap can match. It reports
// false if no playable board turned up.
func (g *Game) deal() bool {
	ok, err := dealPlayable(g.board, g.factory)
	if err != nil {
		g.fail(err)
		return false
	}
	g.resetSprites()
	return ok
}

// dealPlayable repopulates b from f until the board has at least one matching
// swap, giving up after maxReshuffleAttempts deals. The board keeps the last
// deal either way.
func dealPlayable(b *match3.Board, f match3.TileFactory) (bool, error) {
	for range maxReshuffleAttempts {
		if err := match3.Populate(b, f); err != nil {
			return false, err
		}
		if match3.CountPotentialSwaps(b, 1) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// ticks converts seconds to simulation ticks.
func (g *Game) ticks(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Ceil(seconds * float64(g.tickRate)))
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	minW := max(boardW, 36)
	minH := boardH + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.ticks(g.cfg.Timing.LevelClearSeconds) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.clearHint()
		}
	}

	g.updateCascade()

	if !in.Empty() && !g.Busy() && !g.gameOver && !g.levelCleared {
		g.handleInput(in)
	}

	return core.StepResult{State: g.State()}
}

// Busy reports whether a swap is still resolving or animating.
func (g *Game) Busy() bool {
	return !g.resolver.Idle() || g.tweens.Active() > 0 || g.waitTicks > 0
}

// handleInput moves the cursor and turns selections into swaps.
func (g *Game) handleInput(in core.InputFrame) {
	rows, cols := g.board.Rows(), g.board.Columns()

	// Row 0 is the bottom of the board, so up increases the row.
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, rows-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Column = core.Clamp(g.cursor.Column-1, 0, cols-1)
	case in.Has(core.ActionRight):
		g.cursor.Column = core.Clamp(g.cursor.Column+1, 0, cols-1)
	}

	if in.Has(core.ActionCancel) {
		g.selected = nil
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Has(core.ActionSelect) {
		g.selectAtCursor()
	}
}

// selectAtCursor picks the tile under the cursor, or swaps it with the
// previously picked neighbor.
func (g *Game) selectAtCursor() {
	t, err := g.board.Get(g.cursor.Row, g.cursor.Column)
	if err != nil || t == nil {
		return
	}

	switch {
	case g.selected == nil:
		g.selected = t
	case g.selected == t:
		g.selected = nil
	case match3.AreNeighbors(g.selected, t):
		g.beginSwap(g.selected, t)
	default:
		g.selected = t
	}
}

// beginSwap hands the pair to the resolver and starts the swap animation.
func (g *Game) beginSwap(a, b *match3.Tile) {
	g.selected = nil
	g.clearHint()

	if err := g.resolver.Begin(a, b); err != nil {
		g.emit(core.Event{Kind: core.EventInvalid})
		return
	}
	// Begin already exchanged the coordinates; slide both sprites there.
	g.slideTo(a)
	g.slideTo(b)
}

func (g *Game) showHint() {
	a, b, ok := match3.FindHint(g.board)
	if !ok {
		return
	}
	g.hintA, g.hintB = a, b
	g.hintTicks = max(1, g.ticks(g.cfg.Timing.HintSeconds))
}

func (g *Game) clearHint() {
	g.hintA, g.hintB = nil, nil
	g.hintTicks = 0
}

// tilesRemoved is the resolver's score sink.
func (g *Game) tilesRemoved(count, chain int) {
	points := scorePoints(g.cfg.Scoring, count, chain)
	g.score += points
	g.stats.TilesCleared += count
	g.stats.LongestChain = max(g.stats.LongestChain, chain)

	kind := core.EventMatched
	if chain > 0 {
		kind = core.EventChain
	}
	g.emit(core.Event{Kind: kind, Count: count, Chain: chain, Points: points})
}

// scorePoints awards points_per_tile for each tile, scaled up by the chain
// bonus.
func scorePoints(s config.ScoringConfig, count, chain int) int {
	mult := 1 + s.ChainBonus*float64(chain)
	return int(math.Round(float64(s.PointsPerTile*count) * mult))
}

// finishMove runs once a matching swap has fully resolved.
func (g *Game) finishMove() {
	g.flash = nil

	if g.mode == ModeCampaign && g.target > 0 && g.score-g.levelStart >= g.target {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.emit(core.Event{Kind: core.EventLevelCleared})
		return
	}

	if g.moveLimit > 0 && g.movesLeft == 0 {
		g.endRun()
		return
	}

	if match3.CountPotentialSwaps(g.board, 1) > 0 {
		return
	}
	if !g.cfg.Rules.ReshuffleDeadBoards {
		g.endRun()
		return
	}
	g.reshuffle()
}

// reshuffle deals a new board when no swap can match.
func (g *Game) reshuffle() {
	g.selected = nil
	g.clearHint()
	if !g.deal() {
		g.endRun()
		return
	}
	g.stats.Reshuffles++
	g.emit(core.Event{Kind: core.EventReshuffled})
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		g.emit(core.Event{Kind: core.EventGameOver})
		return
	}

	g.levelIndex++
	g.levelStart = g.score
	g.loadLevel()
}

func (g *Game) endRun() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.selected = nil
	g.emit(core.Event{Kind: core.EventGameOver})
}

// fail ends the run on a board contract violation.
func (g *Game) fail(err error) {
	if g.err == nil {
		g.err = err
	}
	g.endRun()
}

// Err returns the error that ended the run, if any.
func (g *Game) Err() error {
	return g.err
}

func (g *Game) emit(ev core.Event) {
	ev.Tick = g.tick
	ev.Level = g.State().Level
	g.events = append(g.events, ev)
}

// DrainEvents returns the events since the last call.
func (g *Game) DrainEvents() []core.Event {
	out := g.events
	g.events = nil
	return out
}

// RunStats returns the statistics of the current run.
func (g *Game) RunStats() core.RunStats {
	return g.stats
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return core.GameState{
		Score:    g.score,
		Level:    level,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Resize adapts to a new window size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}
