package gems

import (
	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/match3"
	"github.com/vovakirdan/tui-gems/internal/tween"
)

// sprite is where a tile is drawn, in board cell units. It trails the
// tile's board position while an animation plays.
type sprite struct {
	col float64
	row float64
}

// resetSprites places a sprite on every tile of a freshly dealt board.
func (g *Game) resetSprites() {
	g.tweens.Kill(false)
	g.sprites = make(map[*match3.Tile]*sprite)
	for _, t := range g.board.Tiles() {
		g.sprites[t] = &sprite{col: float64(t.Column), row: float64(t.Row)}
	}
}

// spriteFor returns the tile's sprite, creating it at the tile's position.
func (g *Game) spriteFor(t *match3.Tile) *sprite {
	s, ok := g.sprites[t]
	if !ok {
		s = &sprite{col: float64(t.Column), row: float64(t.Row)}
		g.sprites[t] = s
	}
	return s
}

// slideTo animates a tile's sprite to the tile's board position over one
// move. With a zero move duration the sprite jumps there.
func (g *Game) slideTo(t *match3.Tile) {
	s := g.spriteFor(t)
	duration := g.cfg.Timing.MoveSeconds
	if g.ticks(duration) == 0 {
		s.col, s.row = float64(t.Column), float64(t.Row)
		return
	}
	g.tweens.To(s, duration, []tween.Prop{
		{Get: func() float64 { return s.col }, Set: func(v float64) { s.col = v }, End: float64(t.Column)},
		{Get: func() float64 { return s.row }, Set: func(v float64) { s.row = v }, End: float64(t.Row)},
	}, tween.QuadEaseOut)
}

// dropIn starts new tiles above the board so each column falls as a block.
func (g *Game) dropIn(created []*match3.Tile) {
	perColumn := make(map[int]int)
	for _, t := range created {
		perColumn[t.Column]++
	}
	for _, t := range created {
		g.sprites[t] = &sprite{col: float64(t.Column), row: float64(t.Row + perColumn[t.Column])}
		g.slideTo(t)
	}
}

// updateCascade advances tweens and, once they settle, performs the next
// resolver transition.
func (g *Game) updateCascade() {
	g.tweens.Update()

	if g.waitTicks > 0 {
		g.waitTicks--
		return
	}
	if g.tweens.Active() > 0 || g.resolver.Idle() {
		return
	}

	step, err := g.resolver.Advance()
	if err != nil {
		g.fail(err)
		return
	}
	g.applyStep(step)
}

// applyStep turns a resolver transition into animation and bookkeeping.
func (g *Game) applyStep(step match3.Step) {
	hold := g.ticks(g.cfg.Timing.MoveSeconds)

	switch step.Phase {
	case match3.PhaseNoMatch:
		for _, t := range step.Tiles {
			g.slideTo(t)
		}
		g.emit(core.Event{Kind: core.EventInvalid})

	case match3.PhaseMatchFound:
		g.flash = step.Tiles
		g.stats.Moves++
		if g.moveLimit > 0 && g.movesLeft > 0 {
			g.movesLeft--
		}
		g.waitTicks = hold

	case match3.PhaseRemoving:
		g.flash = nil
		for _, t := range g.resolver.Dispose() {
			delete(g.sprites, t)
		}

	case match3.PhaseCollapsing:
		for _, t := range step.Tiles {
			g.slideTo(t)
		}

	case match3.PhaseRefilling:
		g.dropIn(step.Tiles)

	case match3.PhaseRechecking:
		if len(step.Tiles) > 0 {
			g.flash = step.Tiles
			g.waitTicks = hold
			return
		}
		if g.resolver.Idle() {
			g.finishMove()
		}
	}
}

// drawPosition returns where a tile is drawn, in board cell units.
func (g *Game) drawPosition(t *match3.Tile) (col, row float64) {
	if s, ok := g.sprites[t]; ok {
		return s.col, s.row
	}
	return float64(t.Column), float64(t.Row)
}
