package match3

import "fmt"

// Phase is a state of the cascade resolver.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSwapped
	PhaseNoMatch
	PhaseMatchFound
	PhaseRemoving
	PhaseCollapsing
	PhaseRefilling
	PhaseRechecking
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapped:
		return "swapped"
	case PhaseNoMatch:
		return "no_match"
	case PhaseMatchFound:
		return "match_found"
	case PhaseRemoving:
		return "removing"
	case PhaseCollapsing:
		return "collapsing"
	case PhaseRefilling:
		return "refilling"
	case PhaseRechecking:
		return "rechecking"
	default:
		return "unknown"
	}
}

// ScoreSink is notified with the number of tiles removed per cascade step.
// Chain is 0 for the removal caused by the swap itself, 1 for the first
// follow-up cascade, and so on.
type ScoreSink interface {
	TilesRemoved(count, chain int)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(count, chain int)

// TilesRemoved implements ScoreSink.
func (f ScoreSinkFunc) TilesRemoved(count, chain int) {
	f(count, chain)
}

// Step describes one resolver transition.
type Step struct {
	// Phase is the phase the transition performed.
	Phase Phase
	// Tiles are the tiles the transition touched: the swapped pair, the
	// matched set, the removed set, the moved set, or the created set.
	Tiles []*Tile
	// Chain is the cascade depth of the step.
	Chain int
}

// Result summarises a complete resolution.
type Result struct {
	Steps   []Step
	Removed []*Tile // tiles taken off the board, in removal order
	Chains  int     // follow-up cascades after the initial match
	Matched bool    // false when the swap was reverted
}

// Resolver drives swap -> match -> remove -> collapse -> refill -> recheck
// on a single board. It accepts a new swap only while idle.
type Resolver struct {
	board   *Board
	factory TileFactory
	sink    ScoreSink

	phase  Phase
	first  *Tile
	second *Tile

	matches TileSet
	columns []int
	changed TileSet
	chain   int

	pending []*Tile
}

// NewResolver creates a resolver for b. sink may be nil.
func NewResolver(b *Board, f TileFactory, sink ScoreSink) *Resolver {
	return &Resolver{
		board:   b,
		factory: f,
		sink:    sink,
	}
}

// Phase returns the phase the next Advance will perform, or PhaseIdle.
func (r *Resolver) Phase() Phase {
	return r.phase
}

// Idle reports whether the resolver accepts a new swap.
func (r *Resolver) Idle() bool {
	return r.phase == PhaseIdle
}

// Chain returns the current cascade depth.
func (r *Resolver) Chain() int {
	return r.chain
}

// SetFactory replaces the refill factory. Only allowed while idle.
func (r *Resolver) SetFactory(f TileFactory) error {
	if !r.Idle() {
		return fmt.Errorf("match3: set factory: %w", ErrBusy)
	}
	r.factory = f
	return nil
}

// Begin swaps two neighboring tiles and arms the resolver.
func (r *Resolver) Begin(a, b *Tile) error {
	if !r.Idle() {
		return fmt.Errorf("match3: begin in phase %s: %w", r.phase, ErrBusy)
	}
	if a == nil || b == nil {
		return fmt.Errorf("match3: begin: %w", ErrInvalidTile)
	}
	if a == b {
		return fmt.Errorf("match3: begin %s: %w", a, ErrSameTile)
	}
	if !AreNeighbors(a, b) {
		return fmt.Errorf("match3: begin %s with %s: %w", a, b, ErrNotNeighbors)
	}
	if err := r.board.Swap(a, b); err != nil {
		return err
	}

	r.first, r.second = a, b
	r.chain = 0
	r.matches = TileSet{}
	r.changed = TileSet{}
	r.columns = nil
	r.phase = PhaseSwapped
	return nil
}

// Advance performs the next transition and reports it. Calling Advance
// while idle is a no-op that returns a PhaseIdle step.
func (r *Resolver) Advance() (Step, error) {
	switch r.phase {
	case PhaseIdle:
		return Step{Phase: PhaseIdle}, nil
	case PhaseSwapped:
		return r.checkSwap()
	case PhaseRemoving:
		return r.remove()
	case PhaseCollapsing:
		return r.collapse()
	case PhaseRefilling:
		return r.refill()
	case PhaseRechecking:
		return r.recheck()
	default:
		return Step{}, fmt.Errorf("match3: advance from phase %s", r.phase)
	}
}

// checkSwap looks for matches through either swapped tile; reverts the swap
// when there are none.
func (r *Resolver) checkSwap() (Step, error) {
	matches, err := MatchesContainingAll(r.board, []*Tile{r.first, r.second})
	if err != nil {
		return Step{}, err
	}

	if matches.Len() < MinRun {
		if err := r.board.UndoSwap(); err != nil {
			return Step{}, err
		}
		step := Step{Phase: PhaseNoMatch, Tiles: []*Tile{r.first, r.second}}
		r.phase = PhaseIdle
		r.first, r.second = nil, nil
		return step, nil
	}

	r.matches = matches
	r.phase = PhaseRemoving
	return Step{Phase: PhaseMatchFound, Tiles: matches.Tiles()}, nil
}

func (r *Resolver) remove() (Step, error) {
	removed := r.matches.Tiles()
	r.columns = r.matches.Columns()
	for _, t := range removed {
		if err := r.board.Remove(t); err != nil {
			return Step{}, err
		}
	}
	r.pending = append(r.pending, removed...)
	if r.sink != nil {
		r.sink.TilesRemoved(len(removed), r.chain)
	}

	r.phase = PhaseCollapsing
	return Step{Phase: PhaseRemoving, Tiles: removed, Chain: r.chain}, nil
}

func (r *Resolver) collapse() (Step, error) {
	moved, err := r.board.Collapse(r.columns)
	if err != nil {
		return Step{}, err
	}
	r.changed = moved

	r.phase = PhaseRefilling
	return Step{Phase: PhaseCollapsing, Tiles: moved.Tiles(), Chain: r.chain}, nil
}

// refill places a fresh tile in every empty slot of the touched columns,
// bottom to top.
func (r *Resolver) refill() (Step, error) {
	var created []*Tile
	for _, col := range r.columns {
		slots, err := r.board.EmptySlotsInColumn(col)
		if err != nil {
			return Step{}, err
		}
		for _, slot := range slots {
			t := r.factory.NewTile(slot.Row, slot.Column)
			if err := r.board.Place(slot.Row, slot.Column, t); err != nil {
				return Step{}, err
			}
			created = append(created, t)
		}
	}
	r.changed.AddAll(created)

	r.phase = PhaseRechecking
	return Step{Phase: PhaseRefilling, Tiles: created, Chain: r.chain}, nil
}

func (r *Resolver) recheck() (Step, error) {
	matches, err := MatchesContainingAll(r.board, r.changed.Tiles())
	if err != nil {
		return Step{}, err
	}

	if matches.Len() >= MinRun {
		r.chain++
		r.matches = matches
		r.phase = PhaseRemoving
		return Step{Phase: PhaseRechecking, Tiles: matches.Tiles(), Chain: r.chain}, nil
	}

	r.phase = PhaseIdle
	r.first, r.second = nil, nil
	r.matches = TileSet{}
	r.changed = TileSet{}
	return Step{Phase: PhaseRechecking, Chain: r.chain}, nil
}

// Resolve runs a full swap resolution synchronously.
func (r *Resolver) Resolve(a, b *Tile) (Result, error) {
	if err := r.Begin(a, b); err != nil {
		return Result{}, err
	}

	var res Result
	for !r.Idle() {
		step, err := r.Advance()
		if err != nil {
			return res, err
		}
		res.Steps = append(res.Steps, step)
		switch step.Phase {
		case PhaseMatchFound:
			res.Matched = true
		case PhaseRemoving:
			res.Removed = append(res.Removed, step.Tiles...)
		}
	}
	res.Chains = r.chain
	return res, nil
}

// Pending returns the removed tiles awaiting disposal.
func (r *Resolver) Pending() []*Tile {
	return r.pending
}

// Dispose hands the pending-destroy tiles to the caller and forgets them.
func (r *Resolver) Dispose() []*Tile {
	out := r.pending
	r.pending = nil
	return out
}
