package match3

import "errors"

// Contract violations. None of these are transient; they indicate a caller bug
// and are never retried.
var (
	ErrOutOfRange   = errors.New("position out of range")
	ErrNoSwap       = errors.New("no swap recorded to undo")
	ErrInvalidTile  = errors.New("invalid tile")
	ErrNotNeighbors = errors.New("tiles are not neighbors")
	ErrSameTile     = errors.New("cannot swap a tile with itself")
	ErrBusy         = errors.New("resolver is not idle")
	ErrBadConfig    = errors.New("invalid board config")
)
