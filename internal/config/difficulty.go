package config

import "math"

// DifficultyManager turns a level's base parameters into the values used
// for play under the configured difficulty.
type DifficultyManager struct {
	cfg        DifficultyConfig
	maxPalette int
}

// NewDifficultyManager creates a manager. maxPalette is the number of
// categories available in the configured palette.
func NewDifficultyManager(cfg DifficultyConfig, maxPalette int) *DifficultyManager {
	return &DifficultyManager{
		cfg:        cfg,
		maxPalette: maxPalette,
	}
}

// PaletteSize returns how many categories a level draws from. Without
// progression every level uses the first level's size.
func (d *DifficultyManager) PaletteSize(levelBase, firstBase int) int {
	base := levelBase
	if !d.cfg.Progression {
		base = firstBase
	}
	return clamp(base+d.cfg.PaletteDelta, 3, d.maxPalette)
}

// Moves scales a move budget. Zero means unlimited and stays zero.
func (d *DifficultyManager) Moves(base int) int {
	if base <= 0 {
		return 0
	}
	scale := d.cfg.MoveScale
	if scale <= 0 {
		scale = 1
	}
	return max(1, int(math.Round(float64(base)*scale)))
}

// Target scales a target score.
func (d *DifficultyManager) Target(base int) int {
	scale := d.cfg.TargetScale
	if scale <= 0 {
		scale = 1
	}
	return max(1, int(math.Round(float64(base)*scale)))
}

func clamp(val, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(val, lo), hi)
}
