// Package config provides YAML-based configuration loading and difficulty
// presets for the gems game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// GemsConfig contains all configuration for the gems game.
type GemsConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Palette    []GemStyle       `yaml:"palette"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the grid size. Row 0 is the bottom row.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// GemStyle names a tile category and how it is drawn.
type GemStyle struct {
	Name  string `yaml:"name"`  // category, compared case-insensitively
	Glyph string `yaml:"glyph"` // single rune
	Color string `yaml:"color"` // colour name, see core.ParseColor
}

// TimingConfig defines animation pacing in seconds.
type TimingConfig struct {
	MoveSeconds       float64 `yaml:"move_seconds"`        // per cascade phase
	HintSeconds       float64 `yaml:"hint_seconds"`        // how long a hint flashes
	LevelClearSeconds float64 `yaml:"level_clear_seconds"` // banner before the next level
}

// ScoringConfig defines points per removed tile.
type ScoringConfig struct {
	PointsPerTile int     `yaml:"points_per_tile"`
	ChainBonus    float64 `yaml:"chain_bonus"` // extra multiplier per cascade depth
}

// RulesConfig toggles board policies.
type RulesConfig struct {
	RefillGuard         bool `yaml:"refill_guard"`          // reroll refills that would match instantly
	ReshuffleDeadBoards bool `yaml:"reshuffle_dead_boards"` // rebuild when no swap can match
	EndlessPaletteSize  int  `yaml:"endless_palette_size"`
}

// DifficultyConfig scales the campaign levels.
type DifficultyConfig struct {
	Progression  bool    `yaml:"progression"`   // palette grows with the level
	PaletteDelta int     `yaml:"palette_delta"` // added to every level's palette size
	MoveScale    float64 `yaml:"move_scale"`    // multiplies move budgets
	TargetScale  float64 `yaml:"target_scale"`  // multiplies target scores
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// DifficultyForPreset returns the scaling for a preset.
func DifficultyForPreset(preset DifficultyPreset) DifficultyConfig {
	switch preset {
	case DifficultyEasy:
		return DifficultyConfig{Progression: true, PaletteDelta: -1, MoveScale: 1.5, TargetScale: 0.8}
	case DifficultyHard:
		return DifficultyConfig{Progression: true, PaletteDelta: 1, MoveScale: 0.75, TargetScale: 1.25}
	case DifficultyFixed:
		return DifficultyConfig{Progression: false, PaletteDelta: 0, MoveScale: 1, TargetScale: 1}
	default:
		return DifficultyConfig{Progression: true, PaletteDelta: 0, MoveScale: 1, TargetScale: 1}
	}
}

// Validate rejects configurations that cannot produce a playable board.
func (c GemsConfig) Validate() error {
	var errs []error

	if c.Board.Rows < 3 || c.Board.Columns < 3 {
		errs = append(errs, fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Rows, c.Board.Columns))
	}
	if len(c.Palette) < 3 {
		errs = append(errs, fmt.Errorf("palette needs at least 3 gems, got %d", len(c.Palette)))
	}
	seen := make(map[string]bool)
	for i, g := range c.Palette {
		key := strings.ToLower(g.Name)
		switch {
		case key == "":
			errs = append(errs, fmt.Errorf("palette[%d]: empty name", i))
		case seen[key]:
			errs = append(errs, fmt.Errorf("palette[%d]: duplicate name %q", i, g.Name))
		}
		seen[key] = true
		if utf8.RuneCountInString(g.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("palette[%d]: glyph %q must be one character", i, g.Glyph))
		}
	}
	if c.Timing.MoveSeconds < 0 || c.Timing.HintSeconds < 0 || c.Timing.LevelClearSeconds < 0 {
		errs = append(errs, errors.New("timing values must not be negative"))
	}
	if c.Scoring.PointsPerTile <= 0 {
		errs = append(errs, fmt.Errorf("points_per_tile must be positive, got %d", c.Scoring.PointsPerTile))
	}
	if c.Scoring.ChainBonus < 0 {
		errs = append(errs, fmt.Errorf("chain_bonus must not be negative, got %v", c.Scoring.ChainBonus))
	}
	if n := c.Rules.EndlessPaletteSize; n != 0 && (n < 3 || n > len(c.Palette)) {
		errs = append(errs, fmt.Errorf("endless_palette_size %d outside 3..%d", n, len(c.Palette)))
	}
	if c.Difficulty.MoveScale < 0 || c.Difficulty.TargetScale < 0 {
		errs = append(errs, errors.New("difficulty scales must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid gems config: %w", errors.Join(errs...))
	}
	return nil
}
