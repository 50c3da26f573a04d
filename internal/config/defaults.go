package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

// DefaultGemsConfig returns the hardcoded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Board: BoardConfig{
			Rows:    11,
			Columns: 8,
		},
		Palette: []GemStyle{
			{Name: "Red", Glyph: "◆", Color: "bright_red"},
			{Name: "Green", Glyph: "▲", Color: "bright_green"},
			{Name: "Blue", Glyph: "●", Color: "bright_blue"},
			{Name: "Yellow", Glyph: "■", Color: "bright_yellow"},
			{Name: "Purple", Glyph: "♦", Color: "bright_magenta"},
			{Name: "Orange", Glyph: "★", Color: "orange"},
			{Name: "White", Glyph: "♥", Color: "bright_white"},
		},
		Timing: TimingConfig{
			MoveSeconds:       0.25,
			HintSeconds:       1.5,
			LevelClearSeconds: 2,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 1,
			ChainBonus:    0,
		},
		Rules: RulesConfig{
			RefillGuard:         false,
			ReshuffleDeadBoards: true,
			EndlessPaletteSize:  6,
		},
		Difficulty: DifficultyForPreset(DifficultyNormal),
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGemsYAML
}
