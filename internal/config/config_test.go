package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}

	def := DefaultGemsConfig()
	if cfg.Board != def.Board {
		t.Errorf("board = %+v, hardcoded %+v", cfg.Board, def.Board)
	}
	if len(cfg.Palette) != len(def.Palette) {
		t.Errorf("palette has %d gems, hardcoded %d", len(cfg.Palette), len(def.Palette))
	}
	if cfg.Scoring != def.Scoring || cfg.Rules != def.Rules || cfg.Timing != def.Timing {
		t.Error("embedded YAML drifted from DefaultGemsConfig")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	broken := filepath.Join(dir, "broken.yaml")

	writeFile(t, first, "board: {rows: 9}\n")
	writeFile(t, second, "board: {rows: 7}\n")
	writeFile(t, broken, "board: [not, a, map\n")

	tests := []struct {
		name       string
		custom     string
		candidates []string
		wantRows   int
		wantErr    bool
	}{
		{"custom wins", second, []string{first}, 7, false},
		{"first candidate", "", []string{first, second}, 9, false},
		{"missing candidate skipped", "", []string{filepath.Join(dir, "nope.yaml"), second}, 7, false},
		{"broken candidate skipped", "", []string{broken, second}, 7, false},
		{"embedded fallback", "", nil, 11, false},
		{"missing custom fails", filepath.Join(dir, "nope.yaml"), nil, 0, true},
		{"broken custom fails", broken, nil, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := load(tc.custom, tc.candidates)
			if (err != nil) != tc.wantErr {
				t.Fatalf("load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil && cfg.Board.Rows != tc.wantRows {
				t.Errorf("rows = %d, want %d", cfg.Board.Rows, tc.wantRows)
			}
		})
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gems.yaml")
	writeFile(t, path, "scoring:\n  chain_bonus: 0.5\n")

	cfg, err := load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scoring.ChainBonus != 0.5 {
		t.Errorf("chain_bonus = %v, want 0.5", cfg.Scoring.ChainBonus)
	}
	if cfg.Scoring.PointsPerTile != 1 || cfg.Board.Columns != 8 || len(cfg.Palette) != 7 {
		t.Errorf("unspecified fields lost their defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GemsConfig)
		wantMsg string
	}{
		{"defaults", func(*GemsConfig) {}, ""},
		{"tiny board", func(c *GemsConfig) { c.Board.Rows = 2 }, "at least 3x3"},
		{"short palette", func(c *GemsConfig) { c.Palette = c.Palette[:2] }, "at least 3 gems"},
		{"duplicate gem", func(c *GemsConfig) { c.Palette[1].Name = "red" }, "duplicate"},
		{"long glyph", func(c *GemsConfig) { c.Palette[0].Glyph = "ab" }, "one character"},
		{"zero points", func(c *GemsConfig) { c.Scoring.PointsPerTile = 0 }, "points_per_tile"},
		{"endless too wide", func(c *GemsConfig) { c.Rules.EndlessPaletteSize = 12 }, "endless_palette_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGemsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.wantMsg)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "NORMAL", "hard", "fixed", ""} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestDifficultyManager(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		palette int // level base 5, first level base 4
		moves   int // base 20
		target  int // base 100
	}{
		{DifficultyEasy, 4, 30, 80},
		{DifficultyNormal, 5, 20, 100},
		{DifficultyHard, 6, 15, 125},
		{DifficultyFixed, 4, 20, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGemsConfig()
			ApplyPreset(&cfg, tc.preset)
			dm := NewDifficultyManager(cfg.Difficulty, len(cfg.Palette))

			if got := dm.PaletteSize(5, 4); got != tc.palette {
				t.Errorf("PaletteSize = %d, want %d", got, tc.palette)
			}
			if got := dm.Moves(20); got != tc.moves {
				t.Errorf("Moves = %d, want %d", got, tc.moves)
			}
			if got := dm.Target(100); got != tc.target {
				t.Errorf("Target = %d, want %d", got, tc.target)
			}
			if got := dm.Moves(0); got != 0 {
				t.Errorf("unlimited moves should stay 0, got %d", got)
			}
		})
	}
}

func TestPaletteSizeClamped(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Progression: true, PaletteDelta: 3}, 7)
	if got := dm.PaletteSize(6, 4); got != 7 {
		t.Errorf("PaletteSize should clamp to the palette, got %d", got)
	}
	dm = NewDifficultyManager(DifficultyConfig{Progression: true, PaletteDelta: -5}, 7)
	if got := dm.PaletteSize(4, 4); got != 3 {
		t.Errorf("PaletteSize should never drop below 3, got %d", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
