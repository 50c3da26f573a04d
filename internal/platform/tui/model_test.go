package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/storage"
)

// fixedGame reports a state set by the test and ignores input.
type fixedGame struct {
	state core.GameState
}

func (g *fixedGame) ID() string { return "fixed" }
func (g *fixedGame) Title() string { return "Fixed" }
func (g *fixedGame) Reset(core.RuntimeConfig) {}
func (g *fixedGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *fixedGame) Render(*core.Screen) {}
func (g *fixedGame) State() core.GameState { return g.state }

func TestBackRecordsUnfinishedRun(t *testing.T) {
	tests := []struct {
		name      string
		state     core.GameState
		saved     bool // run already recorded before the key press
		wantBack  bool
		wantSaved int
	}{
		{
			name:      "paused mid level",
			state:     core.GameState{Score: 40, Level: 2, Paused: true},
			wantBack:  true,
			wantSaved: 1,
		},
		{
			name:      "game over already saved",
			state:     core.GameState{Score: 90, Level: 3, GameOver: true},
			saved:     true,
			wantBack:  true,
			wantSaved: 0,
		},
		{
			name:      "paused with nothing scored",
			state:     core.GameState{Level: 1, Paused: true},
			wantBack:  true,
			wantSaved: 0,
		},
		{
			name:      "running",
			state:     core.GameState{Score: 40, Level: 2},
			wantBack:  false,
			wantSaved: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
			if err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { _ = store.Close() })

			game := &fixedGame{state: tc.state}
			m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 1}, ModelOptions{Store: store})
			m.gameState = tc.state
			m.scoreSaved = tc.saved

			next, _ := m.Update(runes("b"))
			next, _ = next.(Model).Update(runes("b"))
			got := next.(Model)

			if got.BackToMenu() != tc.wantBack {
				t.Errorf("BackToMenu = %v, want %v", got.BackToMenu(), tc.wantBack)
			}
			scores, err := store.TopScores(game.ID(), 10)
			if err != nil {
				t.Fatal(err)
			}
			if len(scores) != tc.wantSaved {
				t.Fatalf("stored %d scores, want %d", len(scores), tc.wantSaved)
			}
			if tc.wantSaved > 0 && scores[0].Score != tc.state.Score {
				t.Errorf("stored score = %d, want %d", scores[0].Score, tc.state.Score)
			}
		})
	}
}
