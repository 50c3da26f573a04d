package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gems/internal/audio"
	"github.com/vovakirdan/tui-gems/internal/core"
	"github.com/vovakirdan/tui-gems/internal/games/gems"
	"github.com/vovakirdan/tui-gems/internal/platform/tui"
	"github.com/vovakirdan/tui-gems/internal/registry"
	"github.com/vovakirdan/tui-gems/internal/storage"
)

var (
	flagMode  string
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play gems",
	Long: `Start playing. Without --mode or --level a menu lets you pick the
campaign, endless mode, a starting level or the high scores.

Controls:
  Arrows/WASD   - Move cursor
  Space/Enter   - Select a gem, then a neighbour to swap
  Esc           - Drop the selection
  H/?           - Show a hint
  P             - Pause
  R             - Restart (after game over)
  B             - Back to menu (paused or game over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Fewer gem colours, more moves, lower targets
  normal - Levels as designed
  hard   - One more colour, fewer moves, higher targets
  fixed  - Every level uses the first level's palette

Examples:
  gems play
  gems play --mode endless
  gems play --level 5
  gems play --difficulty hard --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: campaign or endless (skips the menu)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (skips the menu)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.ModelOptions{
		Store:  store,
		Logger: logger,
		Sound:  openSound(logger),
	}
	if sm, ok := opts.Sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	cfg := runtimeConfig()

	if cmd.Flags().Changed("mode") || cmd.Flags().Changed("level") {
		gameID, err := gameIDForMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if flagLevel < 0 || flagLevel > gems.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", gems.LevelCount())
			os.Exit(1)
		}
		if flagLevel > 0 {
			gems.SetStartLevel(flagLevel)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		if _, err := tui.Run(game, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runMenuLoop(cfg, opts)
}

// runMenuLoop alternates between the menu and games until the user quits.
func runMenuLoop(cfg core.RuntimeConfig, opts tui.ModelOptions) {
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if result.Level > 0 {
			gems.SetStartLevel(result.Level)
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// New board every game unless the seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}

// openSound starts the audio device unless --mute is set. Audio failures
// leave the game silent.
func openSound(logger *log.Logger) tui.Sounder {
	if flagMute {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return nil
	}
	return sm
}

func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", string(gems.ModeCampaign):
		return "gems", nil
	case string(gems.ModeEndless):
		return "gems_endless", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want campaign or endless)", mode)
	}
}
