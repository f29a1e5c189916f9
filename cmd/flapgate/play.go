package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkazanov/flapgate/internal/config"
	"github.com/pkazanov/flapgate/internal/core"
	"github.com/pkazanov/flapgate/internal/game"
	"github.com/pkazanov/flapgate/internal/platform/tui"
	"github.com/pkazanov/flapgate/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap (also starts and restarts a run)
  P          - Pause
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at the config's initial level

Examples:
  flapgate play
  flapgate play --difficulty hard
  flapgate play --seed 42
  flapgate play --config ./my-flapgate.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads, tunes and validates the game configuration.
// Validation failure is fatal: a broken geometry must never reach a tick.
func loadGameConfig(path, difficulty string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		switch preset := config.DifficultyPreset(difficulty); preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// terminalSize returns the terminal dimensions, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	if err := cfg.ValidateField(height); err != nil {
		return err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game.New(cfg), store, rc)
}
