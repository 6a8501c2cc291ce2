package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Any key    - Start a run
  Space/Up   - Jump
  R/Enter    - New run after game over
  ?          - More keys
  Q/Ctrl+C   - Quit

Difficulty options:
  easy    - Slower trees, longer gaps
  normal  - Default tuning
  hard    - Faster trees, shorter gaps

Logs are discarded unless --log-file is set.

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --log-file runner.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so there is no stderr fallback
	logger, closer, err := newLogger(io.Discard, "runner")
	if err != nil {
		return err
	}
	defer closer.Close()

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	logger.Debug("config loaded",
		"floor_speed", cfg.Physics.FloorSpeed,
		"jump_speed", cfg.Physics.JumpSpeed,
		"difficulty", flagDifficulty,
	)

	if err := tui.Run(runner.New(cfg), runtime, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
