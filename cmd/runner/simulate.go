package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sim"
)

var (
	flagFrames    int
	flagJumpEvery int
	flagLookahead float64
	flagRestarts  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the result",
	Long: `Run the simulation without a terminal UI at a fixed frame rate.

By default an autopilot jumps when a tree comes within --lookahead seconds
of the runner. With --jump-every N the runner instead jumps on every Nth
frame. Events are logged to stderr; the final result goes to stdout.

Examples:
  runner simulate --seed 7
  runner simulate --frames 600 --jump-every 30 --log-level debug
  runner simulate --difficulty hard --restarts 5`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump every N frames instead of using the autopilot")
	simulateCmd.Flags().Float64Var(&flagLookahead, "lookahead", 0.15, "Autopilot reaction window in seconds")
	simulateCmd.Flags().IntVar(&flagRestarts, "restarts", 0, "Start a new run after game over this many times")
}

// simOptions controls a headless run.
type simOptions struct {
	Frames    int
	Delta     float64 // Seconds per frame
	JumpEvery int     // 0 uses the autopilot
	Lookahead float64 // Autopilot window in seconds
	Restarts  int
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Frames  int
	Elapsed float64
	Runs    int
	Jumps   int
	Best    float64
	Final   *sim.State
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "seed", seed, "frames", flagFrames, "fps", flagFPS)

	sum := simulate(cfg, sim.NewRand(seed), simOptions{
		Frames:    flagFrames,
		Delta:     1 / float64(max(flagFPS, 1)),
		JumpEvery: flagJumpEvery,
		Lookahead: flagLookahead,
		Restarts:  flagRestarts,
	}, logger)

	printSummary(cmd.OutOrStdout(), sum, cfg)
	return nil
}

// simulate drives the step with a fixed delta. The first frame starts a run.
func simulate(cfg config.RunnerConfig, rng sim.Random, opts simOptions, logger *log.Logger) simSummary {
	s := sim.New(cfg, rng)
	var clock sim.Clock
	sum := simSummary{Final: s}

	restart := true
	for frame := 0; frame < opts.Frames; frame++ {
		jump := false
		if s.Running() {
			if opts.JumpEvery > 0 {
				jump = frame%opts.JumpEvery == 0
			} else {
				jump = autopilot(s, opts.Lookahead)
			}
		}
		if jump && s.Player.Grounded() {
			sum.Jumps++
		}

		res := sim.Step(s, clock.Frame(opts.Delta, jump, restart))
		restart = false
		sum.Frames++

		logStep(logger, frame, clock.Elapsed(), res)
		if res.Restarted {
			sum.Runs++
		}
		sum.Best = max(sum.Best, s.Score)

		if res.Collided() {
			if sum.Runs > opts.Restarts {
				break
			}
			restart = true
		}
	}

	sum.Elapsed = clock.Elapsed()
	return sum
}

// autopilot jumps when the nearest tree ahead enters the reaction window.
func autopilot(s *sim.State, lookahead float64) bool {
	if !s.Player.Grounded() {
		return false
	}
	reach := lookahead * -s.Config().Physics.FloorSpeed
	front := s.PlayerBox().Max.X()
	for _, o := range s.Obstacles {
		gap := s.ObstacleBox(o).Min.X() - front
		if gap > 0 && gap < reach {
			return true
		}
	}
	return false
}

func logStep(logger *log.Logger, frame int, elapsed float64, res sim.Result) {
	if res.Spawned > 0 {
		logger.Debug("trees spawned", "frame", frame, "count", res.Spawned)
	}
	if res.Culled > 0 {
		logger.Debug("trees culled", "frame", frame, "count", res.Culled)
	}
	if res.BirdRespawned {
		logger.Debug("bird respawned", "frame", frame)
	}
	if res.Restarted {
		logger.Info("run started", "frame", frame, "elapsed", fmt.Sprintf("%.2fs", elapsed))
	}
	if res.Collided() {
		logger.Info("run over", "frame", frame, "tree", res.Hit, "score", int(res.Score))
	}
}

func printSummary(w io.Writer, sum simSummary, cfg config.RunnerConfig) {
	fmt.Fprintf(w, "Frames:   %d (%.2fs)\n", sum.Frames, sum.Elapsed)
	fmt.Fprintf(w, "Runs:     %d\n", sum.Runs)
	fmt.Fprintf(w, "Jumps:    %d\n", sum.Jumps)
	fmt.Fprintf(w, "Best:     %s\n", sim.FormatScore(sum.Best, cfg.Score.Digits))
	fmt.Fprintf(w, "Score:    %s\n", sum.Final.ScoreText())
	fmt.Fprintf(w, "Phase:    %s\n", sum.Final.Phase)
}
