// Command blockfall-bench plays random inputs against a headless session as
// fast as it can and prints a Markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

const frameDelta = 1.0 / 60.0

var playActions = []tetris.Action{
	tetris.ActionMoveLeft,
	tetris.ActionMoveRight,
	tetris.ActionSoftDrop,
	tetris.ActionRotate,
}

type nopRenderer struct {
	frames int64
}

func (r *nopRenderer) Render(tetris.Snapshot) { r.frames++ }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfall-bench:", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the piece sequence and the random inputs.")
	actionsPerFrame := flag.Int("actions-per-frame", 1, "Random actions queued before each frame.")
	configPath := flag.String("config", "", "Optional TOML config for the arena size and drop interval.")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	opts := cfg.Game.Options()
	opts.Seed = *seed
	game := tetris.NewGame(opts)
	s := session.New(game, &nopRenderer{}, log.Named("session"))

	report := &Report{
		Duration:        *duration,
		Seed:            *seed,
		ActionsPerFrame: *actionsPerFrame,
		Width:           game.Arena().Width(),
		Height:          game.Arena().Height(),
	}
	loop.Subscribe(s.Bus, func(tetris.GameOver) { report.GamesOver++ })

	rng := rand.New(rand.NewPCG(*seed, *seed+1))

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running benchmark", zap.Duration("duration", *duration), zap.Uint64("seed", *seed))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for range *actionsPerFrame {
				s.Input.Push(playActions[rng.IntN(len(playActions))])
			}

			updateStart := time.Now()
			s.Step(frameDelta)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	totals := game.Totals()
	report.Actions = s.Inputs()
	report.Pieces = totals.Pieces
	report.Lines = totals.Lines
	report.BestScore = totals.BestScore
	report.Systems = s.Scheduler.GetStats().Systems

	log.Info("benchmark finished", zap.Int64("frames", totalUpdates), zap.Int("games_over", report.GamesOver))

	return report.Generate(os.Stdout)
}
