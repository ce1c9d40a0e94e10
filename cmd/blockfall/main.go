// Command blockfall plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/term"
	"github.com/plus3/blockfall/tetris"
)

const defaultLogFile = "blockfall.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfall:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a TOML config file (default "+config.DefaultPath+" if present).")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}

	// The screen owns stdout and stderr while the game runs.
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	player := sound.NewPlayer(cfg.Audio, log.Named("sound"))
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		}
	}
	defer player.Close()

	renderer := term.NewRenderer(screen)
	game := tetris.NewGame(cfg.Game.Options())
	s := session.New(game, renderer, log.Named("session"))
	s.Attach(renderer)
	player.Attach(s.Bus)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := term.NewClient(screen, term.DefaultKeymap(), s.Input, log.Named("input"))
	go client.Poll(ctx, cancel)

	s.Run(ctx, cfg.Display.FrameInterval())
	return nil
}
