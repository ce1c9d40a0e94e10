// Command blockfall-gui plays the game in a window, optionally with a Dear
// ImGui debug overlay.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/logging"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

const (
	windowTitle = "Blockfall"
	// debugWidth is the extra window width given to the debug panels.
	debugWidth = 760
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "blockfall-gui:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a TOML config file (default "+config.DefaultPath+" if present).")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Display.DebugUI = true
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	player := sound.NewPlayer(cfg.Audio, log.Named("sound"))
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		}
	}
	defer player.Close()

	view := gui.NewView(cfg.Display.TileSize)
	game := tetris.NewGame(cfg.Game.Options())
	s := session.New(game, view, log.Named("session"))
	player.Attach(s.Bus)

	g := gui.NewGame(s, view, gui.DefaultKeymap(), log.Named("input"))
	width, height := view.ScreenSize(cfg.Game.Width, cfg.Game.Height)

	if cfg.Display.DebugUI {
		g.SetOverlay(debugui.NewOverlay(windowTitle, width+debugWidth, height))
		debugui.Install(s)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(cfg.Display.FrameRate)

	log.Info("window open", zap.Int("width", width), zap.Int("height", height), zap.Bool("debug", cfg.Display.DebugUI))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
