package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/plus3/blockfall/tetris"
)

// DefaultPath is read when no config file is named on the command line.
const DefaultPath = "blockfall.toml"

type Config struct {
	Game    GameConfig    `toml:"game"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Width        int           `toml:"width"`
	Height       int           `toml:"height"`
	DropInterval time.Duration `toml:"drop_interval"`
	Seed         uint64        `toml:"seed"` // 0 = random
}

type DisplayConfig struct {
	TileSize  int  `toml:"tile_size"`  // pixels, windowed client only
	FrameRate int  `toml:"frame_rate"` // frames per second
	DebugUI   bool `toml:"debug_ui"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
	File   string `toml:"file"`   // empty = stderr
}

// Options converts the game section into engine options.
func (c GameConfig) Options() tetris.Options {
	return tetris.Options{
		Width:        c.Width,
		Height:       c.Height,
		DropInterval: c.DropInterval,
		Seed:         c.Seed,
	}
}

// FrameInterval is the time between two scheduler frames.
func (c DisplayConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Load reads path and decodes it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Resolve loads the config a command was pointed at. An empty path means
// DefaultPath if it exists, otherwise the defaults; a named file must exist.
func Resolve(path string) (*Config, error) {
	if path == "" {
		return LoadOptional(DefaultPath)
	}
	return Load(path)
}

var (
	ErrArenaTooSmall   = errors.New("arena must be at least 4x4")
	ErrInvalidInterval = errors.New("drop interval must be positive")
	ErrInvalidRate     = errors.New("frame rate must be positive")
	ErrInvalidVolume   = errors.New("volume must be between 0 and 1")
)

// Validate reports the first setting the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.Width < tetris.MatrixSize || c.Game.Height < tetris.MatrixSize:
		return fmt.Errorf("%w: got %dx%d", ErrArenaTooSmall, c.Game.Width, c.Game.Height)
	case c.Game.DropInterval <= 0:
		return fmt.Errorf("%w: got %s", ErrInvalidInterval, c.Game.DropInterval)
	case c.Display.FrameRate <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidRate, c.Display.FrameRate)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: got %g", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			Width:        tetris.DefaultWidth,
			Height:       tetris.DefaultHeight,
			DropInterval: tetris.DefaultDropInterval,
		},
		Display: DisplayConfig{
			TileSize:  30,
			FrameRate: 60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
