package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Game.Width)
	assert.Equal(t, 20, cfg.Game.Height)
	assert.Equal(t, time.Second, cfg.Game.DropInterval)
	assert.Equal(t, time.Second/60, cfg.Display.FrameInterval())
	assert.Equal(t, 30, cfg.Display.TileSize)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
width = 12
drop_interval = "750ms"
seed = 99

[audio]
enabled = false

[logging]
level = "debug"
file = "game.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Game.Width)
	assert.Equal(t, 20, cfg.Game.Height, "unset keys keep their defaults")
	assert.Equal(t, 750*time.Millisecond, cfg.Game.DropInterval)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "game.log", cfg.Logging.File)

	opts := cfg.Game.Options()
	assert.Equal(t, 12, opts.Width)
	assert.Equal(t, uint64(99), opts.Seed)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(writeConfig(t, "[game\nwidth = 1"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "[game]\nwidth = 3"))
	assert.ErrorIs(t, err, ErrArenaTooSmall)
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	_, err = LoadOptional(writeConfig(t, "[display]\nframe_rate = 0"))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg, "no default file yields the defaults")

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("[game]\nwidth = 14"), 0o644))
	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Game.Width)

	_, err = Resolve(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist, "a named file must exist")

	cfg, err = Resolve(writeConfig(t, "[game]\nheight = 24"))
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Game.Height)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"narrow arena", func(c *Config) { c.Game.Width = 3 }, ErrArenaTooSmall},
		{"short arena", func(c *Config) { c.Game.Height = 2 }, ErrArenaTooSmall},
		{"zero interval", func(c *Config) { c.Game.DropInterval = 0 }, ErrInvalidInterval},
		{"negative frame rate", func(c *Config) { c.Display.FrameRate = -1 }, ErrInvalidRate},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }, ErrInvalidVolume},
		{"smallest arena", func(c *Config) { c.Game.Width, c.Game.Height = 4, 4 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
