// Package sound plays short cues for game events through the beep speaker.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Player mixes cues into a single speaker stream. Until Init succeeds every
// Play call is a no-op, so a game without audio runs unchanged.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
	log         *zap.Logger
}

func NewPlayer(cfg config.AudioConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		log:    log,
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all cues and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Attach plays cues for events published on bus.
func (p *Player) Attach(bus *loop.Bus) {
	loop.Subscribe(bus, func(ev tetris.PieceLocked) { p.PlayLock() })
	loop.Subscribe(bus, func(ev tetris.LinesCleared) { p.PlayClear(ev.Lines) })
	loop.Subscribe(bus, func(ev tetris.GameOver) { p.PlayGameOver() })
}

func (p *Player) PlayLock() {
	p.play("lock", Click)
}

func (p *Player) PlayClear(lines int) {
	p.play("clear", func() (beep.Streamer, error) { return Chime(lines) })
}

func (p *Player) PlayGameOver() {
	p.play("game-over", func() (beep.Streamer, error) { return NewFall(fallLength), nil })
}

// Played returns the number of cues handed to the speaker.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

func (p *Player) play(name string, build func() (beep.Streamer, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := build()
	if err != nil {
		p.log.Warn("build sound", zap.String("cue", name), zap.Error(err))
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
	p.played++
}
