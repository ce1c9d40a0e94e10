package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Clear chime notes, C6 upwards. A sweep plays one note per cleared line.
var chimeNotes = [...]float64{1046.5, 1318.5, 1568.0, 2093.0}

const (
	noteLength = 70 * time.Millisecond
	lockLength = 25 * time.Millisecond
	lockFreq   = 220.0
	fallLength = 900 * time.Millisecond
	fallStart  = 440.0
	fallEnd    = 110.0
	fallDecay  = 3.0
)

// tone plays a sine wave at freq for d.
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

// Chime is a rising arpeggio with one note per cleared line.
func Chime(lines int) (beep.Streamer, error) {
	lines = min(max(lines, 1), len(chimeNotes))
	notes := make([]beep.Streamer, 0, lines)
	for _, freq := range chimeNotes[:lines] {
		s, err := tone(freq, noteLength)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return beep.Seq(notes...), nil
}

// Click is the short low tone played when a piece locks.
func Click() (beep.Streamer, error) {
	return tone(lockFreq, lockLength)
}

// Fall is a falling, fading sweep played at game over.
type Fall struct {
	from, to float64
	decay    float64
	phase    float64
	position int
	total    int
}

func NewFall(d time.Duration) *Fall {
	return &Fall{
		from:  fallStart,
		to:    fallEnd,
		decay: fallDecay,
		total: sampleRate.N(d),
	}
}

func (f *Fall) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if f.position >= f.total {
			return i, i > 0
		}

		progress := float64(f.position) / float64(f.total)
		freq := f.from + (f.to-f.from)*progress
		amp := math.Exp(-f.decay * progress)

		val := amp * math.Sin(2*math.Pi*f.phase)
		samples[i][0] = val
		samples[i][1] = val

		f.phase += freq / float64(sampleRate)
		f.phase -= math.Floor(f.phase)
		f.position++
	}
	return len(samples), true
}

func (f *Fall) Err() error { return nil }

// withVolume scales s by vol in 0..1; zero silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
