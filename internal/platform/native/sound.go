package native

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays short sound effects for player events.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates a silent cue player; call Init to open the speaker.
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the cue for ev. It is a no-op before Init or on a nil Cues.
func (c *Cues) Play(ev engine.Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	var s beep.Streamer
	switch ev {
	case engine.EventJump:
		s = cue(330, 660, 120*time.Millisecond)
	case engine.EventLand:
		s = cue(140, 90, 80*time.Millisecond)
	default:
		return
	}

	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// cue is a sweep from one frequency to another lasting d.
func cue(from, to float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	return beep.Take(n, NewSweep(sampleRate, from, to, n))
}

// Sweep is a sine tone gliding linearly between two frequencies over a
// fixed number of samples, fading out as it goes.
type Sweep struct {
	sr     beep.SampleRate
	from   float64
	to     float64
	length int
	pos    int
	phase  float64
}

// NewSweep creates a sweep of length samples.
func NewSweep(sr beep.SampleRate, from, to float64, length int) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, length: length}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.length {
			return i, true
		}
		progress := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress
		s.phase += 2 * math.Pi * freq / float64(s.sr)

		sample := 0.25 * math.Sin(s.phase) * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error {
	return nil
}
