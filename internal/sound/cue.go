// Package sound plays the short blip heard when the button dodges.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/mouse-away/internal/config"
)

// SampleRate is the speaker rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Tone returns a sine blip of the given length with a linear fade-out so it
// ends without a click.
func Tone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := rate.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			fade := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * volume * fade
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// Cue lazily opens the speaker on first use. A speaker that fails to open
// disables the cue for the rest of the run.
type Cue struct {
	cfg    config.SoundConfig
	once   sync.Once
	err    error
	played int
}

func NewCue(cfg config.SoundConfig) *Cue {
	return &Cue{cfg: cfg}
}

// Play starts the blip, pitched up with intensity in [0, 1]. It never blocks
// on playback.
func (c *Cue) Play(intensity float64) error {
	if !c.cfg.Enabled {
		return nil
	}
	c.once.Do(func() {
		c.err = speaker.Init(SampleRate, SampleRate.N(time.Second/20))
	})
	if c.err != nil {
		return c.err
	}
	freq := c.cfg.Frequency * (1 + 0.5*intensity)
	speaker.Play(Tone(SampleRate, freq, c.cfg.Duration, c.cfg.Volume))
	c.played++
	return nil
}

// Played returns how many blips were started.
func (c *Cue) Played() int { return c.played }
