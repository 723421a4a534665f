package sound

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/mouse-away/internal/config"
)

func drain(t *testing.T, buf [][2]float64, s interface {
	Stream([][2]float64) (int, bool)
}) (total int, peak float64) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			assert.Equal(t, smp[0], smp[1], "mono blip on both channels")
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("tone never ended")
	return 0, 0
}

func TestTone_LengthAndVolume(t *testing.T) {
	rate := SampleRate
	s := Tone(rate, 440, 50*time.Millisecond, 0.25)

	total, peak := drain(t, make([][2]float64, 512), s)

	assert.Equal(t, rate.N(50*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 0.25)
	assert.Greater(t, peak, 0.1)
}

func TestTone_FadesOut(t *testing.T) {
	rate := SampleRate
	s := Tone(rate, 440, 100*time.Millisecond, 1)
	buf := make([][2]float64, rate.N(100*time.Millisecond))

	n, ok := s.Stream(buf)
	assert.True(t, ok)
	tail := buf[n-20 : n]
	for _, smp := range tail {
		assert.Less(t, math.Abs(smp[0]), 0.01)
	}
}

func TestCue_DisabledIsSilent(t *testing.T) {
	c := NewCue(config.SoundConfig{Enabled: false})
	assert.NoError(t, c.Play(1))
	assert.Zero(t, c.Played())
}
