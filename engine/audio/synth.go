package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone streams a fixed duration of one wave shape.
type tone struct {
	wave   Wave
	freq   float64
	phase  float64
	rate   beep.SampleRate
	remain int
	noise  uint64
}

// NewTone returns a finite streamer producing the given wave. freq is
// ignored for WaveNoise.
func NewTone(wave Wave, freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:   wave,
		freq:   freq,
		rate:   rate,
		remain: rate.N(duration),
		noise:  0x9E3779B97F4A7C15,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.remain <= 0 {
		return 0, false
	}
	for i := range samples {
		if t.remain <= 0 {
			return i, false
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			// xorshift64
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 7
			t.noise ^= t.noise << 17
			v = float64(int64(t.noise)) / float64(math.MaxInt64)
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.remain--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// shaped applies linear attack and release ramps to a finite streamer.
type shaped struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope wraps s so it fades in over attack and out over release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shaped{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(duration),
	}
}

func (e *shaped) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.pos >= e.total {
			gain = 0
		} else if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		} else if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = float64(left) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.s.Err() }

// note builds one enveloped tone at the package sample rate.
func note(wave Wave, freq float64, duration time.Duration) beep.Streamer {
	osc := NewTone(wave, freq, duration, sampleRate)
	return NewEnvelope(osc, duration, 5*time.Millisecond, duration/2, sampleRate)
}

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume is
// mapped to silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
