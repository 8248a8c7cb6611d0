package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// tone is a sine note of the given length with short linear fades
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil
	}
	return newFade(beep.Take(sr.N(d), sine), sr.N(d), sr.N(5*time.Millisecond))
}

func seq(parts ...beep.Streamer) beep.Streamer {
	valid := parts[:0]
	for _, p := range parts {
		if p != nil {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	return beep.Seq(valid...)
}

func enqueueCue(sr beep.SampleRate) beep.Streamer {
	return seq(
		tone(sr, 660, 60*time.Millisecond),
		tone(sr, 880, 80*time.Millisecond),
	)
}

func deployCue(sr beep.SampleRate) beep.Streamer {
	return seq(
		tone(sr, 523, 70*time.Millisecond),
		beep.Silence(sr.N(20*time.Millisecond)),
		tone(sr, 392, 110*time.Millisecond),
	)
}

func errorCue(sr beep.SampleRate) beep.Streamer {
	n := sr.N(150 * time.Millisecond)
	return newFade(beep.Take(n, newBuzz(sr, 120)), n, sr.N(10*time.Millisecond))
}

func destroyedCue(sr beep.SampleRate) beep.Streamer {
	return seq(
		tone(sr, 392, 120*time.Millisecond),
		tone(sr, 330, 120*time.Millisecond),
		tone(sr, 262, 120*time.Millisecond),
		tone(sr, 196, 300*time.Millisecond),
	)
}

// withVolume applies a log2 volume. Volumes at or below -10 are silent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: volume <= -10}
}

// buzz is a harsh tone made of a fundamental and two harmonics
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		v := 0.3*math.Sin(2*math.Pi*b.freq*t) +
			0.15*math.Sin(2*math.Pi*b.freq*2*t) +
			0.075*math.Sin(2*math.Pi*b.freq*3*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }

// fade ramps the first and last ramp samples of a stream of known length
type fade struct {
	s     beep.Streamer
	total int
	ramp  int
	pos   int
}

func newFade(s beep.Streamer, total, ramp int) beep.Streamer {
	if ramp*2 > total {
		ramp = total / 2
	}
	return &fade{s: s, total: total, ramp: ramp}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.ramp > 0 {
			switch {
			case f.pos < f.ramp:
				gain = float64(f.pos) / float64(f.ramp)
			case f.pos >= f.total-f.ramp:
				gain = float64(f.total-f.pos) / float64(f.ramp)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }
