package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects a voice shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// NewVoice returns a wave of freq that ends after duration. Sine and square
// voices fail for frequencies at or above half the sample rate. Noise
// ignores freq.
func NewVoice(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		s, err = generators.SineTone(rate, freq)
	case WaveSquare:
		s, err = generators.SquareTone(rate, freq)
	case WaveNoise:
		s = &noise{seed: noiseSeed}
	default:
		return nil, fmt.Errorf("audio: unknown wave %d", wave)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return beep.Take(rate.N(duration), s), nil
}

// voice is NewVoice with silence in place of a rejected frequency.
func voice(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	s, err := NewVoice(freq, duration, wave, rate)
	if err != nil {
		return generators.Silence(rate.N(duration))
	}
	return s
}

const noiseSeed = 0x9e3779b9

// noise is endless white noise from a xorshift generator, so every swoosh
// sounds the same.
type noise struct {
	seed uint32
}

func (z *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		z.seed ^= z.seed << 13
		z.seed ^= z.seed >> 17
		z.seed ^= z.seed << 5
		val := float64(z.seed)/float64(math.MaxUint32)*2 - 1
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (z *noise) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which should last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	matchNote     = 120 * time.Millisecond
	matchBaseFreq = 523.25 // C5
)

// chainFrequency raises the match chime a fifth per cascade depth, capped
// so long chains stay audible.
func chainFrequency(chain int) float64 {
	if chain > 6 {
		chain = 6
	}
	return matchBaseFreq * math.Pow(1.5, float64(chain))
}

// CreateMatchSound is a two-note chime whose pitch climbs with the chain.
func CreateMatchSound(rate beep.SampleRate, chain int) beep.Streamer {
	freq := chainFrequency(chain)
	first := NewEnvelope(voice(freq, matchNote, WaveSine, rate),
		matchNote, 5*time.Millisecond, 60*time.Millisecond, rate)
	second := NewEnvelope(voice(freq*2, matchNote, WaveSine, rate),
		matchNote, 5*time.Millisecond, 90*time.Millisecond, rate)
	return newVolume(beep.Seq(first, second), 0.35)
}

// CreateInvalidSound is a short low square buzz.
func CreateInvalidSound(rate beep.SampleRate) beep.Streamer {
	d := 150 * time.Millisecond
	osc := voice(110, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 10*time.Millisecond, 60*time.Millisecond, rate), 0.15)
}

// CreateReshuffleSound is a noise swoosh layered over a low tone.
func CreateReshuffleSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	noise := NewEnvelope(voice(0, d, WaveNoise, rate), d, 150*time.Millisecond, 200*time.Millisecond, rate)
	tone := NewEnvelope(voice(196, d, WaveSine, rate), d, 50*time.Millisecond, 250*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.4), newVolume(tone, 0.6)), 0.3)
}

// CreateArpeggio plays the given frequencies in sequence as sine notes.
// Frequencies the generator rejects play as a silent note.
func CreateArpeggio(rate beep.SampleRate, note time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, NewEnvelope(voice(f, note, WaveSine, rate), note, 5*time.Millisecond, note/2, rate))
	}
	return newVolume(beep.Seq(notes...), 0.3)
}

// CreateLevelClearedSound is a rising major arpeggio.
func CreateLevelClearedSound(rate beep.SampleRate) beep.Streamer {
	return CreateArpeggio(rate, 110*time.Millisecond, 523.25, 659.25, 783.99, 1046.5)
}

// CreateGameOverSound is a falling minor arpeggio.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	return CreateArpeggio(rate, 180*time.Millisecond, 440, 349.23, 293.66, 220)
}
