package device

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	// speakerLatency is the speaker buffer length.
	speakerLatency = 50 * time.Millisecond
	// toneAmplitude keeps the square wave below full scale.
	toneAmplitude = 0.5
)

// ErrInvalidTone is returned for a non-positive frequency or sample rate.
var ErrInvalidTone = errors.New("tone frequency and sample rate must be positive")

// squareWave is a beep.Streamer producing a square tone while its gate is open.
type squareWave struct {
	// gate is opened by the pin level; read from the speaker goroutine.
	gate atomic.Bool
	// phase is the position within the current period, in [0, 1).
	phase float64
	// step is the phase increment per sample.
	step float64
}

// newSquareWave creates a silent generator for the given tone.
func newSquareWave(frequency float64, rate beep.SampleRate) (*squareWave, error) {
	if frequency <= 0 || rate <= 0 {
		return nil, ErrInvalidTone
	}

	return &squareWave{step: frequency / float64(rate)}, nil
}

// Stream implements beep.Streamer. It never drains.
func (w *squareWave) Stream(samples [][2]float64) (int, bool) {
	open := w.gate.Load()

	for i := range samples {
		v := 0.0

		if open {
			v = toneAmplitude
			if w.phase >= 0.5 {
				v = -toneAmplitude
			}
		}

		samples[i][0], samples[i][1] = v, v

		w.phase += w.step
		if w.phase >= 1 {
			w.phase--
		}
	}

	return len(samples), true
}

// Err implements beep.Streamer.
func (*squareWave) Err() error {
	return nil
}

// SpeakerPin turns the host sound card into a buzzer: a tone plays while the pin is high.
type SpeakerPin struct {
	// wave is the generator fed to the speaker.
	wave *squareWave
}

// NewSpeakerPin initialises the speaker and starts an idle tone generator.
// Volume is relative, in powers of two (0 is unchanged, -1 is half).
func NewSpeakerPin(frequency float64, sampleRate int, volume float64) (*SpeakerPin, error) {
	rate := beep.SampleRate(sampleRate)

	wave, err := newSquareWave(frequency, rate)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(rate, rate.N(speakerLatency)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	//nolint:exhaustruct // Silent defaults to false.
	speaker.Play(&effects.Volume{
		Streamer: wave,
		Base:     2,
		Volume:   volume,
	})

	return &SpeakerPin{wave: wave}, nil
}

// Write opens or closes the tone gate.
func (p *SpeakerPin) Write(high bool) {
	p.wave.gate.Store(high)
}

// Close stops playback and releases the sound device.
func (p *SpeakerPin) Close() {
	p.wave.gate.Store(false)
	speaker.Clear()
	speaker.Close()
}
