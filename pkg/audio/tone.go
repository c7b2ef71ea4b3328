// ABOUTME: Sine tone generator
// ABOUTME: Produces interleaved 24-bit range samples at a fixed pitch
package audio

import (
	"math"
	"sync"
)

// toneLevel is the peak amplitude of a generated tone (50% of full scale)
const toneLevel = 0.5

// Tone generates a sine wave at a fixed frequency
type Tone struct {
	frequency  float64
	sampleRate int
	channels   int

	mu          sync.Mutex
	sampleIndex uint64
}

// NewTone creates a sine generator; channels receive identical samples
func NewTone(frequency float64, sampleRate, channels int) *Tone {
	return &Tone{
		frequency:  frequency,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// Frequency returns the tone pitch in Hz
func (t *Tone) Frequency() float64 { return t.frequency }

// Read fills samples with whole interleaved frames and returns the number of samples written
func (t *Tone) Read(samples []int32) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.channels <= 0 || t.sampleRate <= 0 {
		return 0
	}

	frames := len(samples) / t.channels
	for i := 0; i < frames; i++ {
		pos := float64(t.sampleIndex+uint64(i)) / float64(t.sampleRate)
		value := int32(math.Sin(2*math.Pi*t.frequency*pos) * Max24Bit * toneLevel)

		for ch := 0; ch < t.channels; ch++ {
			samples[i*t.channels+ch] = value
		}
	}

	t.sampleIndex += uint64(frames)
	return frames * t.channels
}
