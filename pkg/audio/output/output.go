// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for playback backends with master gain
package output

import "github.com/Sendspin/sketchsound/pkg/audio"

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Write outputs 24-bit range samples scaled by Gain (blocks until written)
	Write(samples []int32) error

	// Close releases output resources
	Close() error

	// SampleRate returns the rate the device was opened with
	SampleRate() int

	// Gain returns the shared master gain parameter
	Gain() *audio.Param
}

// applyGain scales samples by gain into a new slice
func applyGain(samples []int32, gain float64) []int32 {
	result := make([]int32, len(samples))
	for i, sample := range samples {
		result[i] = audio.ScaleSample(sample, gain)
	}
	return result
}
