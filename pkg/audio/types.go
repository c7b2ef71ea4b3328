// ABOUTME: Audio type definitions
// ABOUTME: Defines asset formats and 24-bit sample helpers used by outputs
package audio

import "fmt"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes an audio asset as reported by probing its header
type Format struct {
	Extension  Extension
	SampleRate int // 0 when the container does not expose it cheaply
	Channels   int
	BitDepth   int
}

// String returns a short human readable description, e.g. "mp3 44100Hz 2ch 16-bit"
func (f Format) String() string {
	if f.SampleRate == 0 {
		return fmt.Sprintf("%s (rate unknown)", f.Extension)
	}
	return fmt.Sprintf("%s %dHz %dch %d-bit", f.Extension, f.SampleRate, f.Channels, f.BitDepth)
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit playback)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit to 16-bit range
	return int16(sample >> 8)
}

// ScaleSample multiplies a 24-bit sample by a linear gain, clamping to the 24-bit range
func ScaleSample(sample int32, gain float64) int32 {
	scaled := int64(float64(sample) * gain)
	if scaled > Max24Bit {
		return Max24Bit
	}
	if scaled < Min24Bit {
		return Min24Bit
	}
	return int32(scaled)
}
