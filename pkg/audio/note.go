// ABOUTME: Pitch conversion helpers
// ABOUTME: Converts between frequencies in Hz and MIDI note numbers
package audio

import "math"

// A4 reference pitch in Hz
const A4 = 440.0

// FrequencyToMidi returns round(12*log2(f/440) + 57).
// The 57 offset places 440Hz on note 57, matching the sketch API this mirrors.
// f must be positive; zero, negative and NaN frequencies map to note 0.
func FrequencyToMidi(f float64) int {
	if !(f > 0) || math.IsInf(f, 1) {
		return 0
	}
	return int(math.Round(12*math.Log2(f/A4) + 57))
}

// MidiToFrequency returns 440 * 2^((m-69)/12)
func MidiToFrequency(m float64) float64 {
	return A4 * math.Pow(2, (m-69)/12)
}
