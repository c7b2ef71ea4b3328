// ABOUTME: Audio fundamentals package for sketch sound helpers
// ABOUTME: Defines extensions, Format, gain parameter, and pitch conversions
// Package audio provides the small shared vocabulary used by the rest of sketchsound.
//
// It defines:
//   - Extension: the container/codec extensions a sketch may load (mp3, wav, ogg, m4a, aac)
//   - Format: what probing an asset file reports (extension, sample rate, channels, bit depth)
//   - Param: a linear gain value shared between the sketch and an output device
//
// It also provides pitch helpers for converting between frequencies and MIDI notes.
//
// Example:
//
//	ext, ok := audio.ParseExtension("OGG") // audio.OGG, true
//	note := audio.FrequencyToMidi(440)     // 57
//	hz := audio.MidiToFrequency(69)        // 440
package audio
