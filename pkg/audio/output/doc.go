// ABOUTME: Audio output package for sketch playback hosts
// ABOUTME: Provides Output interface with oto and headless implementations
// Package output provides the host audio output a sketch writes through.
//
// Every Output exposes its fixed sample rate and a single shared linear gain
// parameter. The gain is applied to samples as they are written; it is never
// clamped or ramped, only the resulting samples are kept inside the 24-bit range.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Open(48000, 2)
//	out.Gain().Set(0.5)
//	err = out.Write(samples)
package output
