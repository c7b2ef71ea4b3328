// ABOUTME: Audio asset probing package
// ABOUTME: Reads container headers and reports which codecs this build links
// Package probe inspects sketch audio assets without decoding them for playback.
//
// Supports: MP3 (go-mp3), WAV (go-audio/wav), Ogg (capture pattern only)
//
// Linked returns a support.Oracle describing what this binary itself can decode,
// which is useful for native sketches and for offline asset checks.
//
// Example:
//
//	f, err := probe.Inspect("sounds/theme.mp3")
//	fmt.Println(f) // mp3 44100Hz 2ch 16-bit
package probe
