// ABOUTME: High-level sketch sound API
// ABOUTME: Master volume, sample rate, pitch helpers, format negotiation, disposal
// Package sketch provides the sound helpers a creative-coding sketch calls directly.
//
// A Sound bundles one host output, one format resolver, and one registry of
// disposable sound objects. Nothing is global: tests and multiple sketches may
// each own their own Sound.
//
// Example:
//
//	snd, err := sketch.New(sketch.Config{
//	    Output:           output.NewNull(),
//	    Oracle:           probe.Linked(),
//	    PreferredFormats: []string{"ogg", "mp3"},
//	})
//	snd.SetMasterVolume(0.8)
//	path := snd.ResolvePath("sounds/theme.mp3")
package sketch
