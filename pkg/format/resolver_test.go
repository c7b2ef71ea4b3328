// ABOUTME: Tests for the format resolver
// ABOUTME: Covers preference configuration and both resolution shapes
package format

import (
	"errors"
	"testing"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/Sendspin/sketchsound/pkg/support"
)

func equalExtensions(a, b []audio.Extension) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewResolverEmpty(t *testing.T) {
	r := NewResolver(support.NewStatic(audio.MP3))
	if len(r.PreferredFormats()) != 0 {
		t.Errorf("expected empty preference list, got %v", r.PreferredFormats())
	}
}

func TestSetPreferredFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []audio.Extension
	}{
		{"single", []string{"mp3"}, []audio.Extension{audio.MP3}},
		{"order preserved", []string{"ogg", "mp3", "wav"}, []audio.Extension{audio.OGG, audio.MP3, audio.WAV}},
		{"lowercased", []string{"OGG", "Mp3"}, []audio.Extension{audio.OGG, audio.MP3}},
		{"all allowed", []string{"aac", "m4a", "ogg", "wav", "mp3"}, []audio.Extension{audio.AAC, audio.M4A, audio.OGG, audio.WAV, audio.MP3}},
		{"duplicates collapse", []string{"ogg", "OGG", "mp3", "ogg"}, []audio.Extension{audio.OGG, audio.MP3}},
		{"empty", nil, []audio.Extension{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(nil)
			if err := r.SetPreferredFormats(tt.input...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.PreferredFormats(); !equalExtensions(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSetPreferredFormatsReplaces(t *testing.T) {
	r := NewResolver(nil)
	if err := r.SetPreferredFormats("mp3", "wav"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.SetPreferredFormats("ogg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []audio.Extension{audio.OGG}
	if got := r.PreferredFormats(); !equalExtensions(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestSetPreferredFormatsInvalid(t *testing.T) {
	for _, token := range []string{"flac", "mp4", "webm", "", "opus", ".ogg", " mp3 ", "..wav"} {
		t.Run(token, func(t *testing.T) {
			r := NewResolver(nil)
			err := r.SetPreferredFormats(token)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var invalid *InvalidFormatError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidFormatError, got %T", err)
			}
			if invalid.Format != token {
				t.Errorf("expected offending token %q, got %q", token, invalid.Format)
			}
		})
	}
}

func TestSetPreferredFormatsPartialApply(t *testing.T) {
	r := NewResolver(nil)
	if err := r.SetPreferredFormats("aac"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.SetPreferredFormats("OGG", "wav", "flac", "mp3")
	var invalid *InvalidFormatError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidFormatError, got %v", err)
	}
	if invalid.Format != "flac" {
		t.Errorf("expected offending token flac, got %q", invalid.Format)
	}

	// The valid prefix is applied, the previous list is gone, and nothing after the failure is
	expected := []audio.Extension{audio.OGG, audio.WAV}
	if got := r.PreferredFormats(); !equalExtensions(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestInvalidFormatErrorMessage(t *testing.T) {
	err := &InvalidFormatError{Format: "flac"}
	expected := `invalid audio format "flac" (supported: mp3, wav, ogg, m4a, aac)`
	if err.Error() != expected {
		t.Errorf("expected error %q, got %q", expected, err.Error())
	}
}

func TestPreferredFormatsReturnsCopy(t *testing.T) {
	r := NewResolver(nil)
	if err := r.SetPreferredFormats("mp3", "ogg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.PreferredFormats()
	got[0] = audio.AAC

	if r.PreferredFormats()[0] != audio.MP3 {
		t.Error("preference list was mutated through returned slice")
	}
}

func TestResolveSinglePath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		preferred []string
		supported []audio.Extension
		expected  Resolution
	}{
		{
			name:      "declared supported",
			path:      "track.mp3",
			preferred: []string{"ogg"},
			supported: []audio.Extension{audio.MP3},
			expected:  Resolution{Path: "track.mp3", Extension: audio.MP3, Supported: true},
		},
		{
			name:      "declared supported with empty preferences",
			path:      "track.mp3",
			supported: []audio.Extension{audio.MP3},
			expected:  Resolution{Path: "track.mp3", Extension: audio.MP3, Supported: true},
		},
		{
			name:      "declared replaced by preference",
			path:      "track.mp3",
			preferred: []string{"ogg", "wav"},
			supported: []audio.Extension{audio.OGG},
			expected:  Resolution{Path: "track.ogg", Extension: audio.OGG, Supported: true},
		},
		{
			name:      "preference order wins",
			path:      "track.mp3",
			preferred: []string{"wav", "ogg"},
			supported: []audio.Extension{audio.OGG, audio.WAV},
			expected:  Resolution{Path: "track.wav", Extension: audio.WAV, Supported: true},
		},
		{
			name:      "multi dot preserved",
			path:      "track.v2.mp3",
			preferred: []string{"ogg", "wav"},
			supported: []audio.Extension{audio.OGG},
			expected:  Resolution{Path: "track.v2.ogg", Extension: audio.OGG, Supported: true},
		},
		{
			name:      "directory kept",
			path:      "assets/sfx/laser.m4a",
			preferred: []string{"mp3"},
			supported: []audio.Extension{audio.MP3},
			expected:  Resolution{Path: "assets/sfx/laser.mp3", Extension: audio.MP3, Supported: true},
		},
		{
			name:      "declared uppercase",
			path:      "track.MP3",
			preferred: []string{"ogg"},
			supported: []audio.Extension{audio.OGG},
			expected:  Resolution{Path: "track.ogg", Extension: audio.OGG, Supported: true},
		},
		{
			name:      "declared unsupported and no preference supported",
			path:      "track.mp3",
			preferred: []string{"ogg", "wav"},
			supported: []audio.Extension{audio.AAC},
			expected:  Resolution{Path: "track.mp3"},
		},
		{
			name:      "no extension appended",
			path:      "track",
			preferred: []string{"wav", "mp3"},
			supported: []audio.Extension{audio.MP3},
			expected:  Resolution{Path: "track.mp3", Extension: audio.MP3, Supported: true},
		},
		{
			name:      "unrelated suffix appended",
			path:      "track.v2",
			preferred: []string{"ogg"},
			supported: []audio.Extension{audio.OGG},
			expected:  Resolution{Path: "track.v2.ogg", Extension: audio.OGG, Supported: true},
		},
		{
			name:      "dotted directory appended",
			path:      "assets.v1/track",
			preferred: []string{"wav"},
			supported: []audio.Extension{audio.WAV},
			expected:  Resolution{Path: "assets.v1/track.wav", Extension: audio.WAV, Supported: true},
		},
		{
			name:      "no extension and empty preferences",
			path:      "track",
			supported: []audio.Extension{audio.MP3},
			expected:  Resolution{Path: "track"},
		},
		{
			name:      "no extension and nothing supported",
			path:      "track",
			preferred: []string{"mp3", "ogg"},
			expected:  Resolution{Path: "track"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(support.NewStatic(tt.supported...))
			if err := r.SetPreferredFormats(tt.preferred...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := r.ResolveSinglePath(tt.path)
			if got != tt.expected {
				t.Errorf("ResolveSinglePath(%q) = %+v, expected %+v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestResolveSinglePathQueriesInOrder(t *testing.T) {
	var queried []audio.Extension
	oracle := support.Func(func(ext audio.Extension) bool {
		queried = append(queried, ext)
		return ext == audio.WAV
	})

	r := NewResolver(oracle)
	if err := r.SetPreferredFormats("ogg", "wav", "aac"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.ResolveSinglePath("track.mp3")
	if got.Path != "track.wav" {
		t.Errorf("expected track.wav, got %s", got.Path)
	}

	// Declared extension first, then preferences until the first hit
	expected := []audio.Extension{audio.MP3, audio.OGG, audio.WAV}
	if !equalExtensions(queried, expected) {
		t.Errorf("expected queries %v, got %v", expected, queried)
	}
}

func TestResolveNilOracle(t *testing.T) {
	r := NewResolver(nil)
	if err := r.SetPreferredFormats("mp3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.ResolveSinglePath("track.mp3"); got != (Resolution{Path: "track.mp3"}) {
		t.Errorf("unexpected resolution %+v", got)
	}
	if got := r.ResolveFromCandidates([]string{"a.mp3"}); got != (Resolution{Path: "a.mp3"}) {
		t.Errorf("unexpected resolution %+v", got)
	}
}

func TestResolveFromCandidates(t *testing.T) {
	tests := []struct {
		name      string
		paths     []string
		supported []audio.Extension
		expected  Resolution
	}{
		{
			name:      "first supported wins",
			paths:     []string{"a.ogg", "a.mp3", "a.wav"},
			supported: []audio.Extension{audio.MP3, audio.WAV},
			expected:  Resolution{Path: "a.mp3", Extension: audio.MP3, Supported: true},
		},
		{
			name:      "caller order authoritative",
			paths:     []string{"a.wav", "a.mp3"},
			supported: []audio.Extension{audio.MP3, audio.WAV},
			expected:  Resolution{Path: "a.wav", Extension: audio.WAV, Supported: true},
		},
		{
			name:      "unknown extension skipped",
			paths:     []string{"a.flac", "a.m4a"},
			supported: []audio.Extension{audio.M4A},
			expected:  Resolution{Path: "a.m4a", Extension: audio.M4A, Supported: true},
		},
		{
			name:      "none supported falls back to first",
			paths:     []string{"a.ogg", "a.aac"},
			supported: []audio.Extension{audio.MP3},
			expected:  Resolution{Path: "a.ogg"},
		},
		{
			name:     "empty list",
			paths:    nil,
			expected: Resolution{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(support.NewStatic(tt.supported...))
			got := r.ResolveFromCandidates(tt.paths)
			if got != tt.expected {
				t.Errorf("ResolveFromCandidates(%v) = %+v, expected %+v", tt.paths, got, tt.expected)
			}
		})
	}
}

func TestResolversAreIndependent(t *testing.T) {
	oracle := support.NewStatic(audio.OGG, audio.WAV)

	a := NewResolver(oracle)
	b := NewResolver(oracle)

	if err := a.SetPreferredFormats("ogg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.SetPreferredFormats("wav"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := a.ResolveSinglePath("track").Path; got != "track.ogg" {
		t.Errorf("expected track.ogg, got %s", got)
	}
	if got := b.ResolveSinglePath("track").Path; got != "track.wav" {
		t.Errorf("expected track.wav, got %s", got)
	}
}

func TestResolveFollowsSnapshot(t *testing.T) {
	snap := support.NewSnapshot()
	r := NewResolver(snap)
	if err := r.SetPreferredFormats("ogg", "mp3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.ResolveSinglePath("theme.mp3"); got.Supported {
		t.Errorf("expected unsupported before any report, got %+v", got)
	}

	snap.Update(map[string]bool{"ogg": true, "mp3": false})
	if got := r.ResolveSinglePath("theme.mp3").Path; got != "theme.ogg" {
		t.Errorf("expected theme.ogg, got %s", got)
	}

	snap.Update(map[string]bool{"mp3": true})
	if got := r.ResolveSinglePath("theme.mp3").Path; got != "theme.mp3" {
		t.Errorf("expected theme.mp3, got %s", got)
	}
}
