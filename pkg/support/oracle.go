// ABOUTME: Oracle interface and simple implementations
// ABOUTME: Func adapter, Static set, and mutex-guarded Snapshot
package support

import (
	"log"
	"sync"

	"github.com/Sendspin/sketchsound/pkg/audio"
)

// Oracle reports whether the playback environment can decode an extension
type Oracle interface {
	IsFormatSupported(ext audio.Extension) bool
}

// Func adapts an ordinary function to the Oracle interface
type Func func(ext audio.Extension) bool

// IsFormatSupported calls f(ext)
func (f Func) IsFormatSupported(ext audio.Extension) bool {
	return f(ext)
}

// Static is a fixed set of supported extensions
type Static map[audio.Extension]bool

// NewStatic creates a Static oracle supporting exactly exts
func NewStatic(exts ...audio.Extension) Static {
	s := make(Static, len(exts))
	for _, ext := range exts {
		s[ext] = true
	}
	return s
}

// IsFormatSupported reports whether ext is in the set
func (s Static) IsFormatSupported(ext audio.Extension) bool {
	return s[ext]
}

// Snapshot holds the latest capability report; it is safe for concurrent use
type Snapshot struct {
	mu        sync.RWMutex
	supported map[audio.Extension]bool
}

// NewSnapshot creates an empty snapshot (nothing supported until updated)
func NewSnapshot() *Snapshot {
	return &Snapshot{supported: make(map[audio.Extension]bool)}
}

// Update replaces the whole snapshot with report.
// Keys outside the allowed extension set are skipped; the accepted keys are returned.
func (s *Snapshot) Update(report map[string]bool) []audio.Extension {
	next := make(map[audio.Extension]bool, len(report))
	for key, ok := range report {
		ext, valid := audio.ParseExtension(key)
		if !valid {
			log.Printf("Ignoring unknown extension in capability report: %q", key)
			continue
		}
		next[ext] = ok
	}

	// Accepted keys in canonical order
	accepted := make([]audio.Extension, 0, len(next))
	for _, ext := range audio.AllowedExtensions() {
		if _, ok := next[ext]; ok {
			accepted = append(accepted, ext)
		}
	}

	s.mu.Lock()
	s.supported = next
	s.mu.Unlock()

	return accepted
}

// IsFormatSupported reports whether the latest report marked ext playable
func (s *Snapshot) IsFormatSupported(ext audio.Extension) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supported[ext]
}

// Probe runs o over every allowed extension
func Probe(o Oracle) map[audio.Extension]bool {
	result := make(map[audio.Extension]bool)
	for _, ext := range audio.AllowedExtensions() {
		result[ext] = o != nil && o.IsFormatSupported(ext)
	}
	return result
}
