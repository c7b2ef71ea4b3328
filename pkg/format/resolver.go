// ABOUTME: Format resolver implementation
// ABOUTME: Preference list state plus single-path and candidate-list resolution
package format

import (
	"strings"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/Sendspin/sketchsound/pkg/support"
)

// Resolution is the outcome of resolving an asset request
type Resolution struct {
	// Path is the path to load. When Supported is false it is the fallback
	// (the original path, or the first candidate).
	Path string

	// Extension is the extension chosen, empty when nothing matched
	Extension audio.Extension

	// Supported reports whether the oracle accepted the chosen extension
	Supported bool
}

// Resolver chooses asset paths by preference order and codec support.
//
// A Resolver is meant to be configured once during setup and then read from
// many loaders. SetPreferredFormats must not run concurrently with resolution.
type Resolver struct {
	oracle    support.Oracle
	preferred []audio.Extension
}

// NewResolver creates a resolver with an empty preference list.
// A nil oracle supports nothing.
func NewResolver(oracle support.Oracle) *Resolver {
	return &Resolver{oracle: oracle}
}

// SetPreferredFormats replaces the preference list with formats, in order.
//
// Tokens are case-insensitive. The list is rebuilt as tokens are validated: when
// an invalid token is found, the valid tokens before it remain applied and an
// *InvalidFormatError naming the token is returned.
func (r *Resolver) SetPreferredFormats(formats ...string) error {
	r.preferred = make([]audio.Extension, 0, len(formats))

	for _, token := range formats {
		ext, ok := audio.ParseExtension(token)
		if !ok {
			return &InvalidFormatError{Format: token}
		}
		if r.prefers(ext) {
			continue
		}
		r.preferred = append(r.preferred, ext)
	}

	return nil
}

// PreferredFormats returns a copy of the current preference list
func (r *Resolver) PreferredFormats() []audio.Extension {
	out := make([]audio.Extension, len(r.preferred))
	copy(out, r.preferred)
	return out
}

// ResolveSinglePath resolves one asset path.
//
// A path whose declared extension is supported is returned unchanged. An
// unsupported declared extension is replaced by the first supported preferred
// extension, keeping every other dot-separated segment ("a.v2.mp3" -> "a.v2.ogg").
// A path without a loadable extension gets the first supported preferred one appended.
func (r *Resolver) ResolveSinglePath(path string) Resolution {
	declared, ok := audio.ExtensionOf(path)
	if !ok {
		ext, found := r.firstSupported()
		if !found {
			return Resolution{Path: path}
		}
		return Resolution{Path: path + "." + string(ext), Extension: ext, Supported: true}
	}

	if r.supported(declared) {
		return Resolution{Path: path, Extension: declared, Supported: true}
	}

	ext, found := r.firstSupported()
	if !found {
		return Resolution{Path: path}
	}

	segments := strings.Split(path, ".")
	rebuilt := strings.Join(segments[:len(segments)-1], ".") + "." + string(ext)
	return Resolution{Path: rebuilt, Extension: ext, Supported: true}
}

// ResolveFromCandidates returns the first candidate whose extension is supported.
// When none is, the first candidate is returned with Supported false.
func (r *Resolver) ResolveFromCandidates(paths []string) Resolution {
	for _, path := range paths {
		ext, ok := audio.ExtensionOf(path)
		if !ok {
			continue
		}
		if r.supported(ext) {
			return Resolution{Path: path, Extension: ext, Supported: true}
		}
	}

	if len(paths) == 0 {
		return Resolution{}
	}
	return Resolution{Path: paths[0]}
}

// firstSupported walks the preference list in priority order
func (r *Resolver) firstSupported() (audio.Extension, bool) {
	for _, ext := range r.preferred {
		if r.supported(ext) {
			return ext, true
		}
	}
	return "", false
}

func (r *Resolver) supported(ext audio.Extension) bool {
	return r.oracle != nil && r.oracle.IsFormatSupported(ext)
}

func (r *Resolver) prefers(ext audio.Extension) bool {
	for _, p := range r.preferred {
		if p == ext {
			return true
		}
	}
	return false
}
