// ABOUTME: Audio file extension definitions
// ABOUTME: Fixed set of loadable extensions and path extension parsing
package audio

import "strings"

// Extension is a lowercase container/codec extension without the leading dot
type Extension string

// Extensions a sketch is allowed to load
const (
	MP3 Extension = "mp3"
	WAV Extension = "wav"
	OGG Extension = "ogg"
	M4A Extension = "m4a"
	AAC Extension = "aac"
)

var allowedExtensions = []Extension{MP3, WAV, OGG, M4A, AAC}

// AllowedExtensions returns the fixed set of loadable extensions in canonical order
func AllowedExtensions() []Extension {
	out := make([]Extension, len(allowedExtensions))
	copy(out, allowedExtensions)
	return out
}

// IsAllowed reports whether ext is one of the loadable extensions
func IsAllowed(ext Extension) bool {
	for _, a := range allowedExtensions {
		if a == ext {
			return true
		}
	}
	return false
}

// ParseExtension lowercases a user supplied token ("MP3") and checks it.
// Tokens carrying a dot or surrounding space are rejected as given.
func ParseExtension(token string) (Extension, bool) {
	ext := Extension(strings.ToLower(token))
	if !IsAllowed(ext) {
		return "", false
	}
	return ext, true
}

// SplitExtension splits path at its final dot.
// ok is false when the path has no dot at all.
func SplitExtension(path string) (base, ext string, ok bool) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return path, "", false
	}
	return path[:i], path[i+1:], true
}

// ExtensionOf returns the loadable extension declared by path, if any
func ExtensionOf(path string) (Extension, bool) {
	_, ext, ok := SplitExtension(path)
	if !ok {
		return "", false
	}
	e := Extension(strings.ToLower(ext))
	if !IsAllowed(e) {
		return "", false
	}
	return e, true
}
