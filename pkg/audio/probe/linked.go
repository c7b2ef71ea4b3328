// ABOUTME: Oracle for codecs linked into this binary
// ABOUTME: MP3 and WAV are pure Go; Ogg depends on libopus being usable
package probe

import (
	"log"
	"sync"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/Sendspin/sketchsound/pkg/support"
	"gopkg.in/hraban/opus.v2"
)

var (
	opusOnce      sync.Once
	opusAvailable bool
)

// Linked returns an oracle for what this build can decode natively
func Linked() support.Oracle {
	return support.Func(linkedSupport)
}

func linkedSupport(ext audio.Extension) bool {
	switch ext {
	case audio.MP3, audio.WAV:
		return true
	case audio.OGG:
		opusOnce.Do(func() {
			opusAvailable = opusUsable()
		})
		return opusAvailable
	default:
		return false
	}
}

// opusUsable checks that libopus accepts a standard 48kHz stereo decoder
func opusUsable() bool {
	if _, err := opus.NewDecoder(48000, 2); err != nil {
		log.Printf("Opus decoder unavailable, treating ogg as unsupported: %v", err)
		return false
	}
	return true
}
