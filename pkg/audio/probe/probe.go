// ABOUTME: Asset header inspection
// ABOUTME: Reports sample rate, channels, and bit depth per container
package probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// ErrUnsupported is returned for extensions this package cannot inspect
var ErrUnsupported = errors.New("unsupported audio format")

var oggCapturePattern = []byte("OggS")

// Inspect opens path and reports its format based on its extension
func Inspect(path string) (audio.Format, error) {
	ext, ok := audio.ExtensionOf(path)
	if !ok {
		return audio.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Format{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	return InspectReader(ext, f)
}

// InspectReader reports the format of r, which must hold an ext container
func InspectReader(ext audio.Extension, r io.ReadSeeker) (audio.Format, error) {
	switch ext {
	case audio.MP3:
		return inspectMP3(r)
	case audio.WAV:
		return inspectWAV(r)
	case audio.OGG:
		return inspectOgg(r)
	default:
		return audio.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

func inspectMP3(r io.Reader) (audio.Format, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return audio.Format{}, fmt.Errorf("failed to decode MP3 header: %w", err)
	}

	// go-mp3 always produces 16-bit stereo
	return audio.Format{
		Extension:  audio.MP3,
		SampleRate: decoder.SampleRate(),
		Channels:   2,
		BitDepth:   16,
	}, nil
}

func inspectWAV(r io.ReadSeeker) (audio.Format, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		if err := decoder.Err(); err != nil {
			return audio.Format{}, fmt.Errorf("invalid WAV file: %w", err)
		}
		return audio.Format{}, fmt.Errorf("invalid WAV file")
	}

	return audio.Format{
		Extension:  audio.WAV,
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}, nil
}

func inspectOgg(r io.Reader) (audio.Format, error) {
	header := make([]byte, len(oggCapturePattern))
	if _, err := io.ReadFull(r, header); err != nil {
		return audio.Format{}, fmt.Errorf("failed to read Ogg header: %w", err)
	}
	if !bytes.Equal(header, oggCapturePattern) {
		return audio.Format{}, fmt.Errorf("invalid Ogg file: missing capture pattern")
	}

	return audio.Format{Extension: audio.OGG}, nil
}
