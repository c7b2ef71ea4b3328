// ABOUTME: Sound facade tying output, resolver, and registry together
// ABOUTME: Thin passthroughs around the host plus format negotiation entry points
package sketch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Sendspin/sketchsound/pkg/audio"
	"github.com/Sendspin/sketchsound/pkg/audio/output"
	"github.com/Sendspin/sketchsound/pkg/format"
	"github.com/Sendspin/sketchsound/pkg/support"
)

// Config holds Sound configuration
type Config struct {
	// Output is the host audio output (default: headless output.Null)
	Output output.Output

	// SampleRate opens Output at this rate (default: 44100)
	SampleRate int

	// Channels opens Output with this many channels (default: 2)
	Channels int

	// Oracle answers codec support queries (default: nothing supported)
	Oracle support.Oracle

	// Registry lists disposable sound objects (default: empty List)
	Registry Registry

	// PreferredFormats seeds the resolver preference list
	PreferredFormats []string
}

// Sound is the sketch-facing sound helper set
type Sound struct {
	output   output.Output
	channels int
	resolver *format.Resolver
	registry Registry
}

// toneChunk is the playback buffer duration for PlayTone
const toneChunk = 20 * time.Millisecond

// New creates a Sound and opens its output
func New(config Config) (*Sound, error) {
	// Set defaults
	if config.Output == nil {
		config.Output = output.NewNull()
	}
	if config.SampleRate == 0 {
		config.SampleRate = 44100
	}
	if config.Channels == 0 {
		config.Channels = 2
	}
	if config.Registry == nil {
		config.Registry = NewList()
	}

	if err := config.Output.Open(config.SampleRate, config.Channels); err != nil {
		return nil, fmt.Errorf("failed to open output: %w", err)
	}

	s := &Sound{
		output:   config.Output,
		channels: config.Channels,
		resolver: format.NewResolver(config.Oracle),
		registry: config.Registry,
	}

	if len(config.PreferredFormats) > 0 {
		if err := s.resolver.SetPreferredFormats(config.PreferredFormats...); err != nil {
			config.Output.Close()
			return nil, err
		}
	}

	return s, nil
}

// SetMasterVolume writes v as the output's linear gain, unclamped
func (s *Sound) SetMasterVolume(v float64) {
	s.output.Gain().Set(v)
}

// GetMasterVolume returns the output's linear gain
func (s *Sound) GetMasterVolume() float64 {
	return s.output.Gain().Value()
}

// GetSampleRate returns the fixed output sample rate
func (s *Sound) GetSampleRate() int {
	return s.output.SampleRate()
}

// FrequencyToMidi converts a frequency in Hz to a MIDI note
func (s *Sound) FrequencyToMidi(f float64) int {
	return audio.FrequencyToMidi(f)
}

// MidiToFrequency converts a MIDI note to a frequency in Hz
func (s *Sound) MidiToFrequency(m float64) float64 {
	return audio.MidiToFrequency(m)
}

// PlayTone writes a sine at MIDI note m to the output for d, scaled by the master volume.
// It returns early with ctx.Err() when ctx is cancelled.
func (s *Sound) PlayTone(ctx context.Context, m float64, d time.Duration) error {
	rate := s.output.SampleRate()
	tone := audio.NewTone(audio.MidiToFrequency(m), rate, s.channels)

	frames := int(d.Seconds() * float64(rate))
	chunkFrames := int(toneChunk.Seconds() * float64(rate))
	if chunkFrames <= 0 {
		chunkFrames = 1
	}

	log.Printf("Playing note %.1f (%.2fHz) for %v", m, tone.Frequency(), d)

	buf := make([]int32, chunkFrames*s.channels)
	for frames > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := chunkFrames
		if n > frames {
			n = frames
		}
		chunk := buf[:n*s.channels]
		tone.Read(chunk)

		if err := s.output.Write(chunk); err != nil {
			return fmt.Errorf("failed to write tone: %w", err)
		}
		frames -= n
	}
	return nil
}

// SetPreferredFormats replaces the preference list (see format.Resolver)
func (s *Sound) SetPreferredFormats(formats ...string) error {
	return s.resolver.SetPreferredFormats(formats...)
}

// PreferredFormats returns the current preference list
func (s *Sound) PreferredFormats() []audio.Extension {
	return s.resolver.PreferredFormats()
}

// ResolveSinglePath negotiates the extension of one asset path
func (s *Sound) ResolveSinglePath(path string) format.Resolution {
	return s.resolver.ResolveSinglePath(path)
}

// ResolveFromCandidates picks the first playable path from candidates
func (s *Sound) ResolveFromCandidates(paths []string) format.Resolution {
	return s.resolver.ResolveFromCandidates(paths)
}

// ResolvePath returns the path to load for path, falling back to path itself
func (s *Sound) ResolvePath(path string) string {
	res := s.resolver.ResolveSinglePath(path)
	if !res.Supported {
		log.Printf("No supported format for %s, loading as is", path)
	}
	return res.Path
}

// DisposeAllSounds disposes every registered sound object.
// The registry keeps its entries; removing them is the owner's job.
func (s *Sound) DisposeAllSounds() {
	for _, snd := range s.registry.Sounds() {
		snd.Dispose()
	}
}

// Registry returns the registry DisposeAllSounds walks
func (s *Sound) Registry() Registry {
	return s.registry
}

// Close releases the output
func (s *Sound) Close() error {
	return s.output.Close()
}
