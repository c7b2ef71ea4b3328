// ABOUTME: Headless audio output
// ABOUTME: Discards samples after applying gain, for tests and CI runs
package output

import (
	"fmt"
	"sync"

	"github.com/Sendspin/sketchsound/pkg/audio"
)

// Null is an Output with no device behind it
type Null struct {
	mu         sync.Mutex
	sampleRate int
	channels   int
	gain       *audio.Param
	open       bool
	written    int64
	last       []int32
}

// NewNull creates a headless output at unity gain
func NewNull() *Null {
	return &Null{gain: audio.NewParam(1.0)}
}

// Open records the format; reopening with a new format is allowed
func (n *Null) Open(sampleRate, channels int) error {
	if sampleRate <= 0 || channels <= 0 {
		return fmt.Errorf("invalid output format: %dHz %dch", sampleRate, channels)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.sampleRate = sampleRate
	n.channels = channels
	n.open = true
	return nil
}

// Write applies gain and keeps the last buffer for inspection
func (n *Null) Write(samples []int32) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.open {
		return fmt.Errorf("output not initialized")
	}

	n.last = applyGain(samples, n.gain.Value())
	n.written += int64(len(samples))
	return nil
}

// Close marks the output closed
func (n *Null) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.open = false
	return nil
}

// SampleRate returns the rate passed to Open
func (n *Null) SampleRate() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sampleRate
}

// Gain returns the master gain parameter
func (n *Null) Gain() *audio.Param {
	return n.gain
}

// Written returns the total number of samples written
func (n *Null) Written() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.written
}

// Last returns the most recent buffer after gain was applied
func (n *Null) Last() []int32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]int32, len(n.last))
	copy(out, n.last)
	return out
}
