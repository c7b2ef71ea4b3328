// ABOUTME: Shared linear gain parameter
// ABOUTME: Lock-free float64 read by output callbacks and written by the sketch
package audio

import (
	"math"
	"sync/atomic"
)

// Param is a single float64 value shared between a sketch and its output device.
// Writes are not smoothed or ramped.
type Param struct {
	bits atomic.Uint64
}

// NewParam creates a parameter holding v
func NewParam(v float64) *Param {
	p := &Param{}
	p.Set(v)
	return p
}

// Set stores v as is, without clamping
func (p *Param) Set(v float64) {
	p.bits.Store(math.Float64bits(v))
}

// Value returns the current value
func (p *Param) Value() float64 {
	return math.Float64frombits(p.bits.Load())
}
