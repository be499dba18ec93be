// Package kernel implements the in-place sliding-window forward and backward passes.
//
// A single float32 buffer holds three adjacent segments:
//
//	[0, Inputs)                    input values, written by the caller
//	[Inputs, Capacity-Outputs)     hidden values, written by Forward
//	[Capacity-Outputs, Capacity)   output values, written by Forward and NormalizeOutputs
//
// Forward sweeps left to right, NormalizeOutputs rewrites the output segment, and
// Backward sweeps right to left, writing corrections into the same positions. None of
// the passes allocate or copy the buffer.
package kernel

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the buffer size used when none is given.
const DefaultCapacity = 1024

// ErrInvalidLayout is returned by NewLayout for inconsistent segment sizes.
var ErrInvalidLayout = errors.New("kernel: invalid layout")

// Layout partitions a buffer of Capacity values into input, hidden and output
// segments. The hidden segment takes whatever Inputs and Outputs leave over.
type Layout struct {
	Inputs   int
	Outputs  int
	Capacity int
}

// NewLayout returns a validated layout.
func NewLayout(inputs, outputs, capacity int) (Layout, error) {
	l := Layout{Inputs: inputs, Outputs: outputs, Capacity: capacity}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate reports whether the segment sizes fit the capacity.
func (l Layout) Validate() error {
	switch {
	case l.Inputs < 1:
		return fmt.Errorf("%w: inputs must be positive, got %d", ErrInvalidLayout, l.Inputs)
	case l.Outputs < 1:
		return fmt.Errorf("%w: outputs must be positive, got %d", ErrInvalidLayout, l.Outputs)
	case l.Capacity < l.Inputs+l.Outputs:
		return fmt.Errorf("%w: capacity %d smaller than inputs+outputs (%d)",
			ErrInvalidLayout, l.Capacity, l.Inputs+l.Outputs)
	}
	return nil
}

// Hidden returns the number of hidden positions.
func (l Layout) Hidden() int {
	return l.Capacity - l.Inputs - l.Outputs
}

// OutputStart returns the index of the first output position.
func (l Layout) OutputStart() int {
	return l.Capacity - l.Outputs
}

// NewBuffer allocates a zeroed buffer sized to the layout.
func (l Layout) NewBuffer() []float32 {
	return make([]float32, l.Capacity)
}

// Input returns the input segment of buf. The result aliases buf.
func (l Layout) Input(buf []float32) []float32 {
	return l.view("input", buf)[:l.Inputs]
}

// HiddenSegment returns the hidden segment of buf. The result aliases buf.
func (l Layout) HiddenSegment(buf []float32) []float32 {
	return l.view("hidden", buf)[l.Inputs:l.OutputStart()]
}

// Output returns the output segment of buf. The result aliases buf.
func (l Layout) Output(buf []float32) []float32 {
	return l.view("output", buf)[l.OutputStart():]
}

// view checks the layout against buf and returns buf truncated to Capacity.
// Violations are programming errors and panic with the calling operation's name.
func (l Layout) view(op string, buf []float32) []float32 {
	if err := l.Validate(); err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	if len(buf) < l.Capacity {
		panic(fmt.Sprintf("%s: buffer length %d smaller than capacity %d", op, len(buf), l.Capacity))
	}
	return buf[:l.Capacity:l.Capacity]
}
