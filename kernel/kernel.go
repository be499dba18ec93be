// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import "github.com/born-ml/slide/internal/kernel"

// DefaultCapacity is the default buffer size.
const DefaultCapacity = kernel.DefaultCapacity

// ErrInvalidLayout is returned for inconsistent segment sizes.
var ErrInvalidLayout = kernel.ErrInvalidLayout

// Layout partitions a buffer into input, hidden and output segments.
type Layout = kernel.Layout

// Cycle owns a buffer and targets for repeated runs.
type Cycle = kernel.Cycle

// NewLayout returns a validated layout.
func NewLayout(inputs, outputs, capacity int) (Layout, error) {
	return kernel.NewLayout(inputs, outputs, capacity)
}

// NewCycle creates a cycle with a zeroed buffer.
func NewCycle(l Layout, targets []float32) (*Cycle, error) {
	return kernel.NewCycle(l, targets)
}

// Forward fills the hidden and output segments from the input segment.
func Forward(l Layout, buf []float32) { kernel.Forward(l, buf) }

// NormalizeOutputs rewrites an output segment in place.
func NormalizeOutputs(out []float32) { kernel.NormalizeOutputs(out) }

// Backward propagates corrections right to left and returns the accumulated error.
func Backward(l Layout, buf, targets []float32) float32 { return kernel.Backward(l, buf, targets) }

// Run performs Forward, NormalizeOutputs and Backward.
func Run(l Layout, buf, targets []float32) float32 { return kernel.Run(l, buf, targets) }
