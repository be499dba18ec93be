package kernel

import "fmt"

// Run performs one forward pass, output normalization and backward pass over buf
// and returns the accumulated error. It does not allocate.
func Run(l Layout, buf, targets []float32) float32 {
	Forward(l, buf)
	NormalizeOutputs(l.Output(buf))
	return Backward(l, buf, targets)
}

// Cycle owns a buffer and the targets for repeated forward/backward runs.
// A Cycle is not safe for concurrent use; give each goroutine its own.
type Cycle struct {
	layout  Layout
	buf     []float32
	targets []float32
}

// NewCycle creates a cycle with a zeroed buffer. targets is copied.
func NewCycle(l Layout, targets []float32) (*Cycle, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(targets) != l.Outputs {
		return nil, fmt.Errorf("%w: %d targets for %d outputs", ErrInvalidLayout, len(targets), l.Outputs)
	}
	return &Cycle{
		layout:  l,
		buf:     l.NewBuffer(),
		targets: append([]float32(nil), targets...),
	}, nil
}

// Layout returns the cycle's layout.
func (c *Cycle) Layout() Layout { return c.layout }

// Buffer returns the underlying buffer. The result aliases the cycle's storage.
func (c *Cycle) Buffer() []float32 { return c.buf }

// Load writes inputs into the input segment.
func (c *Cycle) Load(inputs []float32) error {
	if len(inputs) != c.layout.Inputs {
		return fmt.Errorf("%w: %d inputs for input segment of %d", ErrInvalidLayout, len(inputs), c.layout.Inputs)
	}
	copy(c.layout.Input(c.buf), inputs)
	return nil
}

// Run clears every non-input position and runs one cycle.
func (c *Cycle) Run() float32 {
	clear(c.buf[c.layout.Inputs:])
	return Run(c.layout, c.buf, c.targets)
}

// Outputs returns the output segment. The result aliases the cycle's storage.
func (c *Cycle) Outputs() []float32 {
	return c.layout.Output(c.buf)
}
