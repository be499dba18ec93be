package kernel

import (
	"fmt"
	"slices"

	"github.com/born-ml/slide/internal/activation"
	"github.com/chewxy/math32"
)

// Backward walks the output and hidden segments right to left and adds each
// position's local derivative into the position immediately before it.
//
// For output k at position p the correction is SoftmaxDerivative(buf[p] -
// targets[k]); targets are consumed in reverse alongside the outputs. The
// returned error is the sum of the absolute values of the corrected cells in
// that sweep. Hidden positions then contribute RectifierDerivative(buf[p]).
//
// Reads see earlier writes of the same sweep: the last output corrects the one
// before it, which is then read as an output itself. The sweep stops at the
// input boundary and never writes into [0, Inputs).
//
// The float32 conversion around the softmax correction is not a no-op: an
// explicit conversion forces rounding, which stops the compiler fusing the
// product inside SoftmaxDerivative into the add. dot does the same.
func Backward(l Layout, buf, targets []float32) float32 {
	t := l.view("backward", buf)
	if len(targets) != l.Outputs {
		panic(fmt.Sprintf("backward: %d targets for %d outputs", len(targets), l.Outputs))
	}

	start := l.OutputStart()
	var e float32

	for k, o := range slices.Backward(t[start:]) {
		p := start + k - 1
		if p < l.Inputs {
			break
		}
		t[p] += float32(activation.SoftmaxDerivative(o - targets[k]))
		e += math32.Abs(t[p])
	}

	for k, h := range slices.Backward(t[l.Inputs:start]) {
		p := l.Inputs + k - 1
		if p < l.Inputs {
			break
		}
		t[p] += activation.RectifierDerivative(h)
	}

	return e
}
