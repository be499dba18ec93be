package kernel

import "github.com/born-ml/slide/internal/activation"

// NormalizeOutputs rewrites out in place.
//
// The first scan tracks the maximum, starting from 0, and replaces each value
// with e^value while summing. The second scan divides by the sum and then adds
// the maximum back:
//
//	out[i] = e^out[i] / sum(e^out) + max(0, out...)
//
// The maximum is never subtracted before exponentiation, so large outputs
// overflow, and the result does not sum to 1 unless the maximum is 0. Applying it
// twice gives a different result than applying it once.
// TODO: decide whether to switch to max-subtracted softmax once callers can
// tolerate the changed outputs.
func NormalizeOutputs(out []float32) {
	var maxVal, sum float32
	for i, o := range out {
		if o > maxVal {
			maxVal = o
		}
		out[i] = activation.NormalizedExponential(o)
		sum += out[i]
	}
	for i := range out {
		out[i] = out[i]/sum + maxVal
	}
}
