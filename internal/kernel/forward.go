package kernel

import "github.com/born-ml/slide/internal/activation"

// Forward fills every position from Inputs to Capacity-1 with a rectified
// weighted sum of all positions before it.
//
// The window for destination i spans [0, i): it starts Inputs wide and grows by
// one per step, so later positions sum strictly more terms than earlier ones.
// There is no parameter store. The weight window aliases the same leading
// positions as the source window.
//
// The input segment must be written before calling Forward.
func Forward(l Layout, buf []float32) {
	t := l.view("forward", buf)

	for dst, w := l.Inputs, l.Inputs; dst < l.Capacity; dst, w = dst+1, w+1 {
		src := t[:w]
		weights := t[:w]
		t[dst] = activation.Rectifier(dot(src, weights))
	}
}

// dot accumulates sequentially in float32. Each product is rounded before the
// add so the compiler cannot fuse it into an FMA.
func dot(a, b []float32) float32 {
	b = b[:len(a)]
	var sum float32
	for i, v := range a {
		sum += float32(v * b[i])
	}
	return sum
}
