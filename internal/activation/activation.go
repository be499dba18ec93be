// Package activation provides branchless scalar activation functions and their
// derivatives for the sliding-window kernel.
//
// Every derivative takes the already-activated value, not the pre-activation input.
// The forward pass overwrites its sums in place, so the activated value is the only
// thing left in the buffer when the backward pass runs.
package activation

import (
	"math"

	"github.com/chewxy/math32"
)

// LeakyAlpha is the negative-side slope of LeakyRectifier.
const LeakyAlpha float32 = 0.01

// nonNegative returns 1 when the sign bit of x is clear and 0 when it is set.
func nonNegative(x float32) float32 {
	return float32(^math.Float32bits(x) >> 31)
}

// Rectifier computes max(x, 0).
//
// The sign bit is arithmetic-shifted into an all-ones mask for negative inputs and
// an all-zeros mask otherwise; clearing the value with the mask yields +0 for every
// negative input, including -0. Multiplying by a 0/1 mask instead would keep the
// sign and return -0 for negative inputs.
func Rectifier(x float32) float32 {
	b := math.Float32bits(x)
	return math.Float32frombits(b &^ uint32(int32(b)>>31))
}

// RectifierDerivative returns 1 when the activated value a is strictly positive and
// 0 otherwise.
//
// Reinterpreted as int32, a positive float has a positive bit pattern; negating in
// 64 bits and keeping the sign gives the 0/1 flag without a compare. Zero of
// either sign maps to 0, so +0 reports 0 even though its sign bit is clear: a
// rectifier output of 0 came from a non-positive input.
func RectifierDerivative(a float32) float32 {
	s := int64(int32(math.Float32bits(a)))
	return float32(uint64(-s) >> 63)
}

// ParametricRectifier computes x for x >= 0 and alpha*x for x < 0.
func ParametricRectifier(x, alpha float32) float32 {
	m := nonNegative(x)
	return x * (m + alpha*(1-m))
}

// ParametricRectifierDerivative returns the rectifier derivative of a.
//
// The negative side reports 0, not alpha.
func ParametricRectifierDerivative(a float32) float32 {
	return RectifierDerivative(a)
}

// LeakyRectifier is ParametricRectifier with alpha = LeakyAlpha.
func LeakyRectifier(x float32) float32 {
	return ParametricRectifier(x, LeakyAlpha)
}

// LeakyRectifierDerivative is ParametricRectifierDerivative.
func LeakyRectifierDerivative(a float32) float32 {
	return ParametricRectifierDerivative(a)
}

// ElliotSig computes x / (1 + |x|), a sigmoid-shaped squashing into (-1, 1).
func ElliotSig(x float32) float32 {
	return x / (1 + math32.Abs(x))
}

// ElliotSigDerivative returns a*a for the activated value a.
func ElliotSigDerivative(a float32) float32 {
	return a * a
}

// NormalizedExponential returns e^x, the softmax numerator of a single element.
// Summation and normalization are left to the caller.
func NormalizedExponential(x float32) float32 {
	return math32.Exp(x)
}

// SoftmaxDerivative returns a * (1 - a).
func SoftmaxDerivative(a float32) float32 {
	return a * (1 - a)
}
