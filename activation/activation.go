// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "github.com/born-ml/slide/internal/activation"

// LeakyAlpha is the negative-side slope of LeakyRectifier.
const LeakyAlpha = activation.LeakyAlpha

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = activation.ErrUnknownKind

// Kind names a single-argument activation and its derivative.
type Kind = activation.Kind

// Supported activation kinds.
const (
	KindRectifier             = activation.KindRectifier
	KindLeakyRectifier        = activation.KindLeakyRectifier
	KindElliotSig             = activation.KindElliotSig
	KindNormalizedExponential = activation.KindNormalizedExponential
)

// Kinds returns every supported kind.
func Kinds() []Kind { return activation.Kinds() }

// ParseKind resolves an activation name such as "relu" or "elliotsig".
func ParseKind(name string) (Kind, error) { return activation.ParseKind(name) }

// Rectifier computes max(x, 0).
func Rectifier(x float32) float32 { return activation.Rectifier(x) }

// RectifierDerivative returns 1 for a strictly positive activated value, else 0.
func RectifierDerivative(a float32) float32 { return activation.RectifierDerivative(a) }

// ParametricRectifier computes x for x >= 0 and alpha*x otherwise.
func ParametricRectifier(x, alpha float32) float32 {
	return activation.ParametricRectifier(x, alpha)
}

// ParametricRectifierDerivative returns the rectifier derivative of a.
func ParametricRectifierDerivative(a float32) float32 {
	return activation.ParametricRectifierDerivative(a)
}

// LeakyRectifier is ParametricRectifier with alpha = LeakyAlpha.
func LeakyRectifier(x float32) float32 { return activation.LeakyRectifier(x) }

// LeakyRectifierDerivative is ParametricRectifierDerivative.
func LeakyRectifierDerivative(a float32) float32 { return activation.LeakyRectifierDerivative(a) }

// ElliotSig computes x / (1 + |x|).
func ElliotSig(x float32) float32 { return activation.ElliotSig(x) }

// ElliotSigDerivative returns a*a.
func ElliotSigDerivative(a float32) float32 { return activation.ElliotSigDerivative(a) }

// NormalizedExponential returns e^x.
func NormalizedExponential(x float32) float32 { return activation.NormalizedExponential(x) }

// SoftmaxDerivative returns a * (1 - a).
func SoftmaxDerivative(a float32) float32 { return activation.SoftmaxDerivative(a) }
