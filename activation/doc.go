// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides branchless scalar activation functions.
//
// # Overview
//
// Each function maps one float32 to one float32 in constant time without
// conditional branches. Rectifiers extract the IEEE-754 sign bit and turn it into
// a mask; ElliotSig clears the sign bit to take the absolute value.
//
// Derivatives take the already-activated value:
//
//	a := activation.Rectifier(x)
//	d := activation.RectifierDerivative(a) // 1 if x > 0, else 0
//
// # Available Functions
//
//   - Rectifier / RectifierDerivative
//   - ParametricRectifier / ParametricRectifierDerivative
//   - LeakyRectifier / LeakyRectifierDerivative (alpha = 0.01)
//   - ElliotSig / ElliotSigDerivative
//   - NormalizedExponential / SoftmaxDerivative
//
// ParametricRectifierDerivative returns 0 on the negative side rather than
// alpha, and ElliotSigDerivative returns a*a; both are kept as-is.
//
// Behavior for infinite or NaN inputs is unspecified.
package activation
