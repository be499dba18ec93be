// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the in-place sliding-window forward/backward kernel.
//
// # Overview
//
// One float32 buffer holds the input, hidden and output segments back to back.
// Forward fills hidden and output positions from everything before them,
// NormalizeOutputs rewrites the output segment, and Backward walks the buffer in
// reverse writing corrections into the same positions. Nothing is allocated or
// copied during a cycle.
//
// # Basic Usage
//
//	l, err := kernel.NewLayout(4, 2, kernel.DefaultCapacity)
//	if err != nil {
//	    return err
//	}
//	buf := l.NewBuffer()
//	copy(l.Input(buf), []float32{1, 1, 1, 1})
//	e := kernel.Run(l, buf, []float32{0.5, -0.1})
//
// # Concurrency
//
// A cycle is single-threaded. Concurrent cycles must each use their own buffer.
package kernel
