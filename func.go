// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import "context"

// Func is a pipeline stage that accepts an input and returns a result.
//
// A [*HopFunc] wraps a Func to trace it as a hop through an endpoint.
type Func[A, B any] interface {
	Call(ctx context.Context, input A) (B, error)
}

// FuncAdapter wraps a function as a [Func] implementation.
//
// Use this to create ad-hoc [Func] instances from closures, for example
// the code that delivers an exchange to an endpoint.
type FuncAdapter[A, B any] func(ctx context.Context, input A) (B, error)

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(ctx context.Context, input A) (B, error) {
	return f(ctx, input)
}
