// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"strings"
	"sync"

	"github.com/bassosimone/runtimex"
)

// DecoratorResolver selects the [SpanDecorator] for an endpoint address.
//
// The [*Registry] type satisfies this interface.
type DecoratorResolver interface {
	Lookup(address string) SpanDecorator
}

// NewRegistry returns a new [*Registry] using the given fallback.
//
// This function panics if fallback is nil.
func NewRegistry(fallback SpanDecorator) *Registry {
	runtimex.Assert(fallback != nil)
	return &Registry{
		decorators: make(map[string]SpanDecorator),
		fallback:   fallback,
	}
}

// Registry maps endpoint schemes to specialized [SpanDecorator] instances.
//
// Lookups for schemes without a registered decorator return the fallback,
// usually a [*BaseSpanDecorator].
//
// The zero value is invalid; use [NewRegistry]. A [*Registry] is safe for
// concurrent use.
type Registry struct {
	decorators map[string]SpanDecorator
	fallback   SpanDecorator
	mu         sync.RWMutex
}

var _ DecoratorResolver = &Registry{}

// Register associates the decorator with the scheme, replacing any
// previously registered decorator.
//
// This method panics if decorator is nil.
func (r *Registry) Register(scheme string, decorator SpanDecorator) {
	runtimex.Assert(decorator != nil)
	r.mu.Lock()
	r.decorators[scheme] = decorator
	r.mu.Unlock()
}

// Lookup returns the decorator registered for the scheme of the given
// endpoint address or the fallback decorator.
func (r *Registry) Lookup(address string) SpanDecorator {
	scheme, _, found := strings.Cut(address, ":")
	if !found {
		return r.fallback
	}
	r.mu.RLock()
	decorator, ok := r.decorators[scheme]
	r.mu.RUnlock()
	if !ok {
		return r.fallback
	}
	return decorator
}
