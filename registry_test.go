// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLookup(t *testing.T) {
	cfg := NewConfig()
	base := NewBaseSpanDecorator(cfg, DefaultSLogger())
	kafka := NewDestinationSpanDecorator(cfg, DefaultSLogger(), "topic")
	jms := NewDestinationSpanDecorator(cfg, DefaultSLogger(), "")

	registry := NewRegistry(base)
	registry.Register("kafka", kafka)
	registry.Register("jms", jms)

	tests := []struct {
		address string
		want    SpanDecorator
	}{
		{address: "kafka:cluster?topic=orders", want: kafka},
		{address: "jms:queue:orders", want: jms},
		{address: "direct:foo", want: base},
		{address: "kafkaesque:foo", want: base},
		{address: "orders", want: base},
		{address: "", want: base},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Same(t, tt.want, registry.Lookup(tt.address))
		})
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	cfg := NewConfig()
	base := NewBaseSpanDecorator(cfg, DefaultSLogger())
	first := NewDestinationSpanDecorator(cfg, DefaultSLogger(), "")
	second := NewDestinationSpanDecorator(cfg, DefaultSLogger(), "queue")

	registry := NewRegistry(base)
	registry.Register("sqs", first)
	registry.Register("sqs", second)

	assert.Same(t, second, registry.Lookup("sqs:orders"))
}

func TestRegistryPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewRegistry(nil) })

	registry := NewRegistry(NewBaseSpanDecorator(NewConfig(), DefaultSLogger()))
	assert.Panics(t, func() { registry.Register("direct", nil) })
}

func TestRegistryConcurrentUse(t *testing.T) {
	cfg := NewConfig()
	base := NewBaseSpanDecorator(cfg, DefaultSLogger())
	registry := NewRegistry(base)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(fmt.Sprintf("scheme%d", i), NewDestinationSpanDecorator(cfg, DefaultSLogger(), ""))
		}()
		go func() {
			defer wg.Done()
			_ = registry.Lookup(fmt.Sprintf("scheme%d:foo", i))
		}()
	}
	wg.Wait()

	for i := range 8 {
		assert.NotSame(t, base, registry.Lookup(fmt.Sprintf("scheme%d:foo", i)))
	}
}
