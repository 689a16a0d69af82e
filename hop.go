// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewHopFunc returns a new [*HopFunc] tracing fn as a hop through endpoint.
//
// The cfg argument contains the common configuration for hoptrace.
//
// The tracer argument is the [trace.Tracer] creating the spans.
//
// The decorators argument selects the [SpanDecorator] for the endpoint.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewHopFunc[A, B any](cfg *Config, tracer trace.Tracer, decorators DecoratorResolver,
	endpoint Endpoint, direction Direction, fn Func[A, B], logger SLogger) *HopFunc[A, B] {
	return &HopFunc[A, B]{
		Decorators:           decorators,
		DefaultOperationName: cfg.DefaultOperationName,
		Direction:            direction,
		Endpoint:             endpoint,
		ErrClassifier:        cfg.ErrClassifier,
		Fn:                   fn,
		Logger:               logger,
		Sanitizer:            cfg.Sanitizer,
		TimeNow:              cfg.TimeNow,
		Tracer:               tracer,
	}
}

// HopFunc runs a [Func] as one hop through an [Endpoint], driving the
// [SpanDecorator] selected for the endpoint.
//
// For each call, the decorator decides whether to start a span and how to
// name it, decorates the span before and after running Fn, and the span
// is ended before returning. The result of Fn is returned unchanged:
// tracing never alters the outcome of the traced work.
//
// A panic in the decorator or in its collaborators (sanitizer, fault
// recorder, error classifier) is recovered and logged as a hopTraceFault
// event. When it happens before Fn runs, the hop continues with a
// degraded span (or without one, if the decorator could not be selected).
// Panics raised by Fn itself are not recovered.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type HopFunc[A, B any] struct {
	// Decorators selects the [SpanDecorator] for Endpoint.
	//
	// Set by [NewHopFunc] to the user-provided value.
	Decorators DecoratorResolver

	// DefaultOperationName names the span when the decorator fails to.
	//
	// Set by [NewHopFunc] from [Config.DefaultOperationName].
	DefaultOperationName string

	// Direction tells whether we initiate or receive the hop.
	//
	// Set by [NewHopFunc] to the user-provided value.
	Direction Direction

	// Endpoint is the endpoint the hop goes through.
	//
	// Set by [NewHopFunc] to the user-provided value.
	Endpoint Endpoint

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewHopFunc] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Fn is the unit of work.
	//
	// Set by [NewHopFunc] to the user-provided value.
	Fn Func[A, B]

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewHopFunc] to the user-provided logger.
	Logger SLogger

	// Sanitizer redacts secrets from the endpoint address we log.
	//
	// Set by [NewHopFunc] from [Config.Sanitizer].
	Sanitizer URISanitizer

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewHopFunc] from [Config.TimeNow].
	TimeNow func() time.Time

	// Tracer creates the spans.
	//
	// Set by [NewHopFunc] to the user-provided value.
	Tracer trace.Tracer
}

var _ Func[int, int] = &HopFunc[int, int]{}

// Call invokes the [*HopFunc] to run Fn with the given input.
func (op *HopFunc[A, B]) Call(ctx context.Context, input A) (B, error) {
	exchangeID := NewExchangeID()
	uri := op.Endpoint.EndpointURI()

	var (
		decorator SpanDecorator
		startSpan bool
	)
	op.guard(exchangeID, "lookup", func() {
		decorator = op.Decorators.Lookup(uri)
		startSpan = decorator.ShouldStartNewSpan()
	})
	if !startSpan {
		return op.Fn.Call(ctx, input)
	}

	// the outcome is unknown until Fn returns
	var pending Outcome
	operation := op.DefaultOperationName
	kind := trace.SpanKindInternal
	op.guard(exchangeID, "operationName", func() {
		operation = decorator.OperationName(pending, op.Endpoint, op.Direction)
		kind = SpanKindFor(decorator, op.Direction)
	})
	ctx, span := op.Tracer.Start(ctx, operation, trace.WithSpanKind(kind))
	defer span.End()

	t0 := op.TimeNow()
	op.guard(exchangeID, "hopStart", func() {
		op.logHopStart(exchangeID, uri, operation, t0)
	})
	op.guard(exchangeID, "pre", func() {
		decorator.Pre(span, pending, op.Endpoint, op.Direction)
	})

	output, err := op.Fn.Call(ctx, input)

	op.guard(exchangeID, "post", func() {
		decorator.Post(span, NewOutcome(err), op.Endpoint)
	})
	op.guard(exchangeID, "hopDone", func() {
		op.logHopDone(exchangeID, uri, operation, t0, err)
	})
	return output, err
}

// guard runs a tracing step, recovering and logging any panic so that
// a misbehaving decorator cannot abort the hop.
func (op *HopFunc[A, B]) guard(exchangeID, stage string, step func()) {
	defer func() {
		if r := recover(); r != nil {
			op.Logger.Info(
				"hopTraceFault",
				slog.String("exchangeID", exchangeID),
				slog.Any("panic", r),
				slog.String("stage", stage),
				slog.Time("t", op.TimeNow()),
			)
		}
	}()
	step()
}

func (op *HopFunc[A, B]) logHopStart(exchangeID, uri, operation string, t0 time.Time) {
	op.Logger.Info(
		"hopStart",
		slog.String("direction", op.Direction.String()),
		slog.String("endpoint", op.Sanitizer.Sanitize(uri)),
		slog.String("exchangeID", exchangeID),
		slog.String("operation", operation),
		slog.Time("t", t0),
	)
}

func (op *HopFunc[A, B]) logHopDone(exchangeID, uri, operation string, t0 time.Time, err error) {
	op.Logger.Info(
		"hopDone",
		slog.String("direction", op.Direction.String()),
		slog.String("endpoint", op.Sanitizer.Sanitize(uri)),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("exchangeID", exchangeID),
		slog.String("operation", operation),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
