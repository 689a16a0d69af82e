// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AttrURI is the span attribute holding the sanitized endpoint address.
const AttrURI = "camel.uri"

// SpanDecorator is the policy that turns a hop into a span.
//
// For each hop, the pipeline engine calls, in order, ShouldStartNewSpan,
// OperationName, Pre, the unit of work, and Post. Implementations must
// be safe for concurrent use, since hops for different exchanges may run
// in parallel. Each hop uses its own span.
type SpanDecorator interface {
	// ShouldStartNewSpan returns whether the hop gets its own span.
	ShouldStartNewSpan() bool

	// OperationName returns the name of the span.
	OperationName(exchange Exchange, endpoint Endpoint, direction Direction) string

	// Pre decorates the span at hop entry, before the outcome is known.
	Pre(span trace.Span, exchange Exchange, endpoint Endpoint, direction Direction)

	// Post decorates the span at hop exit according to the outcome.
	//
	// The exchange is either nil or a usable value; typed nil pointers
	// are not allowed.
	Post(span trace.Span, exchange Exchange, endpoint Endpoint)

	// InitiatorSpanKind returns the span kind for [DirectionInitiator].
	InitiatorSpanKind() trace.SpanKind

	// ReceiverSpanKind returns the span kind for [DirectionReceiver].
	ReceiverSpanKind() trace.SpanKind
}

// SpanKindFor returns the span kind the decorator uses for the given direction.
func SpanKindFor(decorator SpanDecorator, direction Direction) trace.SpanKind {
	if direction == DirectionReceiver {
		return decorator.ReceiverSpanKind()
	}
	return decorator.InitiatorSpanKind()
}

// NewBaseSpanDecorator returns a new [*BaseSpanDecorator].
//
// The cfg argument contains the common configuration for hoptrace.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewBaseSpanDecorator(cfg *Config, logger SLogger) *BaseSpanDecorator {
	return &BaseSpanDecorator{
		DefaultOperationName: cfg.DefaultOperationName,
		ErrClassifier:        cfg.ErrClassifier,
		FaultRecorder:        cfg.FaultRecorder,
		Logger:               logger,
		Sanitizer:            cfg.Sanitizer,
	}
}

// BaseSpanDecorator is the [SpanDecorator] used for endpoints for which
// no more specific decorator exists.
//
// It names spans after the endpoint scheme, tags them with the sanitized
// endpoint address, marks failed exchanges as errors, and uses client and
// server span kinds for initiators and receivers respectively.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with method calls.
type BaseSpanDecorator struct {
	// DefaultOperationName is the fallback operation name.
	//
	// Set by [NewBaseSpanDecorator] from [Config.DefaultOperationName].
	DefaultOperationName string

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewBaseSpanDecorator] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// FaultRecorder records the fault of failed exchanges.
	//
	// Set by [NewBaseSpanDecorator] from [Config.FaultRecorder].
	FaultRecorder FaultRecorder

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewBaseSpanDecorator] to the user-provided logger.
	Logger SLogger

	// Sanitizer redacts secrets from the endpoint address.
	//
	// Set by [NewBaseSpanDecorator] from [Config.Sanitizer].
	Sanitizer URISanitizer
}

var _ SpanDecorator = &BaseSpanDecorator{}

// ShouldStartNewSpan implements [SpanDecorator].
//
// This method always returns true.
func (d *BaseSpanDecorator) ShouldStartNewSpan() bool {
	return true
}

// OperationName implements [SpanDecorator].
//
// This method returns the endpoint scheme; see [OperationName].
func (d *BaseSpanDecorator) OperationName(exchange Exchange, endpoint Endpoint, direction Direction) string {
	return OperationName(endpoint.EndpointURI(), d.DefaultOperationName)
}

// Pre implements [SpanDecorator].
//
// This method sets the [AttrURI] attribute to the sanitized endpoint address.
func (d *BaseSpanDecorator) Pre(span trace.Span, exchange Exchange, endpoint Endpoint, direction Direction) {
	span.SetAttributes(attribute.String(AttrURI, d.Sanitizer.Sanitize(endpoint.EndpointURI())))
}

// Post implements [SpanDecorator].
//
// When the exchange failed, this method sets the span status to
// [codes.Error], using the fault message as the status description (or
// an empty description when there is no fault), and records the fault,
// if any, through the FaultRecorder. Otherwise, it does not touch the span.
//
// A nil exchange is treated as successful. The exchange must not be a
// nil pointer wrapped in a non-nil [Exchange]: its methods are called.
func (d *BaseSpanDecorator) Post(span trace.Span, exchange Exchange, endpoint Endpoint) {
	if exchange == nil || !exchange.Failed() {
		return
	}
	err := exchange.Exception()
	var description string
	if err != nil {
		description = err.Error()
	}
	span.SetStatus(codes.Error, description)
	if err != nil {
		d.FaultRecorder.RecordFault(span, err)
	}
	d.Logger.Info(
		"hopFault",
		slog.String("endpoint", d.Sanitizer.Sanitize(endpoint.EndpointURI())),
		slog.Any("err", err),
		slog.String("errClass", d.ErrClassifier.Classify(err)),
		slog.Bool("faultRecorded", err != nil),
	)
}

// InitiatorSpanKind implements [SpanDecorator].
func (d *BaseSpanDecorator) InitiatorSpanKind() trace.SpanKind {
	return trace.SpanKindClient
}

// ReceiverSpanKind implements [SpanDecorator].
func (d *BaseSpanDecorator) ReceiverSpanKind() trace.SpanKind {
	return trace.SpanKindServer
}
