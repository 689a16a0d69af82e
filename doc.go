// SPDX-License-Identifier: GPL-3.0-or-later

// Package hoptrace turns hops of a message-routing pipeline into OpenTelemetry spans.
//
// # Core Abstraction
//
// A hop is one traversal of an exchange (the unit of work) through an
// endpoint (a source or destination identified by an address such as
// "jms:queue:orders" or "direct://foo?timeout=5"). The policy that maps
// a hop to a span is the [SpanDecorator] interface:
//
//	type SpanDecorator interface {
//		ShouldStartNewSpan() bool
//		OperationName(exchange Exchange, endpoint Endpoint, direction Direction) string
//		Pre(span trace.Span, exchange Exchange, endpoint Endpoint, direction Direction)
//		Post(span trace.Span, exchange Exchange, endpoint Endpoint)
//		InitiatorSpanKind() trace.SpanKind
//		ReceiverSpanKind() trace.SpanKind
//	}
//
// The pipeline engine calls these methods, in this order, exactly once per hop.
//
// # Available Primitives
//
// Address parsing:
//   - [StripSchemeAndOptions]: removes scheme, leading slashes and options
//   - [ToQueryParameters]: extracts the options as a map
//   - [OperationName]: derives the scheme-based operation name
//
// Decorators:
//   - [BaseSpanDecorator]: the fallback for every endpoint (created via [NewBaseSpanDecorator])
//   - [DestinationSpanDecorator]: names spans after the messaging destination
//     (created via [NewDestinationSpanDecorator])
//   - [Registry]: selects the decorator by endpoint scheme, with fallback
//
// Collaborators:
//   - [URISanitizer]: redacts secrets before the address becomes a span attribute
//   - [FaultRecorder]: encodes the fault of a failed exchange onto the span
//
// Pipeline integration:
//   - [HopFunc]: runs a [Func] as a traced hop (created via [NewHopFunc])
//   - [Compose2], [Compose3]: chain [Func] instances into a route
//
// # Error Handling
//
// Tracing is strictly best effort. Malformed options are silently ignored.
// Addresses with nothing after the scheme cause [StripSchemeAndOptions] to
// return an [*AddressFormatError]; decorators fall back to the default
// operation name. A [HopFunc] always returns the result of the traced work
// unchanged, recovering and logging (as hopTraceFault) any panic raised by
// the decorator or its collaborators.
//
// # Observability
//
// Decorators and hops support structured logging via [SLogger] (compatible
// with [log/slog]). By default, logging is disabled. Each traced hop emits
// hopStart and hopDone events sharing an exchangeID generated with
// [NewExchangeID]; failed exchanges additionally emit hopFault.
//
// # Concurrency
//
// Decorators are stateless and safe for concurrent use. The only side effect
// is the mutation of the caller-supplied span, which belongs to a single hop.
package hoptrace
