// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import "log/slog"

// NewDestinationSpanDecorator returns a new [*DestinationSpanDecorator].
//
// The cfg argument contains the common configuration for hoptrace.
//
// The logger argument is the [SLogger] to use for structured logging.
//
// The option argument is the name of the endpoint option carrying the
// destination (e.g., "topic"). Use an empty string to always name spans
// after the endpoint path.
func NewDestinationSpanDecorator(cfg *Config, logger SLogger, option string) *DestinationSpanDecorator {
	return &DestinationSpanDecorator{
		BaseSpanDecorator: NewBaseSpanDecorator(cfg, logger),
		Option:            option,
	}
}

// DestinationSpanDecorator is a [SpanDecorator] for messaging endpoints
// that names spans after the destination rather than after the scheme.
//
// The destination is the value of the configured option, when the endpoint
// address contains it, or the address stripped of scheme and options (see
// [StripSchemeAndOptions]). For example, with Option set to "topic",
// "kafka:cluster?topic=orders" is named "orders" and "jms:queue:orders"
// is named "queue:orders".
//
// When the address is malformed, the span is named after
// [BaseSpanDecorator.DefaultOperationName].
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with method calls.
type DestinationSpanDecorator struct {
	// BaseSpanDecorator provides everything but the operation name.
	*BaseSpanDecorator

	// Option is the endpoint option carrying the destination.
	//
	// Set by [NewDestinationSpanDecorator] to the user-provided value.
	Option string
}

var _ SpanDecorator = &DestinationSpanDecorator{}

// OperationName implements [SpanDecorator].
func (d *DestinationSpanDecorator) OperationName(exchange Exchange, endpoint Endpoint, direction Direction) string {
	uri := endpoint.EndpointURI()
	if d.Option != "" {
		if value, found := ToQueryParameters(uri)[d.Option]; found {
			return value
		}
	}
	destination, err := StripSchemeAndOptions(uri)
	if err != nil || destination == "" {
		d.Logger.Debug(
			"operationNameFallback",
			slog.String("endpoint", d.Sanitizer.Sanitize(uri)),
			slog.Any("err", err),
			slog.String("operation", d.DefaultOperationName),
		)
		return d.DefaultOperationName
	}
	return destination
}
