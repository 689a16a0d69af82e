// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import "go.opentelemetry.io/otel/trace"

// FaultRecorder encodes a fault onto a span.
//
// The [SpanDecorator] decides whether a fault is recorded; the
// recorder decides how it is represented.
type FaultRecorder interface {
	RecordFault(span trace.Span, err error)
}

// FaultRecorderFunc adapts a function to the [FaultRecorder] interface.
type FaultRecorderFunc func(span trace.Span, err error)

var _ FaultRecorder = FaultRecorderFunc(nil)

// RecordFault implements [FaultRecorder].
func (f FaultRecorderFunc) RecordFault(span trace.Span, err error) {
	f(span, err)
}

// DefaultFaultRecorder records the fault as an OpenTelemetry exception
// event including the type, the message, and the stack trace.
var DefaultFaultRecorder = FaultRecorderFunc(func(span trace.Span, err error) {
	span.RecordError(err, trace.WithStackTrace(true))
})
