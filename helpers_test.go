// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bassosimone/slogstub"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var (
		mu      sync.Mutex
		records []slog.Record
	)
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		},
	}
	return slog.New(handler), &records
}

// recordMessages returns the messages of the given records.
func recordMessages(records []slog.Record) []string {
	var messages []string
	for _, record := range records {
		messages = append(messages, record.Message)
	}
	return messages
}

// newRecordingTracer returns a tracer backed by the OpenTelemetry SDK and
// the [*tracetest.SpanRecorder] collecting the spans it creates.
func newRecordingTracer() (trace.Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return provider.Tracer("hoptrace-test"), recorder
}

// spanStub is a [trace.Span] counting the mutations we care about.
type spanStub struct {
	noop.Span
	attrs    []attribute.KeyValue
	errs     []error
	statuses []codes.Code
}

var _ trace.Span = &spanStub{}

func (s *spanStub) SetAttributes(kv ...attribute.KeyValue) {
	s.attrs = append(s.attrs, kv...)
}

func (s *spanStub) RecordError(err error, opts ...trace.EventOption) {
	s.errs = append(s.errs, err)
}

func (s *spanStub) SetStatus(code codes.Code, description string) {
	s.statuses = append(s.statuses, code)
}

// mutations returns the number of recorded mutations.
func (s *spanStub) mutations() int {
	return len(s.attrs) + len(s.errs) + len(s.statuses)
}
