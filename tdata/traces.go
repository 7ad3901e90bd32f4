// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tdata // import "go.opentelemetry.io/stdouttext/tdata"

import (
	"fmt"
	"time"
)

// SpanKind distinguishes the role a span plays in a trace.
type SpanKind int32

const (
	SpanKindInternal SpanKind = iota
	SpanKindServer
	SpanKindClient
	SpanKindProducer
	SpanKindConsumer
)

// String returns the span kind name, e.g. "Internal".
func (sk SpanKind) String() string {
	switch sk {
	case SpanKindInternal:
		return "Internal"
	case SpanKindServer:
		return "Server"
	case SpanKindClient:
		return "Client"
	case SpanKindProducer:
		return "Producer"
	case SpanKindConsumer:
		return "Consumer"
	}
	return fmt.Sprintf("Unknown(%d)", int32(sk))
}

// StatusCode is the span status code.
type StatusCode int32

const (
	StatusCodeUnset StatusCode = iota
	StatusCodeOk
	StatusCodeError
)

// String returns the status code name, e.g. "Unset".
func (sc StatusCode) String() string {
	switch sc {
	case StatusCodeUnset:
		return "Unset"
	case StatusCodeOk:
		return "Ok"
	case StatusCodeError:
		return "Error"
	}
	return fmt.Sprintf("Unknown(%d)", int32(sc))
}

// Status is the span status. Message is meaningful only for
// StatusCodeError.
type Status struct {
	Code    StatusCode
	Message string
}

// SpanEvent is a timestamped annotation inside a span.
type SpanEvent struct {
	Name       string
	Timestamp  time.Time
	Attributes Attributes
}

// Span is one finalized span. An all-zero ParentSpanID marks a root span.
type Span struct {
	Scope        InstrumentationScope
	Name         string
	TraceID      TraceID
	SpanID       SpanID
	ParentSpanID SpanID
	TraceFlags   TraceFlags
	Kind         SpanKind
	StartTime    time.Time
	EndTime      time.Time
	Status       Status
	Attributes   Attributes
	Events       []SpanEvent
}

// Spans is a finalized span batch.
type Spans struct {
	Resource Resource
	Spans    []Span
}
