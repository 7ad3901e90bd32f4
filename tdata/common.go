// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tdata // import "go.opentelemetry.io/stdouttext/tdata"

import "encoding/hex"

// KeyValue is a single attribute.
type KeyValue struct {
	Key   string
	Value Value
}

// Attributes is an ordered attribute list. Insertion order is preserved and
// rendered verbatim; duplicate keys are kept, not collapsed.
type Attributes []KeyValue

// String returns a KeyValue holding an owned string value.
func String(k, v string) KeyValue { return KeyValue{Key: k, Value: StringValue(v)} }

// StaticString returns a KeyValue holding a static string value.
func StaticString(k, v string) KeyValue { return KeyValue{Key: k, Value: StaticStringValue(v)} }

// Int returns a KeyValue holding an int value.
func Int(k string, v int64) KeyValue { return KeyValue{Key: k, Value: IntValue(v)} }

// Double returns a KeyValue holding a float value.
func Double(k string, v float64) KeyValue { return KeyValue{Key: k, Value: DoubleValue(v)} }

// Bool returns a KeyValue holding a bool value.
func Bool(k string, v bool) KeyValue { return KeyValue{Key: k, Value: BoolValue(v)} }

// Resource is the process-wide attribute set shared by every batch emitted
// by one provider. Immutable after construction.
type Resource struct {
	Attributes Attributes
}

// NewResource returns a Resource with the given attributes.
func NewResource(attrs ...KeyValue) Resource {
	return Resource{Attributes: attrs}
}

// InstrumentationScope identifies the code module that produced a record.
// Empty Version and SchemaURL mean the field is absent.
type InstrumentationScope struct {
	Name       string
	Version    string
	SchemaURL  string
	Attributes Attributes
}

// TraceID is a 16-byte trace identifier.
type TraceID [16]byte

// String returns the trace ID as 32 lowercase hex digits.
func (t TraceID) String() string { return hex.EncodeToString(t[:]) }

// IsEmpty reports whether the trace ID is all zeros.
func (t TraceID) IsEmpty() bool { return t == TraceID{} }

// SpanID is an 8-byte span identifier.
type SpanID [8]byte

// String returns the span ID as 16 lowercase hex digits.
func (s SpanID) String() string { return hex.EncodeToString(s[:]) }

// IsEmpty reports whether the span ID is all zeros. An all-zero parent span
// ID marks a root span.
func (s SpanID) IsEmpty() bool { return s == SpanID{} }

// TraceFlags is the 8-bit trace flags field.
type TraceFlags uint8
