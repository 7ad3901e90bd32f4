// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package otlptext // import "go.opentelemetry.io/stdouttext/internal/otlptext"

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/stdouttext/tdata"
)

// timeLayout is the wall-clock form used for every timestamp in the output.
// Timestamps come from the records; the renderer never reads a clock.
const timeLayout = "2006-01-02 15:04:05.000000"

type dataBuffer struct {
	buf bytes.Buffer
}

func (b *dataBuffer) logEntry(format string, a ...interface{}) {
	fmt.Fprintf(&b.buf, format, a...)
	b.buf.WriteString("\n")
}

func (b *dataBuffer) bytes() []byte { return b.buf.Bytes() }

func (b *dataBuffer) reset() { b.buf.Reset() }

// logResource emits the "Resource" header and one bullet per attribute, in
// insertion order. An empty resource still gets its header.
func (b *dataBuffer) logResource(res tdata.Resource) {
	b.logEntry("Resource")
	for _, kv := range res.Attributes {
		b.logEntry("   ->  %s=%s", kv.Key, valueToString(kv.Value))
	}
}

// logAttributes emits typed attribute bullets, e.g.
// "     ->  event_id: Int(20)". The indent is the caller's block indent.
func (b *dataBuffer) logAttributes(indent string, attrs tdata.Attributes) {
	for _, kv := range attrs {
		b.logEntry("%s->  %s: %s", indent, kv.Key, valueToString(kv.Value))
	}
}

// logAttributesPlain emits compact attribute bullets without the type
// wrapper, e.g. "         ->  name: apple". Used for scope and metric
// data point attributes.
func (b *dataBuffer) logAttributesPlain(indent string, attrs tdata.Attributes) {
	for _, kv := range attrs {
		b.logEntry("%s->  %s: %s", indent, kv.Key, valueDisplay(kv.Value))
	}
}

// logScopeBlock emits the multi-line instrumentation scope block used by
// span and metric output. Absent version/schema URL render as the literal
// None rather than being dropped.
func (b *dataBuffer) logScopeBlock(header string, scope tdata.InstrumentationScope, quoted bool) {
	b.logEntry("  %s", header)
	name := scope.Name
	if quoted {
		name = strconv.Quote(name)
	}
	b.logEntry("    %-13s: %s", "Name", name)
	b.logEntry("    %-13s: %s", "Version", optionalString(scope.Version, quoted))
	b.logEntry("    %-13s: %s", "SchemaUrl", optionalString(scope.SchemaURL, quoted))
	b.logEntry("    Scope Attributes:")
	b.logAttributesPlain("       ", scope.Attributes)
}

// scopeInline is the single-line scope form used by log records.
func scopeInline(scope tdata.InstrumentationScope) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "InstrumentationScope { name: %q, version: %s, schema_url: %s, attributes: [",
		scope.Name, optionalSome(scope.Version), optionalSome(scope.SchemaURL))
	for i, kv := range scope.Attributes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%s", kv.Key, valueToString(kv.Value))
	}
	sb.WriteString("] }")
	return sb.String()
}

func optionalString(s string, quoted bool) string {
	if s == "" {
		return "None"
	}
	if quoted {
		return strconv.Quote(s)
	}
	return s
}

func optionalSome(s string) string {
	if s == "" {
		return "None"
	}
	return fmt.Sprintf("Some(%q)", s)
}

func optionalQuoted(s string) string {
	if s == "" {
		return "None"
	}
	return strconv.Quote(s)
}

// valueToString renders a value in its typed form, e.g.
// String(Owned("x")), Int(20), Double(5.5), Array([...]). Total over all
// value types; anything unrecognized degrades to a placeholder.
func valueToString(v tdata.Value) string {
	switch v.Type() {
	case tdata.ValueTypeEmpty:
		return "Empty"
	case tdata.ValueTypeString:
		if v.IsStatic() {
			return fmt.Sprintf("String(Static(%q))", v.Str())
		}
		return fmt.Sprintf("String(Owned(%q))", v.Str())
	case tdata.ValueTypeInt:
		return fmt.Sprintf("Int(%d)", v.Int())
	case tdata.ValueTypeDouble:
		return fmt.Sprintf("Double(%s)", formatDouble(v.Double()))
	case tdata.ValueTypeBool:
		return fmt.Sprintf("Bool(%t)", v.Bool())
	case tdata.ValueTypeSlice:
		return fmt.Sprintf("Array(%s)", sliceToString(v.Slice()))
	}
	return fmt.Sprintf("Unknown(<value type %d>)", int(v.Type()))
}

func sliceToString(elems []tdata.Value) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, el := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(valueToString(el))
	}
	sb.WriteByte(']')
	return sb.String()
}

// valueDisplay renders a value in its compact form, without the type
// wrapper: string content as-is, numbers in plain decimal.
func valueDisplay(v tdata.Value) string {
	switch v.Type() {
	case tdata.ValueTypeEmpty:
		return ""
	case tdata.ValueTypeString:
		return v.Str()
	case tdata.ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case tdata.ValueTypeDouble:
		return formatDouble(v.Double())
	case tdata.ValueTypeBool:
		return strconv.FormatBool(v.Bool())
	case tdata.ValueTypeSlice:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range v.Slice() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(valueDisplay(el))
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return fmt.Sprintf("Unknown(<value type %d>)", int(v.Type()))
}

// formatDouble keeps a decimal point on integral values: 12 prints as 12.0.
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

// formatBound renders a histogram bucket bound. Integral bounds print as
// plain integers: "0 to 5", not "0.0 to 5.0".
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTraceFlags(f tdata.TraceFlags) string {
	return fmt.Sprintf("TraceFlags(%d)", uint8(f))
}
