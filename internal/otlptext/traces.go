// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package otlptext // import "go.opentelemetry.io/stdouttext/internal/otlptext"

import (
	"fmt"
	"io"

	"go.opentelemetry.io/stdouttext/tdata"
)

// WriteSpans renders a span batch to w, one write for the header and
// resource block, then one write per span.
func WriteSpans(w io.Writer, td tdata.Spans) error {
	var buf dataBuffer
	buf.logEntry("Spans")
	buf.logResource(td.Resource)
	if _, err := w.Write(buf.bytes()); err != nil {
		return err
	}
	for i := range td.Spans {
		buf.reset()
		spanBlock(&buf, i, td.Spans[i])
		if _, err := w.Write(buf.bytes()); err != nil {
			return err
		}
	}
	return nil
}

func spanBlock(buf *dataBuffer, index int, span tdata.Span) {
	buf.logEntry("Span #%d", index)
	buf.logScopeBlock("Instrumentation Scope", span.Scope, true)
	buf.logEntry("")
	buf.logEntry("  %-12s: %s", "Name", span.Name)
	buf.logEntry("  %-12s: %s", "TraceId", span.TraceID)
	buf.logEntry("  %-12s: %s", "SpanId", span.SpanID)
	buf.logEntry("  %-12s: %s", "TraceFlags", formatTraceFlags(span.TraceFlags))
	buf.logEntry("  %-12s: %s", "ParentSpanId", span.ParentSpanID)
	buf.logEntry("  %-12s: %s", "Kind", span.Kind)
	buf.logEntry("  Start time: %s", formatTime(span.StartTime))
	buf.logEntry("  End time: %s", formatTime(span.EndTime))
	buf.logEntry("  Status: %s", statusString(span.Status))
	buf.logEntry("  Attributes:")
	buf.logAttributes("     ", span.Attributes)
	// The Events header is printed even for a span without events.
	buf.logEntry("  Events:")
	for k, ev := range span.Events {
		buf.logEntry("  Event #%d", k)
		buf.logEntry("  %-10s: %s", "Name", ev.Name)
		buf.logEntry("  %-10s: %s", "Timestamp", formatTime(ev.Timestamp))
		buf.logEntry("  Attributes:")
		buf.logAttributes("     ", ev.Attributes)
	}
}

func statusString(s tdata.Status) string {
	if s.Code == tdata.StatusCodeError && s.Message != "" {
		return fmt.Sprintf("Error(%q)", s.Message)
	}
	return s.Code.String()
}
