// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package otlptext // import "go.opentelemetry.io/stdouttext/internal/otlptext"

import (
	"io"

	"go.opentelemetry.io/stdouttext/tdata"
)

// WriteLogs renders a log batch to w. The "Logs" header and the resource
// block go out first, then each record in submission order as its own
// write, so a sink failure leaves a well-defined prefix of complete
// records on the output.
func WriteLogs(w io.Writer, ld tdata.Logs) error {
	var buf dataBuffer
	buf.logEntry("Logs")
	buf.logResource(ld.Resource)
	if _, err := w.Write(buf.bytes()); err != nil {
		return err
	}
	for i := range ld.Records {
		buf.reset()
		logRecordBlock(&buf, i, ld.Records[i])
		if _, err := w.Write(buf.bytes()); err != nil {
			return err
		}
	}
	return nil
}

func logRecordBlock(buf *dataBuffer, index int, lr tdata.LogRecord) {
	buf.logEntry("Log #%d", index)
	buf.logEntry("   Instrumentation Scope: %s", scopeInline(lr.Scope))
	buf.logEntry("   EventName: %s", optionalQuoted(lr.EventName))
	buf.logEntry("   Target (Scope): %q", lr.Target)
	if tc := lr.TraceContext; tc != nil {
		buf.logEntry("   TraceId: %s", tc.TraceID)
		buf.logEntry("   SpanId: %s", tc.SpanID)
		buf.logEntry("   TraceFlags: %s", formatTraceFlags(tc.TraceFlags))
	}
	buf.logEntry("   Observed Timestamp: %s", formatTime(lr.ObservedTimestamp))
	buf.logEntry("   SeverityText: %q", lr.SeverityText)
	buf.logEntry("   SeverityNumber: %s", lr.SeverityNumber)
	if lr.Body.Type() == tdata.ValueTypeEmpty {
		buf.logEntry("   Body: None")
	} else {
		buf.logEntry("   Body: %s", valueToString(lr.Body))
	}
	buf.logEntry("   Attributes:")
	buf.logAttributes("     ", lr.Attributes)
}
