// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tdata // import "go.opentelemetry.io/stdouttext/tdata"

import "time"

// SeverityNumber is the numerical log severity, 1..24 per the OpenTelemetry
// log data model. Zero means unspecified.
type SeverityNumber int32

const (
	SeverityNumberUnspecified SeverityNumber = 0
	SeverityNumberTrace       SeverityNumber = 1
	SeverityNumberTrace2      SeverityNumber = 2
	SeverityNumberTrace3      SeverityNumber = 3
	SeverityNumberTrace4      SeverityNumber = 4
	SeverityNumberDebug       SeverityNumber = 5
	SeverityNumberDebug2      SeverityNumber = 6
	SeverityNumberDebug3      SeverityNumber = 7
	SeverityNumberDebug4      SeverityNumber = 8
	SeverityNumberInfo        SeverityNumber = 9
	SeverityNumberInfo2       SeverityNumber = 10
	SeverityNumberInfo3       SeverityNumber = 11
	SeverityNumberInfo4       SeverityNumber = 12
	SeverityNumberWarn        SeverityNumber = 13
	SeverityNumberWarn2       SeverityNumber = 14
	SeverityNumberWarn3       SeverityNumber = 15
	SeverityNumberWarn4       SeverityNumber = 16
	SeverityNumberError       SeverityNumber = 17
	SeverityNumberError2      SeverityNumber = 18
	SeverityNumberError3      SeverityNumber = 19
	SeverityNumberError4      SeverityNumber = 20
	SeverityNumberFatal       SeverityNumber = 21
	SeverityNumberFatal2      SeverityNumber = 22
	SeverityNumberFatal3      SeverityNumber = 23
	SeverityNumberFatal4      SeverityNumber = 24
)

var severityNames = map[SeverityNumber]string{
	SeverityNumberTrace:   "Trace",
	SeverityNumberTrace2:  "Trace2",
	SeverityNumberTrace3:  "Trace3",
	SeverityNumberTrace4:  "Trace4",
	SeverityNumberDebug:   "Debug",
	SeverityNumberDebug2:  "Debug2",
	SeverityNumberDebug3:  "Debug3",
	SeverityNumberDebug4:  "Debug4",
	SeverityNumberInfo:    "Info",
	SeverityNumberInfo2:   "Info2",
	SeverityNumberInfo3:   "Info3",
	SeverityNumberInfo4:   "Info4",
	SeverityNumberWarn:    "Warn",
	SeverityNumberWarn2:   "Warn2",
	SeverityNumberWarn3:   "Warn3",
	SeverityNumberWarn4:   "Warn4",
	SeverityNumberError:   "Error",
	SeverityNumberError2:  "Error2",
	SeverityNumberError3:  "Error3",
	SeverityNumberError4:  "Error4",
	SeverityNumberFatal:   "Fatal",
	SeverityNumberFatal2:  "Fatal2",
	SeverityNumberFatal3:  "Fatal3",
	SeverityNumberFatal4:  "Fatal4",
}

// String returns the severity name, e.g. "Error".
func (sn SeverityNumber) String() string {
	if name, ok := severityNames[sn]; ok {
		return name
	}
	return "Unspecified"
}

// TraceContext correlates a log record with the span that was active when
// the record was emitted.
type TraceContext struct {
	TraceID    TraceID
	SpanID     SpanID
	TraceFlags TraceFlags
}

// LogRecord is one finalized log record.
type LogRecord struct {
	Scope             InstrumentationScope
	EventName         string // optional; empty means absent
	Target            string
	ObservedTimestamp time.Time
	SeverityText      string
	SeverityNumber    SeverityNumber
	Body              Value // optional; ValueTypeEmpty means absent
	TraceContext      *TraceContext
	Attributes        Attributes
}

// Logs is a finalized log batch.
type Logs struct {
	Resource Resource
	Records  []LogRecord
}
