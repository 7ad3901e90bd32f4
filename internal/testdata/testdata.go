// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package testdata provides deterministic telemetry batches for tests.
package testdata // import "go.opentelemetry.io/stdouttext/internal/testdata"

import (
	"fmt"
	"time"

	"go.opentelemetry.io/stdouttext/tdata"
)

var (
	baseTimestamp = time.Date(2025, 7, 22, 6, 55, 12, 957518000, time.UTC)

	testTraceID = tdata.TraceID{0xaa, 0x54, 0x7e, 0xc7, 0x95, 0x74, 0x8c, 0x1b, 0x04, 0x86, 0x92, 0x19, 0xb6, 0xde, 0xfa, 0x31}
	testSpanID  = tdata.SpanID{0x2c, 0xf3, 0xc5, 0xdc, 0x13, 0xe2, 0xee, 0xf5}
)

// Resource returns the resource attached to every generated batch.
func Resource() tdata.Resource {
	return tdata.NewResource(
		tdata.StaticString("service.name", "test-service"),
	)
}

// Scope returns a scope with a version and one attribute.
func Scope() tdata.InstrumentationScope {
	return tdata.InstrumentationScope{
		Name:       "stdout-example",
		Version:    "v1",
		Attributes: tdata.Attributes{tdata.StaticString("scope_key", "scope_value")},
	}
}

// GenerateLogs returns a log batch with count records.
func GenerateLogs(count int) tdata.Logs {
	ld := tdata.Logs{Resource: Resource()}
	for i := 0; i < count; i++ {
		ld.Records = append(ld.Records, tdata.LogRecord{
			EventName:         fmt.Sprintf("event-%d", i),
			Target:            "test-target",
			ObservedTimestamp: baseTimestamp.Add(time.Duration(i) * time.Millisecond),
			SeverityText:      "ERROR",
			SeverityNumber:    tdata.SeverityNumberError,
			Attributes: tdata.Attributes{
				tdata.Int("event_id", int64(20+i)),
				tdata.String("user_name", "test-user"),
			},
		})
	}
	return ld
}

// GenerateSpans returns a span batch with count root spans, each carrying
// one event.
func GenerateSpans(count int) tdata.Spans {
	td := tdata.Spans{Resource: Resource()}
	for i := 0; i < count; i++ {
		td.Spans = append(td.Spans, tdata.Span{
			Scope:      Scope(),
			Name:       fmt.Sprintf("span-%d", i),
			TraceID:    testTraceID,
			SpanID:     testSpanID,
			TraceFlags: 1,
			Kind:       tdata.SpanKindInternal,
			StartTime:  baseTimestamp,
			EndTime:    baseTimestamp.Add(42 * time.Microsecond),
			Attributes: tdata.Attributes{tdata.StaticString("my-attribute", "my-value")},
			Events: []tdata.SpanEvent{{
				Name:       "example-event-name",
				Timestamp:  baseTimestamp.Add(8 * time.Microsecond),
				Attributes: tdata.Attributes{tdata.StaticString("event_attribute1", "event_value1")},
			}},
		})
	}
	return td
}

// GenerateMetrics returns a metric batch holding one monotonic sum and one
// histogram.
func GenerateMetrics() tdata.Metrics {
	return tdata.Metrics{
		Resource: Resource(),
		Scope:    tdata.InstrumentationScope{Name: "test-meter"},
		Metrics: []tdata.Metric{
			{
				Name: "fruit-counter",
				Data: tdata.Sum{
					Monotonic:   true,
					Temporality: tdata.TemporalityCumulative,
					DataPoints: []tdata.SumDataPoint{
						{
							Attributes: tdata.Attributes{tdata.String("name", "apple"), tdata.String("color", "green")},
							StartTime:  baseTimestamp,
							EndTime:    baseTimestamp.Add(time.Millisecond),
							Value:      2,
						},
						{
							Attributes: tdata.Attributes{tdata.String("color", "yellow"), tdata.String("name", "banana")},
							StartTime:  baseTimestamp,
							EndTime:    baseTimestamp.Add(time.Millisecond),
							Value:      12,
						},
						{
							Attributes: tdata.Attributes{tdata.String("name", "apple"), tdata.String("color", "red")},
							StartTime:  baseTimestamp,
							EndTime:    baseTimestamp.Add(time.Millisecond),
							Value:      2,
						},
					},
				},
			},
			{
				Name: "fruit-histogram",
				Data: tdata.Histogram{
					Temporality: tdata.TemporalityCumulative,
					DataPoints: []tdata.HistogramDataPoint{{
						Attributes:   tdata.Attributes{tdata.String("name", "banana")},
						StartTime:    baseTimestamp,
						EndTime:      baseTimestamp.Add(time.Millisecond),
						Count:        2,
						Sum:          12,
						Min:          1,
						Max:          11,
						Bounds:       []float64{0, 5, 10, 25},
						BucketCounts: []uint64{0, 1, 0, 1, 0},
					}},
				},
			},
		},
	}
}
