// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tdata // import "go.opentelemetry.io/stdouttext/tdata"

import (
	"fmt"
	"time"
)

// Temporality describes the aggregation window of reported metric values.
type Temporality int32

const (
	TemporalityCumulative Temporality = iota
	TemporalityDelta
)

// String returns the temporality name, e.g. "Cumulative".
func (t Temporality) String() string {
	switch t {
	case TemporalityCumulative:
		return "Cumulative"
	case TemporalityDelta:
		return "Delta"
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// MetricData is the variant payload of a Metric. Implemented by Sum and
// Histogram. The renderer treats unknown implementations as a
// non-fatal placeholder.
type MetricData interface {
	metricData()
}

// SumDataPoint is one attribute-keyed observation window of a Sum.
type SumDataPoint struct {
	Attributes Attributes
	StartTime  time.Time
	EndTime    time.Time
	Value      float64
}

// Sum is a sum aggregation, e.g. a counter readout.
type Sum struct {
	Monotonic   bool
	Temporality Temporality
	DataPoints  []SumDataPoint
}

func (Sum) metricData() {}

// HistogramDataPoint is one attribute-keyed observation window of a
// Histogram. BucketCounts has one more entry than Bounds: the first bucket
// is (-inf, Bounds[0]] and the last is (Bounds[len-1], +inf). Min and Max
// are meaningful only when Count > 0.
type HistogramDataPoint struct {
	Attributes   Attributes
	StartTime    time.Time
	EndTime      time.Time
	Count        uint64
	Sum          float64
	Min          float64
	Max          float64
	Bounds       []float64
	BucketCounts []uint64
}

// Histogram is a histogram aggregation.
type Histogram struct {
	Temporality Temporality
	DataPoints  []HistogramDataPoint
}

func (Histogram) metricData() {}

// Metric is one finalized metric readout.
type Metric struct {
	Name        string
	Description string
	Unit        string
	Data        MetricData
}

// Metrics is a finalized metric batch. All metrics in one batch come from
// the same instrumentation scope.
type Metrics struct {
	Resource Resource
	Scope    InstrumentationScope
	Metrics  []Metric
}
