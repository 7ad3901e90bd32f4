// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package otlptext // import "go.opentelemetry.io/stdouttext/internal/otlptext"

import (
	"io"
	"math"
	"strconv"

	"go.opentelemetry.io/stdouttext/tdata"
)

// WriteMetrics renders a metric batch to w: the "Metrics" header, resource
// block and the batch scope first, then one write per metric.
func WriteMetrics(w io.Writer, md tdata.Metrics) error {
	var buf dataBuffer
	buf.logEntry("Metrics")
	buf.logResource(md.Resource)
	buf.logScopeBlock("Instrumentation Scope #0", md.Scope, false)
	if _, err := w.Write(buf.bytes()); err != nil {
		return err
	}
	for i := range md.Metrics {
		buf.reset()
		metricBlock(&buf, i, md.Metrics[i])
		if _, err := w.Write(buf.bytes()); err != nil {
			return err
		}
	}
	return nil
}

func metricBlock(buf *dataBuffer, index int, m tdata.Metric) {
	buf.logEntry("Metric #%d", index)
	buf.logEntry("    %-13s: %s", "Name", m.Name)
	buf.logEntry("    %-13s: %s", "Description", m.Description)
	buf.logEntry("    %-13s: %s", "Unit", m.Unit)
	switch data := m.Data.(type) {
	case tdata.Sum:
		buf.logEntry("    %-13s: Sum", "Type")
		buf.logEntry("    Sum DataPoints")
		buf.logEntry("    %-13s: %t", "Monotonic", data.Monotonic)
		buf.logEntry("    %-13s: %s", "Temporality", data.Temporality)
		// All data points of one export share the same window.
		var first tdata.SumDataPoint
		if len(data.DataPoints) > 0 {
			first = data.DataPoints[0]
		}
		buf.logEntry("    %-13s: %s", "StartTime", formatTime(first.StartTime))
		buf.logEntry("    %-13s: %s", "EndTime", formatTime(first.EndTime))
		for k, dp := range data.DataPoints {
			buf.logEntry("    DataPoint #%d", k)
			buf.logEntry("      %-13s: %s", "Value", formatSumValue(dp.Value))
			buf.logEntry("      %-13s:", "Attributes")
			buf.logAttributesPlain("         ", dp.Attributes)
		}
	case tdata.Histogram:
		buf.logEntry("    %-13s: Histogram", "Type")
		buf.logEntry("    %-13s: %s", "Temporality", data.Temporality)
		var first tdata.HistogramDataPoint
		if len(data.DataPoints) > 0 {
			first = data.DataPoints[0]
		}
		buf.logEntry("    %-13s: %s", "StartTime", formatTime(first.StartTime))
		buf.logEntry("    %-13s: %s", "EndTime", formatTime(first.EndTime))
		buf.logEntry("    Histogram DataPoints")
		for k, dp := range data.DataPoints {
			buf.logEntry("    DataPoint #%d", k)
			buf.logEntry("      %-13s: %d", "Count", dp.Count)
			buf.logEntry("      %-13s: %s", "Sum", formatDouble(dp.Sum))
			buf.logEntry("      %-13s: %s", "Min", formatDouble(dp.Min))
			buf.logEntry("      %-13s: %s", "Max", formatDouble(dp.Max))
			buf.logEntry("      %-13s:", "Attributes")
			buf.logAttributesPlain("         ", dp.Attributes)
			buf.logEntry("      Buckets")
			logBuckets(buf, dp)
		}
	default:
		buf.logEntry("    %-13s: Unknown(%T)", "Type", m.Data)
	}
}

// logBuckets prints every bucket as "<lo> to <hi> : <count>". The first
// lower bound is the -inf rail and the last upper bound the +inf rail.
// Index guards keep a malformed point from faulting the render.
func logBuckets(buf *dataBuffer, dp tdata.HistogramDataPoint) {
	for j, count := range dp.BucketCounts {
		lo := "-inf"
		if j > 0 && j-1 < len(dp.Bounds) {
			lo = formatBound(dp.Bounds[j-1])
		}
		hi := "+inf"
		if j < len(dp.Bounds) {
			hi = formatBound(dp.Bounds[j])
		}
		buf.logEntry("         %s to %s : %d", lo, hi, count)
	}
}

// formatSumValue prints integral counter readouts as plain integers and
// fractional ones in plain decimal. Integral values beyond the int64
// range take the float path: int64(f) would saturate there.
func formatSumValue(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && f >= math.MinInt64 && f < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
