// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package stdouttext renders finalized telemetry batches - logs, spans and
// metrics - as deterministic, human-readable text on standard output or any
// other writable sink.
//
// The exporter is a local, synchronous formatter: it performs no batching,
// retries or network transport of its own. Rendering is a pure function of
// the batch, so identical batches produce byte-identical output, and the
// text format is a contract for consumers diffing captured output.
package stdouttext // import "go.opentelemetry.io/stdouttext"
