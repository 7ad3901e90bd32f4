// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package stdouttext // import "go.opentelemetry.io/stdouttext"

import "errors"

// ErrShutdown is returned by export calls made after Shutdown.
var ErrShutdown = errors.New("exporter is shut down")

// ErrTimeout is returned when ForceFlush or Shutdown abandons its wait
// because the context expired first. Output already written stays on the
// sink; the caller must not treat the batch as fully exported.
var ErrTimeout = errors.New("timed out waiting for the sink")
