// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package stdouttext // import "go.opentelemetry.io/stdouttext"

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.opentelemetry.io/stdouttext/internal/otlptext"
	"go.opentelemetry.io/stdouttext/tdata"
)

// Option configures an Exporter beyond its Config.
type Option func(*Exporter)

// WithWriter directs output to w instead of the configured output path.
func WithWriter(w io.Writer) Option {
	return func(e *Exporter) {
		e.w = w
	}
}

// WithLogger sets the logger used for per-batch summary lines. The rendered
// telemetry text itself always goes to the sink, not the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// Exporter renders finalized telemetry batches as human-readable text.
//
// Batches are treated as immutable snapshots: the exporter never mutates,
// reorders or retains records. One export call holds the sink for its whole
// duration, so concurrent flushes cannot interleave their lines.
type Exporter struct {
	mu     sync.Mutex
	w      io.Writer
	buf    *bufio.Writer // non-nil only when buffering is configured
	file   *os.File      // non-nil only when the exporter opened the sink
	logger *zap.Logger
	closed atomic.Bool
}

// New creates an Exporter for the given configuration.
func New(cfg Config, opts ...Option) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Exporter{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.w == nil {
		switch cfg.OutputPath {
		case "stdout":
			e.w = os.Stdout
		case "stderr":
			e.w = os.Stderr
		default:
			f, err := os.Create(cfg.OutputPath)
			if err != nil {
				return nil, fmt.Errorf("open output path: %w", err)
			}
			e.file = f
			e.w = f
		}
	}
	if cfg.BufferSize > 0 {
		e.buf = bufio.NewWriterSize(e.w, cfg.BufferSize)
	}
	return e, nil
}

func (e *Exporter) sink() io.Writer {
	if e.buf != nil {
		return e.buf
	}
	return e.w
}

// ExportLogs renders one log batch. Returns ErrShutdown after Shutdown and
// wraps the sink error if a write fails; a failed write leaves the header,
// the resource block and a prefix of complete records on the sink.
func (e *Exporter) ExportLogs(_ context.Context, ld tdata.Logs) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() {
		return ErrShutdown
	}
	e.logger.Debug("Logs", zap.Int("log records", len(ld.Records)))
	if err := otlptext.WriteLogs(e.sink(), ld); err != nil {
		return fmt.Errorf("write logs batch: %w", err)
	}
	return nil
}

// ExportSpans renders one span batch. Error semantics match ExportLogs.
func (e *Exporter) ExportSpans(_ context.Context, td tdata.Spans) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() {
		return ErrShutdown
	}
	e.logger.Debug("Spans", zap.Int("spans", len(td.Spans)))
	if err := otlptext.WriteSpans(e.sink(), td); err != nil {
		return fmt.Errorf("write spans batch: %w", err)
	}
	return nil
}

// ExportMetrics renders one metric batch. Error semantics match ExportLogs.
func (e *Exporter) ExportMetrics(_ context.Context, md tdata.Metrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() {
		return ErrShutdown
	}
	e.logger.Debug("Metrics", zap.Int("metrics", len(md.Metrics)))
	if err := otlptext.WriteMetrics(e.sink(), md); err != nil {
		return fmt.Errorf("write metrics batch: %w", err)
	}
	return nil
}

// ForceFlush pushes any buffered text to the sink. When ctx expires before
// the sink accepts the flush, ForceFlush unblocks and returns ErrTimeout;
// the flush itself is left to finish on its own.
func (e *Exporter) ForceFlush(ctx context.Context) error {
	return e.await(ctx, e.flush)
}

// Shutdown flushes, syncs and closes the sink and marks the exporter shut
// down. It is idempotent; export calls made afterwards fail fast with
// ErrShutdown.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if !e.closed.CAS(false, true) {
		return nil
	}
	return e.await(ctx, e.closeSink)
}

// await runs fn under the sink lock, abandoning the wait (not the work)
// when ctx expires first.
func (e *Exporter) await(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		done <- fn()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
}

func (e *Exporter) flush() error {
	if e.buf != nil {
		return e.buf.Flush()
	}
	return nil
}

func (e *Exporter) closeSink() error {
	err := e.flush()
	if e.file != nil {
		return multierr.Append(err, e.file.Close())
	}
	if f, ok := e.w.(*os.File); ok {
		if serr := f.Sync(); serr != nil && !knownSyncError(serr) {
			err = multierr.Append(err, serr)
		}
	}
	return err
}
