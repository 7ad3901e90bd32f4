// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package stdouttext

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go.opentelemetry.io/stdouttext/internal/testdata"
	"go.opentelemetry.io/stdouttext/tdata"
)

func TestExporterNoErrors(t *testing.T) {
	var buf bytes.Buffer
	exp, err := New(NewDefaultConfig(), WithWriter(&buf), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, exp.ExportLogs(ctx, testdata.GenerateLogs(2)))
	assert.NoError(t, exp.ExportSpans(ctx, testdata.GenerateSpans(1)))
	assert.NoError(t, exp.ExportMetrics(ctx, testdata.GenerateMetrics()))
	assert.NoError(t, exp.Shutdown(ctx))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Logs\nResource\n"))
	assert.Contains(t, out, "Log #0")
	assert.Contains(t, out, "Log #1")
	assert.Contains(t, out, "Spans\nResource\n")
	assert.Contains(t, out, "Span #0")
	assert.Contains(t, out, "Metrics\nResource\n")
	assert.Contains(t, out, "Metric #0")
}

func TestExporterShutdown(t *testing.T) {
	exp, err := New(NewDefaultConfig(), WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, exp.Shutdown(ctx))
	// Shutdown is idempotent.
	require.NoError(t, exp.Shutdown(ctx))

	assert.ErrorIs(t, exp.ExportLogs(ctx, tdata.Logs{}), ErrShutdown)
	assert.ErrorIs(t, exp.ExportSpans(ctx, tdata.Spans{}), ErrShutdown)
	assert.ErrorIs(t, exp.ExportMetrics(ctx, tdata.Metrics{}), ErrShutdown)
}

// failingWriter fails every Write call starting with call number failAt
// (1-based).
type failingWriter struct {
	writes int
	failAt int
	buf    bytes.Buffer
}

var errSink = errors.New("sink is broken")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes >= w.failAt {
		return 0, errSink
	}
	return w.buf.Write(p)
}

func TestExporterPartialWrite(t *testing.T) {
	// Write 1 carries the header and resource block, writes 2..n one
	// record each. Failing on write 4 leaves exactly two complete records.
	w := &failingWriter{failAt: 4}
	exp, err := New(NewDefaultConfig(), WithWriter(w))
	require.NoError(t, err)

	err = exp.ExportLogs(context.Background(), testdata.GenerateLogs(5))
	assert.ErrorIs(t, err, errSink)

	out := w.buf.String()
	assert.True(t, strings.HasPrefix(out, "Logs\nResource\n"))
	assert.Equal(t, 2, strings.Count(out, "Log #"))
	assert.Contains(t, out, "Log #0")
	assert.Contains(t, out, "Log #1")
	assert.NotContains(t, out, "Log #2")
}

func TestExporterHeaderWriteFails(t *testing.T) {
	w := &failingWriter{failAt: 1}
	exp, err := New(NewDefaultConfig(), WithWriter(w))
	require.NoError(t, err)

	assert.ErrorIs(t, exp.ExportSpans(context.Background(), testdata.GenerateSpans(1)), errSink)
	assert.Empty(t, w.buf.String())
}

// blockingWriter blocks every Write until release is closed.
type blockingWriter struct {
	release chan struct{}
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}

func TestForceFlushTimeout(t *testing.T) {
	w := &blockingWriter{release: make(chan struct{})}
	cfg := NewDefaultConfig()
	cfg.BufferSize = 1 << 20
	exp, err := New(cfg, WithWriter(w))
	require.NoError(t, err)

	// The batch lands in the buffer without touching the sink.
	require.NoError(t, exp.ExportLogs(context.Background(), testdata.GenerateLogs(1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, exp.ForceFlush(ctx), ErrTimeout)

	// The abandoned flush finishes once the sink unblocks.
	close(w.release)
	assert.NoError(t, exp.ForceFlush(context.Background()))
}

func TestForceFlushBuffered(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultConfig()
	cfg.BufferSize = 1 << 20
	exp, err := New(cfg, WithWriter(&buf))
	require.NoError(t, err)

	require.NoError(t, exp.ExportLogs(context.Background(), testdata.GenerateLogs(1)))
	assert.Empty(t, buf.String())

	require.NoError(t, exp.ForceFlush(context.Background()))
	assert.Contains(t, buf.String(), "Log #0")
}

func TestExporterFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.txt")
	cfg := NewDefaultConfig()
	cfg.OutputPath = path
	exp, err := New(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, exp.ExportLogs(ctx, testdata.GenerateLogs(1)))
	require.NoError(t, exp.Shutdown(ctx))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Log #0")
}

func TestExporterDeterministic(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		exp, err := New(NewDefaultConfig(), WithWriter(&buf))
		require.NoError(t, err)
		ctx := context.Background()
		require.NoError(t, exp.ExportLogs(ctx, testdata.GenerateLogs(3)))
		require.NoError(t, exp.ExportSpans(ctx, testdata.GenerateSpans(2)))
		require.NoError(t, exp.ExportMetrics(ctx, testdata.GenerateMetrics()))
		return buf.String()
	}
	assert.Equal(t, render(), render())
}
