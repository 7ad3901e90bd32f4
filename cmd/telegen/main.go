// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Command telegen emits a small, fixed set of telemetry - one error log, one
// span with an event, a counter and a histogram readout - through the stdout
// text exporter. It exists to exercise and demonstrate the output format.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"go.opentelemetry.io/stdouttext"
	"go.opentelemetry.io/stdouttext/tdata"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "telegen",
		Short:         "Emit example telemetry through the stdout text exporter",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	flags := cmd.Flags()
	flags.String("config", "", "path to a YAML config file for the exporter")
	flags.String("output", "", "override the configured output path (stdout, stderr or a file)")
	flags.Int("buffer-size", -1, "override the configured sink buffer size in bytes")
	flags.String("service", "telegen", "service.name reported in the resource")
	flags.Bool("verbose", false, "log per-batch summaries to stderr")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose, _ := flags.GetBool("verbose"); verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	exp, err := stdouttext.New(cfg, stdouttext.WithLogger(logger))
	if err != nil {
		return err
	}

	service, _ := flags.GetString("service")
	res := newResource(service)
	now := time.Now()

	ctx := context.Background()
	if err := exp.ExportLogs(ctx, exampleLogs(res, now)); err != nil {
		return err
	}
	if err := exp.ExportSpans(ctx, exampleSpans(res, now)); err != nil {
		return err
	}
	if err := exp.ExportMetrics(ctx, exampleMetrics(res, now)); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return exp.Shutdown(ctx)
}

func loadConfig(flags *pflag.FlagSet) (stdouttext.Config, error) {
	cfg := stdouttext.NewDefaultConfig()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output_path": cfg.OutputPath,
		"buffer_size": cfg.BufferSize,
	}, "."), nil); err != nil {
		return cfg, err
	}

	if path, _ := flags.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(posflag.ProviderWithValue(flags, ".", k, flagOverride), nil); err != nil {
		return cfg, fmt.Errorf("load command line arguments: %w", err)
	}

	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &cfg,
		},
	})
	if err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// flagOverride maps the override flags onto config keys and blanks
// everything else so unrelated flags never reach the conf map. Unset
// defaults ("" and -1) are blanked too: only an explicit flag may
// shadow a file value.
func flagOverride(key, value string) (string, interface{}) {
	switch key {
	case "output":
		if value == "" {
			return "", nil
		}
		return "output_path", value
	case "buffer-size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return "", nil
		}
		return "buffer_size", n
	}
	return "", nil
}

func newResource(service string) tdata.Resource {
	return tdata.NewResource(
		tdata.StaticString("telemetry.sdk.name", "opentelemetry"),
		tdata.StaticString("telemetry.sdk.language", "go"),
		tdata.StaticString("telemetry.sdk.version", "0.30.0"),
		tdata.String("service.name", service),
	)
}

var (
	exampleTraceID = tdata.TraceID{0xaa, 0x54, 0x7e, 0xc7, 0x95, 0x74, 0x8c, 0x1b, 0x04, 0x86, 0x92, 0x19, 0xb6, 0xde, 0xfa, 0x31}
	exampleSpanID  = tdata.SpanID{0x2c, 0xf3, 0xc5, 0xdc, 0x13, 0xe2, 0xee, 0xf5}
)

func exampleLogs(res tdata.Resource, now time.Time) tdata.Logs {
	return tdata.Logs{
		Resource: res,
		Records: []tdata.LogRecord{{
			EventName:         "telegen-log",
			Target:            "telegen",
			ObservedTimestamp: now,
			SeverityText:      "ERROR",
			SeverityNumber:    tdata.SeverityNumberError,
			Attributes: tdata.Attributes{
				tdata.Int("event_id", 20),
				tdata.String("user_name", "otel"),
				tdata.String("user_email", "otel@opentelemetry.io"),
			},
		}},
	}
}

func exampleSpans(res tdata.Resource, now time.Time) tdata.Spans {
	return tdata.Spans{
		Resource: res,
		Spans: []tdata.Span{{
			Scope: tdata.InstrumentationScope{
				Name:       "telegen",
				Version:    "v1",
				Attributes: tdata.Attributes{tdata.StaticString("scope_key", "scope_value")},
			},
			Name:       "example-span",
			TraceID:    exampleTraceID,
			SpanID:     exampleSpanID,
			TraceFlags: 1,
			Kind:       tdata.SpanKindInternal,
			StartTime:  now,
			EndTime:    now.Add(42 * time.Microsecond),
			Attributes: tdata.Attributes{tdata.StaticString("my-attribute", "my-value")},
			Events: []tdata.SpanEvent{{
				Name:       "example-event-name",
				Timestamp:  now.Add(8 * time.Microsecond),
				Attributes: tdata.Attributes{tdata.StaticString("event_attribute1", "event_value1")},
			}},
		}},
	}
}

func exampleMetrics(res tdata.Resource, now time.Time) tdata.Metrics {
	window := func(attrs ...tdata.KeyValue) (tdata.Attributes, time.Time, time.Time) {
		return attrs, now, now.Add(time.Millisecond)
	}

	appleGreen, start, end := window(tdata.String("name", "apple"), tdata.String("color", "green"))
	bananaYellow, _, _ := window(tdata.String("color", "yellow"), tdata.String("name", "banana"))
	appleRed, _, _ := window(tdata.String("name", "apple"), tdata.String("color", "red"))

	return tdata.Metrics{
		Resource: res,
		Scope:    tdata.InstrumentationScope{Name: "telegen-meter"},
		Metrics: []tdata.Metric{
			{
				Name: "telegen-counter",
				Data: tdata.Sum{
					Monotonic:   true,
					Temporality: tdata.TemporalityCumulative,
					DataPoints: []tdata.SumDataPoint{
						{Attributes: appleGreen, StartTime: start, EndTime: end, Value: 2},
						{Attributes: bananaYellow, StartTime: start, EndTime: end, Value: 12},
						{Attributes: appleRed, StartTime: start, EndTime: end, Value: 2},
					},
				},
			},
			{
				Name: "telegen-histogram",
				Data: tdata.Histogram{
					Temporality: tdata.TemporalityCumulative,
					DataPoints: []tdata.HistogramDataPoint{{
						Attributes:   tdata.Attributes{tdata.String("name", "banana"), tdata.String("color", "yellow")},
						StartTime:    start,
						EndTime:      end,
						Count:        2,
						Sum:          12,
						Min:          1,
						Max:          11,
						Bounds:       []float64{0, 5, 10, 25, 50, 75, 100, 250, 500, 750},
						BucketCounts: []uint64{0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0},
					}},
				},
			},
		},
	}
}
