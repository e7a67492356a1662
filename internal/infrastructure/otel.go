package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"iplstats/internal/config"
	"iplstats/pkg/contracts"
)

const (
	ServiceName = "iplstats"
	MeterName   = "iplstats"
)

// OTelProviders holds the OpenTelemetry providers for one run
type OTelProviders struct {
	// TracerProvider is nil when tracing is disabled
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Metrics        *RunMetrics
	// Registry receives every otel metric through the prometheus exporter
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// InitializeOTel sets up tracing and metrics for a run. Spans are written
// to spanOut when tracing is enabled; metrics are always collected into a
// private prometheus registry.
func InitializeOTel(cfg config.TelemetryConfig, spanOut io.Writer, logger *slog.Logger) (*OTelProviders, error) {
	if logger == nil {
		logger = slog.Default()
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(contracts.Version),
	)

	providers := &OTelProviders{
		Tracer: noop.NewTracerProvider().Tracer(MeterName),
		Logger: logger,
	}

	if cfg.Tracing {
		if spanOut == nil {
			spanOut = os.Stderr
		}
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(spanOut),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		providers.TracerProvider = tp
		providers.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(contracts.Version))
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	providers.MeterProvider = mp
	providers.Registry = registry
	providers.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(contracts.Version))

	metrics, err := NewRunMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create run metrics: %w", err)
	}
	providers.Metrics = metrics

	logger.Debug("OpenTelemetry initialized",
		slog.Bool("tracing_enabled", cfg.Tracing),
		slog.String("metrics_file", cfg.MetricsFile))

	return providers, nil
}

// WriteMetrics writes the collected metrics in the prometheus text format,
// for a node exporter textfile collector
func (p *OTelProviders) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, p.Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Shutdown flushes and stops the providers
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	var errs []error

	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("opentelemetry shutdown errors: %v", errs)
	}

	return nil
}

// RunMetrics holds the instruments recorded while producing a report.
// A nil *RunMetrics records nothing.
type RunMetrics struct {
	RecordsLoaded       metric.Int64Counter
	RowsShort           metric.Int64Counter
	AggregationDuration metric.Float64Histogram
	ReportRows          metric.Int64Counter
}

// NewRunMetrics creates the run instruments on meter
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	recordsLoaded, err := meter.Int64Counter(
		"records_loaded",
		metric.WithDescription("Records read from an input dataset"),
	)
	if err != nil {
		return nil, err
	}

	rowsShort, err := meter.Int64Counter(
		"rows_short",
		metric.WithDescription("Rows with fewer columns than the full layout"),
	)
	if err != nil {
		return nil, err
	}

	aggregationDuration, err := meter.Float64Histogram(
		"aggregation_duration",
		metric.WithDescription("Time spent computing one aggregation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	reportRows, err := meter.Int64Counter(
		"report_rows",
		metric.WithDescription("Rows emitted per report section"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		RecordsLoaded:       recordsLoaded,
		RowsShort:           rowsShort,
		AggregationDuration: aggregationDuration,
		ReportRows:          reportRows,
	}, nil
}

// RecordLoaded adds n loaded records for dataset
func (m *RunMetrics) RecordLoaded(ctx context.Context, dataset string, n int) {
	if m == nil {
		return
	}
	m.RecordsLoaded.Add(ctx, int64(n), metric.WithAttributes(attribute.String("dataset", dataset)))
}

// RecordShortRows adds n short rows for dataset
func (m *RunMetrics) RecordShortRows(ctx context.Context, dataset string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.RowsShort.Add(ctx, int64(n), metric.WithAttributes(attribute.String("dataset", dataset)))
}

// RecordAggregation records how long an aggregation took
func (m *RunMetrics) RecordAggregation(ctx context.Context, name string, d time.Duration) {
	if m == nil {
		return
	}
	m.AggregationDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("aggregation", name)))
}

// RecordReportRows adds n emitted rows for a report section
func (m *RunMetrics) RecordReportRows(ctx context.Context, section string, n int) {
	if m == nil {
		return
	}
	m.ReportRows.Add(ctx, int64(n), metric.WithAttributes(attribute.String("section", section)))
}

// RecordError records an error on the current span
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
