package dataset

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"iplstats/internal/errors"
	"iplstats/internal/infrastructure"
	"iplstats/pkg/contracts/domain"
)

const (
	datasetMatches    = "matches"
	datasetDeliveries = "deliveries"
)

// Dataset bundles both input collections for one run
type Dataset struct {
	Matches    []domain.Match
	Deliveries []domain.Delivery
}

// Loader reads the input files
type Loader struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *infrastructure.RunMetrics
}

// NewLoader creates a Loader. A nil tracer or metrics disables that concern.
func NewLoader(logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.RunMetrics) *Loader {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Loader{
		logger:  infrastructure.WithComponent(logger, "dataset"),
		tracer:  tracer,
		metrics: metrics,
	}
}

// Load reads the matches file and then the deliveries file
func (l *Loader) Load(ctx context.Context, matchesPath, deliveriesPath string) (*Dataset, error) {
	matches, err := l.LoadMatches(ctx, matchesPath)
	if err != nil {
		return nil, err
	}

	deliveries, err := l.LoadDeliveries(ctx, deliveriesPath)
	if err != nil {
		return nil, err
	}

	return &Dataset{Matches: matches, Deliveries: deliveries}, nil
}

// LoadMatches reads the matches file at path
func (l *Loader) LoadMatches(ctx context.Context, path string) ([]domain.Match, error) {
	ctx, span := l.tracer.Start(ctx, "load."+datasetMatches,
		trace.WithAttributes(attribute.String("file.path", path)))
	defer span.End()

	file, err := openInput(path)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}
	defer file.Close()

	matches, short, err := readMatches(file)
	if err != nil {
		err = withPath(err, path)
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	l.loaded(ctx, datasetMatches, path, len(matches), short)
	span.SetAttributes(attribute.Int("records", len(matches)))
	return matches, nil
}

// LoadDeliveries reads the deliveries file at path
func (l *Loader) LoadDeliveries(ctx context.Context, path string) ([]domain.Delivery, error) {
	ctx, span := l.tracer.Start(ctx, "load."+datasetDeliveries,
		trace.WithAttributes(attribute.String("file.path", path)))
	defer span.End()

	file, err := openInput(path)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}
	defer file.Close()

	deliveries, short, err := readDeliveries(file)
	if err != nil {
		err = withPath(err, path)
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	l.loaded(ctx, datasetDeliveries, path, len(deliveries), short)
	span.SetAttributes(attribute.Int("records", len(deliveries)))
	return deliveries, nil
}

func (l *Loader) loaded(ctx context.Context, dataset, path string, records, short int) {
	l.metrics.RecordLoaded(ctx, dataset, records)
	l.metrics.RecordShortRows(ctx, dataset, short)

	if short > 0 {
		l.logger.DebugContext(ctx, "Rows shorter than the full layout",
			slog.String("dataset", dataset),
			slog.Int("rows", short))
	}

	l.logger.InfoContext(ctx, "Loaded dataset",
		slog.String("dataset", dataset),
		slog.String("path", path),
		slog.Int("records", records))
}

func openInput(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err == nil {
		return file, nil
	}

	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewNotFoundError("input file", err).WithContext("path", path)
	}
	return nil, errors.NewStorageError("failed to open input file", err).WithContext("path", path)
}

func withPath(err error, path string) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.WithContext("path", path)
	}
	return err
}
