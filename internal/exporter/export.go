package exporter

import (
	"context"
	"log/slog"
	"path/filepath"

	"iplstats/internal/config"
	"iplstats/internal/errors"
	"iplstats/internal/infrastructure"
	"iplstats/internal/report"
)

// WorkbookName is the file written by the xlsx format
const WorkbookName = "iplstats.xlsx"

// Exporter writes report sections in every configured format
type Exporter struct {
	dir     string
	formats []string
	bom     bool
	logger  *slog.Logger
	csv     *CSVWriter
	xlsx    *XLSXWriter
}

// New creates an Exporter for cfg
func New(cfg config.ExportConfig, logger *slog.Logger) *Exporter {
	logger = infrastructure.WithComponent(logger, "exporter")
	return &Exporter{
		dir:     cfg.Dir,
		formats: cfg.Formats,
		bom:     cfg.BOM,
		logger:  logger,
		csv:     NewCSVWriter(cfg.Dir, logger),
		xlsx:    NewXLSXWriter(logger),
	}
}

// Export writes sections and returns the files created
func (e *Exporter) Export(ctx context.Context, sections []report.Section) ([]string, error) {
	var files []string

	for _, format := range e.formats {
		switch format {
		case config.ExportFormatCSV:
			for _, s := range sections {
				path, err := e.csv.WriteCSV(s.Name+".csv", WriteOptions{
					Headers:   s.Header,
					Records:   s.Records,
					BOMPrefix: e.bom,
				})
				if err != nil {
					return files, errors.NewStorageError("failed to export CSV", err).
						WithContext("section", s.Name)
				}
				files = append(files, path)
			}

		case config.ExportFormatXLSX:
			sheets := make([]Sheet, 0, len(sections))
			for _, s := range sections {
				sheets = append(sheets, Sheet{Name: s.Name, Header: s.Header, Records: s.Records})
			}
			path := filepath.Join(e.dir, WorkbookName)
			if err := e.xlsx.WriteWorkbook(path, sheets); err != nil {
				return files, errors.NewStorageError("failed to export workbook", err).
					WithContext("path", path)
			}
			files = append(files, path)

		default:
			return files, errors.NewValidationError("unknown export format "+format, nil)
		}
	}

	e.logger.InfoContext(ctx, "Exported report",
		slog.String("dir", e.dir),
		slog.Int("files", len(files)))
	return files, nil
}
