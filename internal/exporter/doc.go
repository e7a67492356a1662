// Package exporter writes report sections to files.
//
// CSVWriter writes one table per file, optionally prefixed with a UTF-8 BOM
// so spreadsheet tools detect the encoding. XLSXWriter writes every section
// into one workbook, one sheet per section. Exporter picks the writers for
// the configured formats.
//
// Example usage:
//
//	exp := exporter.New(cfg.Export, logger)
//	files, err := exp.Export(ctx, sections)
package exporter
