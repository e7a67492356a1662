// Package dataset reads the matches and deliveries CSV files into domain
// records.
//
// Parsing is positional and tolerant: the header row is skipped, a row with
// fewer columns than the full layout still produces a record whose missing
// trailing fields are absent, and numeric run columns are kept as text until
// an aggregation needs them. A missing file, an unreadable file and malformed
// CSV are reported as *errors.AppError values of type NOT_FOUND, STORAGE and
// PARSING.
package dataset
