// Package report turns an aggregation summary into the labelled console
// report and the equivalent tables used for file export.
package report
