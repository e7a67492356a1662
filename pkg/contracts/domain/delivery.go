package domain

import (
	"fmt"
	"strconv"
)

// Dismissal kinds counted by the repeat dismissal report
const (
	DismissalCaught = "caught"
	DismissalRunOut = "run out"
)

// Delivery represents one ball-by-ball row of the deliveries dataset.
// Run fields keep the raw source text; they are parsed when a report
// needs them.
type Delivery struct {
	MatchID     string
	BattingTeam Optional[string]
	BowlingTeam Optional[string]
	Over        Optional[string]
	Batsman     Optional[string]
	NonStriker  Optional[string]
	Bowler      Optional[string]

	BatsmanRuns Optional[string]
	ExtraRuns   Optional[string]
	TotalRuns   Optional[string]

	// Only present on rows long enough to carry the dismissal columns
	PlayerDismissed Optional[string]
	DismissalKind   Optional[string]
}

// RunsField identifies a numeric run column of a delivery
type RunsField string

const (
	FieldBatsmanRuns RunsField = "batsman_runs"
	FieldExtraRuns   RunsField = "extra_runs"
	FieldTotalRuns   RunsField = "total_runs"
)

// RunsError reports a run column that could not be read as an integer
type RunsError struct {
	MatchID string
	Field   RunsField
	Raw     string
	Missing bool
	Err     error
}

func (e *RunsError) Error() string {
	if e.Missing {
		return fmt.Sprintf("match %s: %s missing", e.MatchID, e.Field)
	}
	return fmt.Sprintf("match %s: %s %q is not an integer: %v", e.MatchID, e.Field, e.Raw, e.Err)
}

func (e *RunsError) Unwrap() error {
	return e.Err
}

// BatsmanRunsValue parses the batsman runs column
func (d Delivery) BatsmanRunsValue() (int, error) {
	return d.parseRuns(FieldBatsmanRuns, d.BatsmanRuns)
}

// ExtraRunsValue parses the extra runs column
func (d Delivery) ExtraRunsValue() (int, error) {
	return d.parseRuns(FieldExtraRuns, d.ExtraRuns)
}

// TotalRunsValue parses the total runs column
func (d Delivery) TotalRunsValue() (int, error) {
	return d.parseRuns(FieldTotalRuns, d.TotalRuns)
}

// IsCaughtOrRunOut reports whether the delivery carries a caught or run out
// dismissal. Rows without the dismissal columns never match.
func (d Delivery) IsCaughtOrRunOut() bool {
	kind, ok := d.DismissalKind.Get()
	if !ok {
		return false
	}
	return kind == DismissalCaught || kind == DismissalRunOut
}

func (d Delivery) parseRuns(field RunsField, raw Optional[string]) (int, error) {
	text, ok := raw.Get()
	if !ok {
		return 0, &RunsError{MatchID: d.MatchID, Field: field, Missing: true}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &RunsError{MatchID: d.MatchID, Field: field, Raw: text, Err: err}
	}
	return n, nil
}
