package dataset

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"strings"

	"iplstats/internal/errors"
	"iplstats/pkg/contracts/domain"
)

// ReadMatches parses matches CSV from r
func ReadMatches(r io.Reader) ([]domain.Match, error) {
	matches, _, err := readMatches(r)
	return matches, err
}

// ReadDeliveries parses deliveries CSV from r
func ReadDeliveries(r io.Reader) ([]domain.Delivery, error) {
	deliveries, _, err := readDeliveries(r)
	return deliveries, err
}

// readMatches returns the matches and the number of short rows
func readMatches(r io.Reader) ([]domain.Match, int, error) {
	var matches []domain.Match
	short, err := readRows(r, matchColumns, func(row []string) {
		matches = append(matches, domain.Match{
			ID:     column(row, matchColID).OrZero(),
			Season: column(row, matchColSeason),
			Winner: column(row, matchColWinner),
			Venue:  venue(row),
		})
	})
	return matches, short, err
}

// readDeliveries returns the deliveries and the number of short rows
func readDeliveries(r io.Reader) ([]domain.Delivery, int, error) {
	var deliveries []domain.Delivery
	short, err := readRows(r, deliveryColumns, func(row []string) {
		deliveries = append(deliveries, domain.Delivery{
			MatchID:         column(row, deliveryColMatchID).OrZero(),
			BattingTeam:     column(row, deliveryColBattingTeam),
			BowlingTeam:     column(row, deliveryColBowlingTeam),
			Over:            column(row, deliveryColOver),
			Batsman:         column(row, deliveryColBatsman),
			NonStriker:      column(row, deliveryColNonStriker),
			Bowler:          column(row, deliveryColBowler),
			BatsmanRuns:     column(row, deliveryColBatsmanRuns),
			ExtraRuns:       column(row, deliveryColExtraRuns),
			TotalRuns:       column(row, deliveryColTotalRuns),
			PlayerDismissed: column(row, deliveryColPlayerDismissed),
			DismissalKind:   column(row, deliveryColDismissalKind),
		})
	})
	return deliveries, short, err
}

// readRows skips the header and hands every data row to fn. It returns how
// many rows had fewer than width columns.
func readRows(r io.Reader, width int, fn func(row []string)) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header := true
	short := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return short, nil
		}
		if err != nil {
			return short, parseError(err)
		}

		if header {
			header = false
			continue
		}

		if len(row) < width {
			short++
		}
		fn(row)
	}
}

// column returns the field at index, absent when the row is too short
func column(row []string, index int) domain.Optional[string] {
	if index >= len(row) {
		return domain.None[string]()
	}
	return domain.Some(row[index])
}

// venue builds "<ground>,<city>". A quoted venue arrives as one field; an
// unquoted one is split across the venue and city columns.
func venue(row []string) domain.Optional[string] {
	v, ok := column(row, matchColVenue).Get()
	if !ok {
		return domain.None[string]()
	}

	parts := strings.Split(v, ",")
	if len(parts) == 1 && len(row) > matchColumns {
		parts = append(parts, row[matchColVenueCity])
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(strings.Trim(p, `"`))
	}
	return domain.Some(strings.Join(parts, ","))
}

func parseError(err error) error {
	var csvErr *csv.ParseError
	if stderrors.As(err, &csvErr) {
		return errors.NewParsingError("malformed CSV", err).WithContext("line", csvErr.Line)
	}
	return errors.NewStorageError("failed to read input", err)
}
