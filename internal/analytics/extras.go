package analytics

import (
	"iplstats/internal/errors"
	"iplstats/pkg/contracts/domain"
)

// ExtraRunsConceded sums the extra runs conceded by each bowling team in
// season. A delivery with missing or non-integer extra runs fails the whole
// aggregation.
func ExtraRunsConceded(matches []domain.Match, deliveries []domain.Delivery, season string) ([]Count, error) {
	ids := SeasonMatchIDs(matches, season)

	counter := make(map[string]int)
	for _, d := range inScope(deliveries, ids) {
		extras, err := d.ExtraRunsValue()
		if err != nil {
			return nil, errors.NewParsingError("invalid extra runs", err).
				WithContext("season", season)
		}
		counter[d.BowlingTeam.OrZero()] += extras
	}

	return sortedCounts(counter), nil
}
