package analytics

import (
	"cmp"
	"math"
	"slices"

	"iplstats/internal/errors"
	"iplstats/pkg/contracts/domain"
)

// TopEconomicalBowlers returns the bowler, or the tied bowlers, with the
// lowest economy in season. Every in-season delivery counts as a ball.
func TopEconomicalBowlers(matches []domain.Match, deliveries []domain.Delivery, season string) ([]BowlerEconomy, error) {
	ids := SeasonMatchIDs(matches, season)

	runs := make(map[string]int)
	balls := make(map[string]int)
	for _, d := range inScope(deliveries, ids) {
		total, err := d.TotalRunsValue()
		if err != nil {
			return nil, errors.NewParsingError("invalid total runs", err).
				WithContext("season", season)
		}
		bowler := d.Bowler.OrZero()
		runs[bowler] += total
		balls[bowler]++
	}

	ranked := make([]BowlerEconomy, 0, len(balls))
	for bowler, n := range balls {
		ranked = append(ranked, BowlerEconomy{
			Bowler:  bowler,
			Runs:    runs[bowler],
			Balls:   n,
			Economy: economy(runs[bowler], n),
		})
	}
	slices.SortFunc(ranked, compareEconomy)

	return lowest(ranked), nil
}

// economy divides by completed overs without guarding zero, which yields
// +Inf, or NaN when no runs were conceded either
func economy(runs, balls int) float32 {
	overs := float32(balls / 6)
	return float32(runs) / overs
}

// compareEconomy orders finite economies ascending, then +Inf, then NaN,
// then by bowler name
func compareEconomy(a, b BowlerEconomy) int {
	an, bn := isNaN(a.Economy), isNaN(b.Economy)
	switch {
	case an && !bn:
		return 1
	case !an && bn:
		return -1
	case !an && !bn:
		if c := cmp.Compare(a.Economy, b.Economy); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Bowler, b.Bowler)
}

// lowest returns the longest prefix of ranked whose economy equals the first
func lowest(ranked []BowlerEconomy) []BowlerEconomy {
	if len(ranked) == 0 {
		return nil
	}

	end := 1
	for end < len(ranked) && ranked[end].Economy == ranked[0].Economy {
		end++
	}
	return ranked[:end:end]
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}
