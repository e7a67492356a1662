package analytics

import "iplstats/pkg/contracts/domain"

// RepeatDismissals counts the in-season caught or run out dismissals of each
// player and keeps those dismissed more than threshold times
func RepeatDismissals(matches []domain.Match, deliveries []domain.Delivery, season string, threshold int) []Count {
	ids := SeasonMatchIDs(matches, season)

	counter := make(map[string]int)
	for _, d := range inScope(deliveries, ids) {
		if d.IsCaughtOrRunOut() {
			counter[d.PlayerDismissed.OrZero()]++
		}
	}

	for player, n := range counter {
		if n <= threshold {
			delete(counter, player)
		}
	}
	return sortedCounts(counter)
}
