package analytics

import "iplstats/pkg/contracts/domain"

// MatchesPerSeason counts matches by season. A match without a season is
// counted under "" so the counts always sum to len(matches).
func MatchesPerSeason(matches []domain.Match) []Count {
	counter := make(map[string]int)
	for _, m := range matches {
		counter[m.Season.OrZero()]++
	}
	return sortedCounts(counter)
}

// MatchesWonPerTeam counts wins by team over all seasons. No-result matches
// (empty or absent winner) are not reported.
func MatchesWonPerTeam(matches []domain.Match) []Count {
	counter := make(map[string]int)
	for _, m := range matches {
		counter[m.Winner.OrZero()]++
	}
	delete(counter, "")
	return sortedCounts(counter)
}
