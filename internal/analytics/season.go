package analytics

import "iplstats/pkg/contracts/domain"

// SeasonMatchIDs returns the ids of the matches played in season. Seasons
// compare as exact strings and a match without a season is never included.
func SeasonMatchIDs(matches []domain.Match, season string) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, m := range matches {
		if m.InSeason(season) {
			ids[m.ID] = struct{}{}
		}
	}
	return ids
}

// inScope returns the deliveries whose match is in ids
func inScope(deliveries []domain.Delivery, ids map[string]struct{}) []domain.Delivery {
	var scoped []domain.Delivery
	for _, d := range deliveries {
		if _, ok := ids[d.MatchID]; ok {
			scoped = append(scoped, d)
		}
	}
	return scoped
}
