package analytics

import (
	"cmp"
	"slices"
)

// Count is one keyed total of an aggregation
type Count struct {
	Key   string
	Value int
}

// BowlerEconomy is a bowler's scoped bowling figures
type BowlerEconomy struct {
	Bowler string
	Runs   int
	Balls  int
	// Economy is runs per completed over; +Inf or NaN below six balls
	Economy float32
}

// Overs returns the completed overs bowled
func (b BowlerEconomy) Overs() int {
	return b.Balls / 6
}

// Seasons selects the scope of the season-bound aggregations
type Seasons struct {
	Extras             string
	Economy            string
	Dismissals         string
	DismissalThreshold int
}

// Summary holds every aggregation of one run
type Summary struct {
	MatchesPerSeason []Count
	MatchesWon       []Count
	ExtraRuns        []Count
	TopEconomy       []BowlerEconomy
	RepeatDismissals []Count
}

// sortedCounts flattens a counter into counts ordered by key
func sortedCounts(counter map[string]int) []Count {
	counts := make([]Count, 0, len(counter))
	for k, v := range counter {
		counts = append(counts, Count{Key: k, Value: v})
	}
	slices.SortFunc(counts, func(a, b Count) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return counts
}
