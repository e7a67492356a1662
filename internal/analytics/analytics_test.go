package analytics

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplstats/internal/errors"
	"iplstats/pkg/contracts/domain"
)

func match(id, season, winner string) domain.Match {
	return domain.Match{
		ID:     id,
		Season: domain.Some(season),
		Winner: domain.Some(winner),
	}
}

func delivery(matchID, bowlingTeam, bowler string, extras, total int) domain.Delivery {
	return domain.Delivery{
		MatchID:     matchID,
		BowlingTeam: domain.Some(bowlingTeam),
		Bowler:      domain.Some(bowler),
		BatsmanRuns: domain.Some(strconv.Itoa(total - extras)),
		ExtraRuns:   domain.Some(strconv.Itoa(extras)),
		TotalRuns:   domain.Some(strconv.Itoa(total)),
	}
}

func dismissal(matchID, player, kind string) domain.Delivery {
	d := delivery(matchID, "T", "B", 0, 0)
	d.PlayerDismissed = domain.Some(player)
	d.DismissalKind = domain.Some(kind)
	return d
}

// repeat returns n copies of d
func repeat(d domain.Delivery, n int) []domain.Delivery {
	out := make([]domain.Delivery, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestSeasonMatchIDs(t *testing.T) {
	matches := []domain.Match{
		match("1", "2016", "A"),
		match("2", "2017", "B"),
		match("3", "2016", "C"),
		{ID: "4"},
		match("5", "2016 ", "D"),
	}

	ids := SeasonMatchIDs(matches, "2016")
	assert.Equal(t, map[string]struct{}{"1": {}, "3": {}}, ids)
	assert.Empty(t, SeasonMatchIDs(matches, "2020"))
	assert.Empty(t, SeasonMatchIDs(nil, "2016"))
}

func TestMatchesPerSeason(t *testing.T) {
	matches := []domain.Match{
		match("1", "2017", "A"),
		match("2", "2008", "B"),
		match("3", "2017", ""),
		{ID: "4"},
	}

	counts := MatchesPerSeason(matches)
	assert.Equal(t, []Count{{"", 1}, {"2008", 1}, {"2017", 2}}, counts)

	sum := 0
	for _, c := range counts {
		sum += c.Value
	}
	assert.Equal(t, len(matches), sum)

	assert.Empty(t, MatchesPerSeason(nil))
}

func TestMatchesWonPerTeam(t *testing.T) {
	matches := []domain.Match{
		match("1", "2017", "Mumbai Indians"),
		match("2", "2017", ""),
		match("3", "2016", "Mumbai Indians"),
		match("4", "2016", "Chennai Super Kings"),
		{ID: "5", Season: domain.Some("2016")},
	}

	counts := MatchesWonPerTeam(matches)
	assert.Equal(t, []Count{{"Chennai Super Kings", 1}, {"Mumbai Indians", 2}}, counts)
	for _, c := range counts {
		assert.NotEmpty(t, c.Key)
	}
}

func TestExtraRunsConceded(t *testing.T) {
	matches := []domain.Match{
		match("1", "2016", "A"),
		match("2", "2016", "B"),
		match("3", "2015", "A"),
	}
	deliveries := []domain.Delivery{
		delivery("1", "A", "x", 1, 1),
		delivery("1", "B", "y", 4, 5),
		delivery("2", "A", "x", 2, 2),
		delivery("3", "A", "x", 7, 7),
		delivery("99", "A", "x", 9, 9),
	}

	counts, err := ExtraRunsConceded(matches, deliveries, "2016")
	require.NoError(t, err)
	assert.Equal(t, []Count{{"A", 3}, {"B", 4}}, counts)

	total := 0
	for _, c := range counts {
		total += c.Value
	}
	assert.Equal(t, 7, total)

	none, err := ExtraRunsConceded(matches, deliveries, "2020")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExtraRunsConceded_InvalidRuns(t *testing.T) {
	matches := []domain.Match{match("1", "2016", "A"), match("2", "2015", "A")}

	bad := delivery("1", "A", "x", 0, 0)
	bad.ExtraRuns = domain.Some("one")
	missing := delivery("1", "A", "x", 0, 0)
	missing.ExtraRuns = domain.None[string]()
	outOfScope := delivery("2", "A", "x", 0, 0)
	outOfScope.ExtraRuns = domain.Some("bogus")

	tests := []struct {
		name       string
		deliveries []domain.Delivery
		wantErr    bool
	}{
		{"non-integer", []domain.Delivery{bad}, true},
		{"absent", []domain.Delivery{missing}, true},
		{"out of scope is never parsed", []domain.Delivery{outOfScope}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtraRunsConceded(matches, tt.deliveries, "2016")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeParsing))

			var runsErr *domain.RunsError
			assert.ErrorAs(t, err, &runsErr)
		})
	}
}

func TestTopEconomicalBowlers(t *testing.T) {
	matches := []domain.Match{match("1", "2015", "A"), match("2", "2014", "A")}

	var deliveries []domain.Delivery
	// A: 12 balls, 6 runs -> 3.0
	deliveries = append(deliveries, repeat(delivery("1", "T", "A", 0, 0), 6)...)
	deliveries = append(deliveries, repeat(delivery("1", "T", "A", 0, 1), 6)...)
	// B: 6 balls, 12 runs -> 12.0
	deliveries = append(deliveries, repeat(delivery("1", "T", "B", 0, 2), 6)...)
	// C: 5 balls -> no completed over
	deliveries = append(deliveries, repeat(delivery("1", "T", "C", 0, 0), 5)...)
	// D bowled only in another season
	deliveries = append(deliveries, repeat(delivery("2", "T", "D", 0, 0), 12)...)

	top, err := TopEconomicalBowlers(matches, deliveries, "2015")
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].Bowler)
	assert.Equal(t, float32(3.0), top[0].Economy)
	assert.Equal(t, 6, top[0].Runs)
	assert.Equal(t, 12, top[0].Balls)
	assert.Equal(t, 2, top[0].Overs())
}

func TestTopEconomicalBowlers_TruncatesPartialOvers(t *testing.T) {
	matches := []domain.Match{match("1", "2015", "A")}
	// 11 balls is one completed over
	deliveries := repeat(delivery("1", "T", "A", 0, 1), 11)

	top, err := TopEconomicalBowlers(matches, deliveries, "2015")
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, float32(11), top[0].Economy)
}

func TestTopEconomicalBowlers_Ties(t *testing.T) {
	matches := []domain.Match{match("1", "2015", "A")}

	var deliveries []domain.Delivery
	deliveries = append(deliveries, repeat(delivery("1", "T", "Zed", 0, 1), 6)...)
	deliveries = append(deliveries, repeat(delivery("1", "T", "Amy", 0, 1), 6)...)
	deliveries = append(deliveries, repeat(delivery("1", "T", "Bob", 0, 2), 6)...)

	top, err := TopEconomicalBowlers(matches, deliveries, "2015")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Amy", top[0].Bowler)
	assert.Equal(t, "Zed", top[1].Bowler)
}

func TestTopEconomicalBowlers_NonFinite(t *testing.T) {
	matches := []domain.Match{match("1", "2015", "A")}

	tests := []struct {
		name        string
		deliveries  []domain.Delivery
		wantBowlers []string
		wantInf     bool
		wantNaN     bool
	}{
		{
			name:        "only partial overs with runs",
			deliveries:  append(repeat(delivery("1", "T", "A", 0, 1), 3), repeat(delivery("1", "T", "B", 0, 2), 2)...),
			wantBowlers: []string{"A", "B"},
			wantInf:     true,
		},
		{
			name:        "infinity ranks ahead of NaN",
			deliveries:  append(repeat(delivery("1", "T", "A", 0, 0), 3), repeat(delivery("1", "T", "B", 0, 1), 3)...),
			wantBowlers: []string{"B"},
			wantInf:     true,
		},
		{
			name:        "only NaN",
			deliveries:  append(repeat(delivery("1", "T", "A", 0, 0), 3), repeat(delivery("1", "T", "B", 0, 0), 3)...),
			wantBowlers: []string{"A"},
			wantNaN:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, err := TopEconomicalBowlers(matches, tt.deliveries, "2015")
			require.NoError(t, err)

			var names []string
			for _, b := range top {
				names = append(names, b.Bowler)
			}
			assert.Equal(t, tt.wantBowlers, names)

			e := float64(top[0].Economy)
			assert.Equal(t, tt.wantInf, math.IsInf(e, 1))
			assert.Equal(t, tt.wantNaN, math.IsNaN(e))
		})
	}
}

func TestTopEconomicalBowlers_Empty(t *testing.T) {
	top, err := TopEconomicalBowlers(nil, nil, "2015")
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopEconomicalBowlers_InvalidRuns(t *testing.T) {
	matches := []domain.Match{match("1", "2015", "A")}
	bad := delivery("1", "T", "A", 0, 0)
	bad.TotalRuns = domain.Some("2.5")

	_, err := TopEconomicalBowlers(matches, []domain.Delivery{bad}, "2015")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeParsing))
}

func TestRepeatDismissals(t *testing.T) {
	matches := []domain.Match{match("1", "2017", "A"), match("2", "2017", "B"), match("3", "2016", "C")}

	var deliveries []domain.Delivery
	deliveries = append(deliveries, repeat(dismissal("1", "X", "caught"), 6)...)
	deliveries = append(deliveries, repeat(dismissal("2", "X", "run out"), 5)...)
	deliveries = append(deliveries, repeat(dismissal("1", "Y", "caught"), 10)...)
	deliveries = append(deliveries, repeat(dismissal("1", "Z", "bowled"), 20)...)
	deliveries = append(deliveries, repeat(dismissal("3", "W", "caught"), 20)...)

	noKind := dismissal("1", "Y", "caught")
	noKind.DismissalKind = domain.None[string]()
	deliveries = append(deliveries, noKind)

	counts := RepeatDismissals(matches, deliveries, "2017", 10)
	assert.Equal(t, []Count{{"X", 11}}, counts)

	assert.Equal(t, []Count{{"X", 11}, {"Y", 10}}, RepeatDismissals(matches, deliveries, "2017", 9))
	assert.Empty(t, RepeatDismissals(matches, deliveries, "2017", 11))
}
