package dataset

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplstats/internal/errors"
)

const matchesHeader = "id,season,city,date,team1,team2,toss_winner,toss_decision,result,dl_applied,winner,win_by_runs,win_by_wickets,player_of_match,venue,umpire1,umpire2,umpire3\n"

const deliveriesHeader = "match_id,inning,batting_team,bowling_team,over,ball,batsman,non_striker,bowler,is_super_over,wide_runs,bye_runs,legbye_runs,noball_runs,penalty_runs,batsman_runs,extra_runs,total_runs,player_dismissed,dismissal_kind,fielder\n"

func TestReadMatches(t *testing.T) {
	input := matchesHeader +
		`1,2017,Hyderabad,2017-04-05,Sunrisers Hyderabad,Royal Challengers Bangalore,Royal Challengers Bangalore,field,normal,0,Sunrisers Hyderabad,35,0,Yuvraj Singh,"Rajiv Gandhi International Stadium, Uppal",AY Dandekar,NJ Llong,` + "\n" +
		`2,2017,Pune,2017-04-06,Mumbai Indians,Rising Pune Supergiant,Rising Pune Supergiant,field,normal,0,,0,7,SPD Smith,Maharashtra Cricket Association Stadium,A Nand Kishore,S Ravi,` + "\n"

	matches, err := ReadMatches(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "1", matches[0].ID)
	assert.Equal(t, "2017", matches[0].Season.OrZero())
	assert.Equal(t, "Sunrisers Hyderabad", matches[0].Winner.OrZero())
	assert.Equal(t, "Rajiv Gandhi International Stadium,Uppal", matches[0].Venue.OrZero())

	// no result: winner present but empty
	winner, ok := matches[1].Winner.Get()
	assert.True(t, ok)
	assert.Equal(t, "", winner)
	assert.Equal(t, "Maharashtra Cricket Association Stadium", matches[1].Venue.OrZero())
}

func TestReadMatches_UnquotedVenueWithCity(t *testing.T) {
	input := matchesHeader +
		"7,2008,Chennai,2008-04-23,Chennai Super Kings,Mumbai Indians,Mumbai Indians,field,normal,0,Chennai Super Kings,6,0,ML Hayden,MA Chidambaram Stadium, Chepauk,DJ Harper,GA Pratapkumar,\n"

	matches, err := ReadMatches(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "MA Chidambaram Stadium,Chepauk", matches[0].Venue.OrZero())
}

func TestReadMatches_ShortRows(t *testing.T) {
	input := matchesHeader + "1,2017\n2\n\n3,2016,City\n"

	matches, short, err := readMatches(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, short)
	require.Len(t, matches, 3)

	assert.True(t, matches[0].Season.Present())
	assert.False(t, matches[0].Winner.Present())
	assert.False(t, matches[0].Venue.Present())
	assert.False(t, matches[1].Season.Present())
	assert.Equal(t, "3", matches[2].ID)
}

func TestReadMatches_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no content", ""},
		{"header only", matchesHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := ReadMatches(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Empty(t, matches)
		})
	}
}

func TestReadDeliveries(t *testing.T) {
	input := deliveriesHeader +
		"1,1,Sunrisers Hyderabad,Royal Challengers Bangalore,1,1,DA Warner,S Dhawan,TS Mills,0,0,0,0,0,0,0,0,0,,,\n" +
		"1,1,Sunrisers Hyderabad,Royal Challengers Bangalore,1,2,DA Warner,S Dhawan,TS Mills,0,2,0,0,0,0,0,2,2,,,\n" +
		"1,1,Sunrisers Hyderabad,Royal Challengers Bangalore,2,3,DA Warner,S Dhawan,A Choudhary,0,0,0,0,0,0,1,0,1,DA Warner,caught,Mandeep Singh\n"

	deliveries, short, err := readDeliveries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, short)
	require.Len(t, deliveries, 3)

	d := deliveries[1]
	assert.Equal(t, "1", d.MatchID)
	assert.Equal(t, "Sunrisers Hyderabad", d.BattingTeam.OrZero())
	assert.Equal(t, "Royal Challengers Bangalore", d.BowlingTeam.OrZero())
	assert.Equal(t, "1", d.Over.OrZero())
	assert.Equal(t, "DA Warner", d.Batsman.OrZero())
	assert.Equal(t, "S Dhawan", d.NonStriker.OrZero())
	assert.Equal(t, "TS Mills", d.Bowler.OrZero())

	extras, err := d.ExtraRunsValue()
	require.NoError(t, err)
	assert.Equal(t, 2, extras)

	total, err := d.TotalRunsValue()
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	assert.Equal(t, "DA Warner", deliveries[2].PlayerDismissed.OrZero())
	assert.Equal(t, "caught", deliveries[2].DismissalKind.OrZero())
	assert.True(t, deliveries[2].IsCaughtOrRunOut())
}

func TestReadDeliveries_ShortRowLeavesTrailingFieldsAbsent(t *testing.T) {
	input := deliveriesHeader + "1,1,A,B,1,1,X,Y,Z,0,0,0,0,0,0,0,1,1\n"

	deliveries, short, err := readDeliveries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, short)
	require.Len(t, deliveries, 1)

	assert.True(t, deliveries[0].TotalRuns.Present())
	assert.False(t, deliveries[0].PlayerDismissed.Present())
	assert.False(t, deliveries[0].DismissalKind.Present())
	assert.False(t, deliveries[0].IsCaughtOrRunOut())
}

func TestReadDeliveries_Malformed(t *testing.T) {
	input := deliveriesHeader + "1,1,A,B,1,1,X,Y,Z,0,0,0,0,0,0,0,1,1,,,\n" + "2,1,A\"B,C\n"

	_, err := ReadDeliveries(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeParsing))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 3, appErr.Context["line"])
}

func TestReadMatches_ReadFailure(t *testing.T) {
	_, err := ReadMatches(iotest.ErrReader(io.ErrUnexpectedEOF))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
