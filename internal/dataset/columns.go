package dataset

// Column positions in matches.csv
const (
	matchColID     = 0
	matchColSeason = 1
	matchColWinner = 10
	matchColVenue  = 14
	// matchColVenueCity holds the city when a venue was written unquoted
	// with its comma
	matchColVenueCity = 15

	matchColumns = 18
)

// Column positions in deliveries.csv
const (
	deliveryColMatchID         = 0
	deliveryColBattingTeam     = 2
	deliveryColBowlingTeam     = 3
	deliveryColOver            = 4
	deliveryColBatsman         = 6
	deliveryColNonStriker      = 7
	deliveryColBowler          = 8
	deliveryColBatsmanRuns     = 15
	deliveryColExtraRuns       = 16
	deliveryColTotalRuns       = 17
	deliveryColPlayerDismissed = 18
	deliveryColDismissalKind   = 19

	deliveryColumns = 21
)
