package domain

// Match represents one row of the matches dataset.
// Only the fields used by the season reports are carried.
type Match struct {
	ID     string
	Season Optional[string]
	// Winner is present but empty for no-result matches
	Winner Optional[string]
	// Venue is "<ground>,<city>"
	Venue Optional[string]
}

// InSeason reports whether the match belongs to season. Seasons are compared
// as opaque labels, never as numbers.
func (m Match) InSeason(season string) bool {
	s, ok := m.Season.Get()
	return ok && s == season
}
