package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"iplstats/internal/analytics"
	"iplstats/internal/infrastructure"
)

// Section is one titled block of the report. Rows are the console lines;
// Header and Records hold the same data as a table.
type Section struct {
	// Name identifies the section in file names and metrics
	Name    string
	Title   string
	Rows    []string
	Header  []string
	Records [][]string
}

// Build lays out the five report sections in their fixed order
func Build(summary *analytics.Summary, seasons analytics.Seasons) []Section {
	return []Section{
		countSection(analytics.AggMatchesPerSeason,
			"No of matches played per year:-",
			[]string{"season", "matches"},
			"Season:- %s, No of matches played:- %d",
			summary.MatchesPerSeason),
		countSection(analytics.AggMatchesWon,
			"Total no of matches won by teams over all years of IPL:-",
			[]string{"team", "wins"},
			"Team:- %s, No of matches won:- %d",
			summary.MatchesWon),
		countSection(analytics.AggExtraRuns,
			fmt.Sprintf("Extra Runs Conceded Per Team in %s:-", seasons.Extras),
			[]string{"team", "extra_runs"},
			"Team:- %s, Value:-  %d",
			summary.ExtraRuns),
		economySection(summary.TopEconomy),
		countSection(analytics.AggRepeatDismissals,
			fmt.Sprintf("Batsman who got out more than %d times in year %s:-", seasons.DismissalThreshold, seasons.Dismissals),
			[]string{"player", "dismissals"},
			"player:-%s,matches %d",
			summary.RepeatDismissals),
	}
}

func countSection(name, title string, header []string, format string, counts []analytics.Count) Section {
	s := Section{
		Name:    name,
		Title:   title,
		Header:  header,
		Rows:    make([]string, 0, len(counts)),
		Records: make([][]string, 0, len(counts)),
	}
	for _, c := range counts {
		s.Rows = append(s.Rows, fmt.Sprintf(format, c.Key, c.Value))
		s.Records = append(s.Records, []string{c.Key, strconv.Itoa(c.Value)})
	}
	return s
}

func economySection(bowlers []analytics.BowlerEconomy) Section {
	s := Section{
		Name:    analytics.AggTopEconomy,
		Title:   "Top economical Bowler:-",
		Header:  []string{"bowler", "economy", "runs", "balls"},
		Rows:    make([]string, 0, len(bowlers)),
		Records: make([][]string, 0, len(bowlers)),
	}
	for _, b := range bowlers {
		economy := FormatEconomy(b.Economy)
		s.Rows = append(s.Rows, fmt.Sprintf("Bowler:- %s, Economy:- %s", b.Bowler, economy))
		s.Records = append(s.Records, []string{b.Bowler, economy, strconv.Itoa(b.Runs), strconv.Itoa(b.Balls)})
	}
	return s
}

// Console writes the report as plain lines
type Console struct {
	w       io.Writer
	metrics *infrastructure.RunMetrics
}

// NewConsole creates a Console writing to w. metrics may be nil.
func NewConsole(w io.Writer, metrics *infrastructure.RunMetrics) *Console {
	return &Console{w: w, metrics: metrics}
}

// Write prints every section title followed by its rows
func (c *Console) Write(ctx context.Context, sections []Section) error {
	bw := bufio.NewWriter(c.w)
	for _, s := range sections {
		if _, err := fmt.Fprintln(bw, s.Title); err != nil {
			return err
		}
		for _, row := range s.Rows {
			if _, err := fmt.Fprintln(bw, row); err != nil {
				return err
			}
		}
		c.metrics.RecordReportRows(ctx, s.Name, len(s.Rows))
	}
	return bw.Flush()
}
