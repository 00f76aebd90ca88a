package controller

import (
	"context"
	"sort"
	"time"

	"github.com/jdp/draft_tracker/model"
)

// Timeline builds the horse-race series: for every participant, cumulative
// win percentage as of each date on the axis. Values carry the last known
// result forward; a date before a roster's first game yields 0.
func (c *controller) Timeline(ctx context.Context, dates []time.Time) (model.Timeline, error) {
	gameLog, err := c.cachedGameLog(ctx)
	if err != nil {
		return nil, err
	}

	curves := teamCurves(gameLog)

	timeline := make(model.Timeline, len(c.roster))
	for participant, teams := range c.roster {
		series := make([]model.TimelinePoint, 0, len(dates))
		for _, date := range dates {
			var wins, games int
			for _, team := range teams {
				w, g := curves[team].asOf(date)
				wins += w
				games += g
			}

			pct := 0.0
			if games > 0 {
				pct = float64(wins) / float64(games)
			}
			series = append(series, model.TimelinePoint{Date: date, WinPct: pct})
		}
		timeline[participant] = series
	}

	return timeline, nil
}

// DateAxis returns one entry per day from the earliest game in the log
// through end, inclusive. Returns nil when there are no games yet.
func (c *controller) DateAxis(ctx context.Context, end time.Time) ([]time.Time, error) {
	gameLog, err := c.cachedGameLog(ctx)
	if err != nil {
		return nil, err
	}
	if len(gameLog) == 0 {
		return nil, nil
	}

	first := gameLog[0].Date
	for _, r := range gameLog {
		if r.Date.Before(first) {
			first = r.Date
		}
	}

	var dates []time.Time
	for d := truncateDay(first); !d.After(truncateDay(end)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// teamCurve is one team's cumulative record over time: points[i] holds the
// totals after the i'th game, sorted by date.
type teamCurve struct {
	points []curvePoint
}

type curvePoint struct {
	date  time.Time
	wins  int
	games int
}

// asOf returns the last cumulative record dated on or before date.
func (tc teamCurve) asOf(date time.Time) (wins, games int) {
	// Points are sorted, find the first one after the cutoff.
	i := sort.Search(len(tc.points), func(i int) bool {
		return tc.points[i].date.After(endOfDay(date))
	})
	if i == 0 {
		return 0, 0
	}
	p := tc.points[i-1]
	return p.wins, p.games
}

func teamCurves(gameLog []model.GameResult) map[string]teamCurve {
	byTeam := make(map[string][]model.GameResult)
	for _, r := range gameLog {
		byTeam[r.Team] = append(byTeam[r.Team], r)
	}

	curves := make(map[string]teamCurve, len(byTeam))
	for team, results := range byTeam {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Date.Before(results[j].Date)
		})

		var wins int
		points := make([]curvePoint, 0, len(results))
		for i, r := range results {
			if r.Won {
				wins++
			}
			points = append(points, curvePoint{date: r.Date, wins: wins, games: i + 1})
		}
		curves[team] = teamCurve{points: points}
	}
	return curves
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return truncateDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
