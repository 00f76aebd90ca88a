package model

import "time"

// TimelinePoint is one sample of a participant's cumulative win percentage,
// used to draw the season horse-race graph.
type TimelinePoint struct {
	Date   time.Time
	WinPct float64
}

// Timeline maps participant name to their win-percentage series. All series
// share the same date axis.
type Timeline map[string][]TimelinePoint
