package model

import "fmt"

// Data-quality flags attached to a TeamStats record when the provider feed
// was missing something and a neutral default was substituted.
const (
	QualityPointDiffMissing = "point-diff-missing"
)

// TeamStats is the canonical season-to-date record for a single team. A fresh
// set is built from the provider feed on every refresh and replaced wholesale,
// never patched in place.
type TeamStats struct {
	Team        *NBATeam
	Wins        int
	Losses      int
	GamesPlayed int
	// PointDiff is points scored minus points allowed, season to date.
	PointDiff float64
	Quality   []string
}

func (t *TeamStats) WinPct() float64 {
	games := t.Wins + t.Losses
	if games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(games)
}

func (t *TeamStats) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}
