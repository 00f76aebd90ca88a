package model

import (
	"fmt"
	"sort"
	"time"
)

// GamesPerSeason is the length of an NBA regular season for one team.
const GamesPerSeason = 82

// ParticipantTotals is the derived standings row for one roster entry. It is
// recomputed from scratch on every aggregation pass.
type ParticipantTotals struct {
	Participant string
	Teams       []string // canonical names of the teams that actually resolved this cycle

	Wins        int
	Losses      int
	Games       int
	WinPct      float64
	PointDiff   float64 // season-to-date, summed across the roster
	// GamesRemaining is 82 x teams owned minus games played. Teams that
	// failed to resolve this cycle still count toward the quota so a
	// transient feed problem can never make elimination math impossible.
	GamesRemaining int

	HeadToHeadRemaining int
	MaxPossibleWins     int
	MaxPossibleWinPct   float64
	GuaranteedWins      int
	BestOtherGuarantee  int
	Eliminated          bool
}

func (p *ParticipantTotals) Record() string {
	return (&TeamStats{Wins: p.Wins, Losses: p.Losses}).Record()
}

func (p *ParticipantTotals) PointDiffPerGame() float64 {
	if p.Games == 0 {
		return 0
	}
	return p.PointDiff / float64(p.Games)
}

// EliminationEntry is one row of the elimination report: the decision plus
// the two quantities that justify it.
type EliminationEntry struct {
	Participant        string
	Eliminated         bool
	MaxPossibleWins    int
	BestOtherGuarantee int
}

// Snapshot is one complete standings computation. A refresh builds a new
// Snapshot from scratch and swaps it in atomically; readers always see either
// the old one or the new one, never a mix.
type Snapshot struct {
	Updated time.Time
	// TeamStats is keyed by canonical team name.
	TeamStats map[string]*TeamStats
	Standings []ParticipantTotals
	// Warnings carries data-quality notes for operators. End users never see
	// these; they only show up in logs and the JSON API.
	Warnings []string
}

func (s *Snapshot) AddWarning(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *Snapshot) Totals(participant string) *ParticipantTotals {
	for i := range s.Standings {
		if s.Standings[i].Participant == participant {
			return &s.Standings[i]
		}
	}
	return nil
}

// SortStandings orders rows by total wins descending, then point differential
// descending, then participant name so the output is deterministic.
func SortStandings(rows []ParticipantTotals) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.PointDiff != b.PointDiff {
			return a.PointDiff > b.PointDiff
		}
		return a.Participant < b.Participant
	})
}
