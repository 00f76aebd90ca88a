package model

import "time"

// Fixture is a single scheduled game. The full-season fixture list is fetched
// once and treated as immutable; only the "already played" cutoff moves.
type Fixture struct {
	Date time.Time
	Home string // canonical team name
	Away string // canonical team name
}

// Schedule is the season fixture list plus an explicit populated flag, so an
// empty-but-loaded schedule can be told apart from one that was never fetched.
type Schedule struct {
	Fixtures  []Fixture
	Populated bool
}

// Remaining returns the fixtures dated on or after asOf.
func (s *Schedule) Remaining(asOf time.Time) []Fixture {
	var out []Fixture
	for _, f := range s.Fixtures {
		if !f.Date.Before(asOf) {
			out = append(out, f)
		}
	}
	return out
}

// On returns the fixtures falling on the same calendar day as date.
func (s *Schedule) On(date time.Time) []Fixture {
	y, m, d := date.Date()
	var out []Fixture
	for _, f := range s.Fixtures {
		fy, fm, fd := f.Date.Date()
		if fy == y && fm == m && fd == d {
			out = append(out, f)
		}
	}
	return out
}

// GameResult is one row of the chronological game log: a single finished game
// from one team's perspective.
type GameResult struct {
	Team string // canonical team name
	Date time.Time
	Won  bool
}
