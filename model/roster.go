package model

import (
	"fmt"
	"sort"
)

// UndraftedParticipant is the bucket for teams nobody drafted. It shows up in
// standings output but can never win the pool.
const UndraftedParticipant = "Undrafted"

// Roster maps a participant name to the ordered list of canonical team names
// they drafted. A roster is fixed for the lifetime of a season.
type Roster map[string][]string

// NewRoster validates the draft assignments and fills in the Undrafted bucket
// with every team of the 30-team universe that no participant owns. Returns
// an error if a team name is unknown or appears on more than one roster.
func NewRoster(assignments map[string][]string) (Roster, error) {
	r := make(Roster, len(assignments)+1)
	owner := make(map[*NBATeam]string)

	for participant, teams := range assignments {
		if participant == UndraftedParticipant {
			return nil, fmt.Errorf("%q is a reserved participant name", UndraftedParticipant)
		}
		canonical := make([]string, 0, len(teams))
		for _, name := range teams {
			t := ParseTeam(name)
			if t == nil {
				return nil, fmt.Errorf("unknown team %q on %s's roster", name, participant)
			}
			if prev, ok := owner[t]; ok {
				return nil, fmt.Errorf("team %s drafted by both %s and %s", t, prev, participant)
			}
			owner[t] = participant
			canonical = append(canonical, t.String())
		}
		r[participant] = canonical
	}

	var undrafted []string
	for _, t := range AllTeams() {
		if _, ok := owner[t]; !ok {
			undrafted = append(undrafted, t.String())
		}
	}
	sort.Strings(undrafted)
	r[UndraftedParticipant] = undrafted

	return r, nil
}

// Participants returns all roster entries, real participants first in
// alphabetical order, Undrafted last.
func (r Roster) Participants() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		if name != UndraftedParticipant {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := r[UndraftedParticipant]; ok {
		names = append(names, UndraftedParticipant)
	}
	return names
}

// Owner returns the participant owning the given canonical team name, or ""
// if no roster entry carries it.
func (r Roster) Owner(team string) string {
	for participant, teams := range r {
		for _, t := range teams {
			if t == team {
				return participant
			}
		}
	}
	return ""
}
