package model

import (
	"fmt"
	"strings"
)

type NBATeam struct {
	name  string   // canonical identifier, the mascot name used to key rosters
	city  string
	short string   // short form of the city, e.g. OKC for Oklahoma City
	nick  []string // provider-specific spellings, e.g. "LA Clippers" for the Clippers
}

func (t *NBATeam) String() string {
	return t.name
}

func (t *NBATeam) Friendly() string {
	if t.city == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.city, t.name)
}

// MarshalText writes the canonical name so a team can be embedded in JSON
// payloads (cache snapshots, the standings API).
func (t *NBATeam) MarshalText() ([]byte, error) {
	return []byte(t.name), nil
}

func (t *NBATeam) UnmarshalText(b []byte) error {
	parsed := ParseTeam(string(b))
	if parsed == nil {
		return fmt.Errorf("unknown team %q", string(b))
	}
	*t = *parsed
	return nil
}

func (t *NBATeam) Equals(o *NBATeam) bool {
	if o == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name &&
		t.city == o.city &&
		t.short == o.short &&
		arrayEquals(t.nick, o.nick)
}

var (
	// Eastern Conference
	TEAM_HAWKS     *NBATeam = &NBATeam{name: "Hawks", city: "Atlanta", short: "ATL"}
	TEAM_CELTICS   *NBATeam = &NBATeam{name: "Celtics", city: "Boston", short: "BOS"}
	TEAM_NETS      *NBATeam = &NBATeam{name: "Nets", city: "Brooklyn", short: "BKN"}
	TEAM_HORNETS   *NBATeam = &NBATeam{name: "Hornets", city: "Charlotte", short: "CHA"}
	TEAM_BULLS     *NBATeam = &NBATeam{name: "Bulls", city: "Chicago", short: "CHI"}
	TEAM_CAVALIERS *NBATeam = &NBATeam{name: "Cavaliers", city: "Cleveland", short: "CLE", nick: []string{"Cavs"}}
	TEAM_PISTONS   *NBATeam = &NBATeam{name: "Pistons", city: "Detroit", short: "DET"}
	TEAM_PACERS    *NBATeam = &NBATeam{name: "Pacers", city: "Indiana", short: "IND"}
	TEAM_HEAT      *NBATeam = &NBATeam{name: "Heat", city: "Miami", short: "MIA"}
	TEAM_BUCKS     *NBATeam = &NBATeam{name: "Bucks", city: "Milwaukee", short: "MIL"}
	TEAM_KNICKS    *NBATeam = &NBATeam{name: "Knicks", city: "New York", short: "NYK"}
	TEAM_MAGIC     *NBATeam = &NBATeam{name: "Magic", city: "Orlando", short: "ORL"}
	TEAM_SIXERS    *NBATeam = &NBATeam{name: "76ers", city: "Philadelphia", short: "PHI", nick: []string{"Sixers"}}
	TEAM_RAPTORS   *NBATeam = &NBATeam{name: "Raptors", city: "Toronto", short: "TOR"}
	TEAM_WIZARDS   *NBATeam = &NBATeam{name: "Wizards", city: "Washington", short: "WAS"}

	// Western Conference
	TEAM_MAVERICKS    *NBATeam = &NBATeam{name: "Mavericks", city: "Dallas", short: "DAL", nick: []string{"Mavs"}}
	TEAM_NUGGETS      *NBATeam = &NBATeam{name: "Nuggets", city: "Denver", short: "DEN"}
	TEAM_WARRIORS     *NBATeam = &NBATeam{name: "Warriors", city: "Golden State", short: "GSW"}
	TEAM_ROCKETS      *NBATeam = &NBATeam{name: "Rockets", city: "Houston", short: "HOU"}
	TEAM_CLIPPERS     *NBATeam = &NBATeam{name: "Clippers", city: "Los Angeles", short: "LAC", nick: []string{"LA Clippers"}}
	TEAM_LAKERS       *NBATeam = &NBATeam{name: "Lakers", city: "Los Angeles", short: "LAL", nick: []string{"LA Lakers"}}
	TEAM_GRIZZLIES    *NBATeam = &NBATeam{name: "Grizzlies", city: "Memphis", short: "MEM"}
	TEAM_TIMBERWOLVES *NBATeam = &NBATeam{name: "Timberwolves", city: "Minnesota", short: "MIN", nick: []string{"Wolves"}}
	TEAM_PELICANS     *NBATeam = &NBATeam{name: "Pelicans", city: "New Orleans", short: "NOP", nick: []string{"Pels"}}
	TEAM_THUNDER      *NBATeam = &NBATeam{name: "Thunder", city: "Oklahoma City", short: "OKC"}
	TEAM_SUNS         *NBATeam = &NBATeam{name: "Suns", city: "Phoenix", short: "PHX"}
	TEAM_BLAZERS      *NBATeam = &NBATeam{name: "Trail Blazers", city: "Portland", short: "POR", nick: []string{"Blazers"}}
	TEAM_KINGS        *NBATeam = &NBATeam{name: "Kings", city: "Sacramento", short: "SAC"}
	TEAM_SPURS        *NBATeam = &NBATeam{name: "Spurs", city: "San Antonio", short: "SAS"}
	TEAM_JAZZ         *NBATeam = &NBATeam{name: "Jazz", city: "Utah", short: "UTA"}

	allTeams []*NBATeam          = buildTeamList()
	teamMap  map[string]*NBATeam = buildTeamMap()
)

// AllTeams returns the full 30-team universe in a fixed order.
func AllTeams() []*NBATeam {
	return allTeams
}

// ParseTeam looks up a team by canonical name, city, short form, full
// "City Mascot" form, or a known alias. Returns nil when nothing matches.
// This is the strategy to use for providers known to use canonical naming.
func ParseTeam(name string) *NBATeam {
	return teamMap[strings.ToLower(strings.TrimSpace(name))]
}

// ResolveTeam first tries ParseTeam and then falls back to a case-insensitive
// substring match in either direction. The fuzzy tier is only trusted when it
// matches exactly one team in the universe, so a short external name can never
// be silently attributed to the wrong team. Returns nil when no team matches
// or when the fuzzy match is ambiguous.
func ResolveTeam(name string) *NBATeam {
	if t := ParseTeam(name); t != nil {
		return t
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var found *NBATeam
	for _, t := range allTeams {
		for _, candidate := range teamNames(t) {
			c := strings.ToLower(candidate)
			if strings.Contains(c, needle) || strings.Contains(needle, c) {
				if found != nil && found != t {
					// Ambiguous, e.g. "Los Angeles" hits both LA teams.
					return nil
				}
				found = t
				break
			}
		}
	}
	return found
}

// teamNames returns the forms the fuzzy tier may match against. Short forms
// are deliberately excluded: a three-letter code like PHI appears inside
// unrelated words ("Memphis") and would poison the substring check.
func teamNames(t *NBATeam) []string {
	names := []string{t.name, t.city, t.Friendly()}
	names = append(names, t.nick...)
	return names
}

func buildTeamList() []*NBATeam {
	return []*NBATeam{
		// Eastern
		TEAM_HAWKS, TEAM_CELTICS, TEAM_NETS, TEAM_HORNETS, TEAM_BULLS,
		TEAM_CAVALIERS, TEAM_PISTONS, TEAM_PACERS, TEAM_HEAT, TEAM_BUCKS,
		TEAM_KNICKS, TEAM_MAGIC, TEAM_SIXERS, TEAM_RAPTORS, TEAM_WIZARDS,
		// Western
		TEAM_MAVERICKS, TEAM_NUGGETS, TEAM_WARRIORS, TEAM_ROCKETS, TEAM_CLIPPERS,
		TEAM_LAKERS, TEAM_GRIZZLIES, TEAM_TIMBERWOLVES, TEAM_PELICANS, TEAM_THUNDER,
		TEAM_SUNS, TEAM_BLAZERS, TEAM_KINGS, TEAM_SPURS, TEAM_JAZZ,
	}
}

func buildTeamMap() map[string]*NBATeam {
	teamMap := make(map[string]*NBATeam)
	for _, t := range buildTeamList() {
		teamMap[strings.ToLower(t.name)] = t
		teamMap[strings.ToLower(t.Friendly())] = t

		if t.short != "" {
			teamMap[strings.ToLower(t.short)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	// The two LA teams share a city, so a bare city lookup would be wrong for
	// one of them. Only map the city when it is unambiguous.
	cities := make(map[string][]*NBATeam)
	for _, t := range buildTeamList() {
		c := strings.ToLower(t.city)
		cities[c] = append(cities[c], t)
	}
	for c, teams := range cities {
		if len(teams) == 1 {
			teamMap[c] = teams[0]
		}
	}
	return teamMap
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
