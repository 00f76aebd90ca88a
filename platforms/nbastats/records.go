package nbastats

import (
	"fmt"
	"math"
	"time"

	"github.com/jdp/draft_tracker/model"
)

// The stats API wraps every tabular feed in the same envelope: named result
// sets with a header list and untyped rows.
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// row is one rowSet entry zipped with its headers. All getters substitute a
// neutral default when the column is missing or has an unexpected type, so a
// feed revision can never fail the whole refresh.
type row map[string]any

func (rs *resultSet) rows() []row {
	out := make([]row, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		r := make(row, len(rs.Headers))
		for i, h := range rs.Headers {
			if i < len(raw) {
				r[h] = raw[i]
			}
		}
		out = append(out, r)
	}
	return out
}

func (r row) str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

func (r row) num(key string) float64 {
	// JSON numbers decode as float64
	if v, ok := r[key].(float64); ok {
		return v
	}
	return 0
}

func (r row) count(key string) int {
	return int(math.Round(r.num(key)))
}

func (r row) has(key string) bool {
	_, ok := r[key]
	return r[key] != nil && ok
}

// toTeamStats normalizes one leaguedashteamstats row into the canonical
// record. The feed reports PTS and OPP_PTS per game, so the point
// differential is scaled back up by games played. When OPP_PTS is absent the
// provider's plus/minus stands in; when that is also missing the differential
// is zero and the record is flagged.
func toTeamStats(r row, team *model.NBATeam) model.TeamStats {
	stats := model.TeamStats{
		Team:        team,
		Wins:        r.count("W"),
		Losses:      r.count("L"),
		GamesPlayed: r.count("GP"),
	}

	gp := float64(stats.GamesPlayed)
	switch {
	case r.has("PTS") && r.has("OPP_PTS"):
		stats.PointDiff = (r.num("PTS") - r.num("OPP_PTS")) * gp
	case r.has("PLUS_MINUS"):
		stats.PointDiff = r.num("PLUS_MINUS") * gp
	default:
		stats.Quality = append(stats.Quality, model.QualityPointDiffMissing)
	}

	return stats
}

// toGameResult normalizes one leaguegamelog row. Returns an error for rows
// the caller should drop rather than guess at.
func toGameResult(r row, team *model.NBATeam) (model.GameResult, error) {
	date, err := time.Parse(time.DateOnly, r.str("GAME_DATE"))
	if err != nil {
		return model.GameResult{}, fmt.Errorf("bad game date %q: %w", r.str("GAME_DATE"), err)
	}

	wl := r.str("WL")
	if wl != "W" && wl != "L" {
		return model.GameResult{}, fmt.Errorf("bad win/loss value %q", wl)
	}

	return model.GameResult{
		Team: team.String(),
		Date: date,
		Won:  wl == "W",
	}, nil
}
