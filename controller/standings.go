package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jdp/draft_tracker/model"
)

// buildSnapshot is the whole aggregation pass as a pure function: canonical
// team stats plus a roster in, a complete standings snapshot out. Refresh and
// Recalculate both go through here so a what-if roster can never behave
// differently from the real one.
func buildSnapshot(roster model.Roster, teams []model.TeamStats, sched *model.Schedule, now time.Time) *model.Snapshot {
	snap := &model.Snapshot{
		Updated:   now,
		TeamStats: make(map[string]*model.TeamStats, len(teams)),
	}

	for i := range teams {
		t := teams[i]
		snap.TeamStats[t.Team.String()] = &t
		for _, q := range t.Quality {
			snap.AddWarning("team %s: %s", t.Team, q)
		}
	}

	h2h := headToHeadCounts(roster, sched, now, snap)

	for _, participant := range roster.Participants() {
		row := aggregateParticipant(participant, roster[participant], snap)
		row.HeadToHeadRemaining = h2h[participant]
		snap.Standings = append(snap.Standings, row)
	}

	applyElimination(snap.Standings)
	model.SortStandings(snap.Standings)

	for _, w := range snap.Warnings {
		log.Printf("data quality: %s", w)
	}

	return snap
}

// aggregateParticipant sums the canonical stats of every roster team that
// resolved this cycle. Teams with no stats contribute zero but still count
// toward the 82-game quota, so a transient feed omission shrinks a
// participant's current totals without ever shrinking their season.
func aggregateParticipant(participant string, rosterTeams []string, snap *model.Snapshot) model.ParticipantTotals {
	row := model.ParticipantTotals{Participant: participant}

	for _, team := range rosterTeams {
		stats, ok := snap.TeamStats[team]
		if !ok {
			snap.AddWarning("no stats for %s (%s); excluded from totals this cycle", team, participant)
			continue
		}
		row.Teams = append(row.Teams, team)
		row.Wins += stats.Wins
		row.Losses += stats.Losses
		row.Games += stats.GamesPlayed
		row.PointDiff += stats.PointDiff
	}

	if row.Games > 0 {
		row.WinPct = float64(row.Wins) / float64(row.Wins+row.Losses)
	}

	row.GamesRemaining = model.GamesPerSeason*len(rosterTeams) - row.Games
	if row.GamesRemaining < 0 {
		snap.AddWarning("%s has more games played (%d) than the season allows (%d); clamping games remaining",
			participant, row.Games, model.GamesPerSeason*len(rosterTeams))
		row.GamesRemaining = 0
	}

	return row
}

func (c *controller) Recalculate(ctx context.Context, assignments map[string][]string) (*model.Snapshot, error) {
	roster, err := model.NewRoster(assignments)
	if err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	current, err := c.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	teams := make([]model.TeamStats, 0, len(current.TeamStats))
	for _, t := range current.TeamStats {
		teams = append(teams, *t)
	}

	sched, _ := c.cachedSchedule(ctx)
	return buildSnapshot(roster, teams, sched, c.clock.Now()), nil
}

func (c *controller) EliminationReport(ctx context.Context) ([]model.EliminationEntry, error) {
	snap, err := c.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]model.EliminationEntry, 0, len(snap.Standings))
	for _, row := range snap.Standings {
		report = append(report, model.EliminationEntry{
			Participant:        row.Participant,
			Eliminated:         row.Eliminated,
			MaxPossibleWins:    row.MaxPossibleWins,
			BestOtherGuarantee: row.BestOtherGuarantee,
		})
	}
	return report, nil
}
