package controller

import (
	"testing"

	"github.com/jdp/draft_tracker/model"
)

func rowByName(rows []model.ParticipantTotals, name string) *model.ParticipantTotals {
	for i := range rows {
		if rows[i].Participant == name {
			return &rows[i]
		}
	}
	return nil
}

func TestApplyElimination_headToHeadScenario(t *testing.T) {
	// A has 10 wins, 1 game left and it is between two of A's own teams.
	// B has 11 wins and nothing left to play. A's best case is
	// 10 + 1 - 1 = 10 < 11, so A is out.
	rows := []model.ParticipantTotals{
		{Participant: "A", Wins: 10, GamesRemaining: 1, HeadToHeadRemaining: 1},
		{Participant: "B", Wins: 11, GamesRemaining: 0},
	}
	applyElimination(rows)

	a := rowByName(rows, "A")
	if a.MaxPossibleWins != 10 {
		t.Errorf("expected A maxPossibleWins 10, got %d", a.MaxPossibleWins)
	}
	if a.GuaranteedWins != 11 {
		t.Errorf("expected A guaranteedWins 11, got %d", a.GuaranteedWins)
	}
	if a.BestOtherGuarantee != 11 {
		t.Errorf("expected A bestOtherGuarantee 11, got %d", a.BestOtherGuarantee)
	}
	if !a.Eliminated {
		t.Error("expected A to be eliminated")
	}

	b := rowByName(rows, "B")
	if b.Eliminated {
		t.Error("expected B to still be alive")
	}
}

func TestApplyElimination_tieIsNotElimination(t *testing.T) {
	// Identical guarantees equal to the max: neither participant is
	// eliminated by that comparison alone.
	rows := []model.ParticipantTotals{
		{Participant: "A", Wins: 20, GamesRemaining: 0},
		{Participant: "B", Wins: 20, GamesRemaining: 0},
	}
	applyElimination(rows)

	for _, name := range []string{"A", "B"} {
		r := rowByName(rows, name)
		if r.MaxPossibleWins != r.BestOtherGuarantee {
			t.Errorf("%s: expected an exact tie, max=%d best=%d", name, r.MaxPossibleWins, r.BestOtherGuarantee)
		}
		if r.Eliminated {
			t.Errorf("expected %s to survive the tie", name)
		}
	}
}

func TestApplyElimination_noHeadToHeadMeansNoAdjustment(t *testing.T) {
	rows := []model.ParticipantTotals{
		{Participant: "A", Wins: 15, GamesRemaining: 40},
		{Participant: "B", Wins: 30, GamesRemaining: 20},
	}
	applyElimination(rows)

	a := rowByName(rows, "A")
	if a.MaxPossibleWins != 55 {
		t.Errorf("expected maxPossibleWins == wins + gamesRemaining == 55, got %d", a.MaxPossibleWins)
	}
	if a.Eliminated {
		t.Error("A can still reach 55 wins, expected not eliminated")
	}
}

func TestApplyElimination_strictComparisonOnly(t *testing.T) {
	// maxPossibleWins strictly greater than bestOtherGuarantee can never be
	// eliminated, even with head-to-head fixtures in play.
	rows := []model.ParticipantTotals{
		{Participant: "A", Wins: 10, GamesRemaining: 10, HeadToHeadRemaining: 3},
		{Participant: "B", Wins: 12, GamesRemaining: 0},
	}
	applyElimination(rows)

	a := rowByName(rows, "A")
	if a.MaxPossibleWins != 17 || a.BestOtherGuarantee != 12 {
		t.Fatalf("unexpected quantities: max=%d best=%d", a.MaxPossibleWins, a.BestOtherGuarantee)
	}
	if a.Eliminated {
		t.Error("expected A alive with maxPossibleWins > bestOtherGuarantee")
	}
}

func TestApplyElimination_undraftedAlwaysEliminated(t *testing.T) {
	// Even leading the pool, the Undrafted bucket is out by definition, and
	// its guarantee still counts as a bar for nobody (only real participants
	// set bestOtherGuarantee).
	rows := []model.ParticipantTotals{
		{Participant: model.UndraftedParticipant, Wins: 60, GamesRemaining: 0},
		{Participant: "A", Wins: 10, GamesRemaining: 5},
		{Participant: "B", Wins: 8, GamesRemaining: 0},
	}
	applyElimination(rows)

	u := rowByName(rows, model.UndraftedParticipant)
	if !u.Eliminated {
		t.Error("expected Undrafted to always be eliminated")
	}

	a := rowByName(rows, "A")
	if a.BestOtherGuarantee != 8 {
		t.Errorf("expected Undrafted's 60 wins to be ignored, bestOtherGuarantee=%d", a.BestOtherGuarantee)
	}
	if a.Eliminated {
		t.Error("expected A to be alive regardless of the Undrafted record")
	}
}

func TestApplyElimination_maxPossibleWinPct(t *testing.T) {
	rows := []model.ParticipantTotals{
		{Participant: "A", Wins: 41, Games: 82, GamesRemaining: 82},
	}
	applyElimination(rows)

	if pct := rows[0].MaxPossibleWinPct; pct != 0.75 {
		t.Errorf("expected max possible win pct 0.75, got %f", pct)
	}
}
