package controller

import "github.com/jdp/draft_tracker/model"

// applyElimination fills in the elimination fields on every standings row.
//
// For a participant P with h locked head-to-head fixtures remaining:
//
//	maxPossibleWins(P) = wins(P) + gamesRemaining(P) - h
//	guaranteedWins(P)  = wins(P) + h
//
// Each of P's own head-to-head games hands P exactly one win and one loss
// whichever team takes it, so it can neither be a best-case extra win nor a
// worst-case total loss. P is eliminated when even their best case falls
// strictly short of the highest guarantee among the other participants; a tie
// keeps P alive. The Undrafted bucket is always eliminated.
//
// One deterministic pass: each decision depends only on the others' current
// guarantees, never on their elimination status, so there is nothing to
// iterate to a fixed point.
func applyElimination(rows []model.ParticipantTotals) {
	for i := range rows {
		p := &rows[i]
		p.MaxPossibleWins = p.Wins + p.GamesRemaining - p.HeadToHeadRemaining
		p.GuaranteedWins = p.Wins + p.HeadToHeadRemaining

		if season := p.Games + p.GamesRemaining; season > 0 {
			p.MaxPossibleWinPct = float64(p.MaxPossibleWins) / float64(season)
		}
	}

	for i := range rows {
		p := &rows[i]
		if p.Participant == model.UndraftedParticipant {
			p.Eliminated = true
			continue
		}

		best := 0
		for j := range rows {
			q := &rows[j]
			if j == i || q.Participant == model.UndraftedParticipant {
				continue
			}
			if q.GuaranteedWins > best {
				best = q.GuaranteedWins
			}
		}

		p.BestOtherGuarantee = best
		p.Eliminated = p.MaxPossibleWins < best
	}
}
