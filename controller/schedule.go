package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jdp/draft_tracker/db"
	"github.com/jdp/draft_tracker/model"
)

// headToHeadCounts returns, per participant, how many remaining fixtures pit
// two of that participant's own teams against each other. Each such game is a
// locked 1-1: one guaranteed win and one guaranteed loss no matter who takes
// it. The Undrafted bucket is skipped since it can never win the pool.
//
// A missing or unpopulated schedule degrades to zero counts everywhere,
// which only makes the elimination math more optimistic, never wrong in the
// other direction.
func headToHeadCounts(roster model.Roster, sched *model.Schedule, asOf time.Time, snap *model.Snapshot) map[string]int {
	counts := make(map[string]int, len(roster))

	if sched == nil || !sched.Populated {
		snap.AddWarning("schedule unavailable; head-to-head adjustment treated as zero")
		return counts
	}

	owners := ownerIndex(roster)
	for _, f := range sched.Remaining(asOf) {
		home, away := owners[f.Home], owners[f.Away]
		if home == "" || away == "" || home != away || home == model.UndraftedParticipant {
			continue
		}
		counts[home]++
	}

	return counts
}

func ownerIndex(roster model.Roster) map[string]string {
	owners := make(map[string]string)
	for participant, teams := range roster {
		for _, t := range teams {
			owners[t] = participant
		}
	}
	return owners
}

func (c *controller) EnsureSchedule(ctx context.Context) error {
	if sched, _ := c.cachedSchedule(ctx); sched != nil && sched.Populated && len(sched.Fixtures) > 0 {
		return nil
	}
	return c.fetchSchedule(ctx)
}

func (c *controller) ReloadSchedule(ctx context.Context) error {
	log.Printf("explicit schedule reload requested")
	return c.fetchSchedule(ctx)
}

// cachedSchedule returns the season fixture list from memory, falling back
// to the store. It never goes to the network.
func (c *controller) cachedSchedule(ctx context.Context) (*model.Schedule, error) {
	c.mu.RLock()
	sched := c.schedule
	c.mu.RUnlock()
	if sched != nil {
		return sched, nil
	}

	sched, err := c.store.GetSchedule(ctx)
	if err != nil {
		if errors.Is(err, db.ErrScheduleNotFound) {
			return nil, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.schedule = sched
	c.mu.Unlock()
	return sched, nil
}

func (c *controller) fetchSchedule(ctx context.Context) error {
	sched, err := c.provider.LoadSchedule(ctx)
	if err != nil {
		return fmt.Errorf("error fetching season schedule: %w", err)
	}

	if err := c.store.SaveSchedule(ctx, sched); err != nil {
		return err
	}

	c.mu.Lock()
	c.schedule = sched
	c.mu.Unlock()

	log.Printf("season schedule cached: %d fixtures", len(sched.Fixtures))
	return nil
}

func (c *controller) GamesOn(ctx context.Context, date time.Time) ([]model.Fixture, error) {
	sched, err := c.cachedSchedule(ctx)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, nil
	}
	return sched.On(date), nil
}

func (c *controller) ResultsOn(ctx context.Context, date time.Time) ([]model.GameResult, error) {
	log, err := c.cachedGameLog(ctx)
	if err != nil {
		return nil, err
	}

	y, m, d := date.Date()
	var out []model.GameResult
	for _, r := range log {
		ry, rm, rd := r.Date.Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out, nil
}
