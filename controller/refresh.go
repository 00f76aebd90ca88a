package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jdp/draft_tracker/db"
	"github.com/jdp/draft_tracker/model"
)

// refreshCron is when the daily refresh fires, expressed in the league's
// home timezone.
const (
	refreshCron     = "0 6 * * *"
	refreshTimezone = "America/New_York"
)

func (c *controller) Refresh(ctx context.Context) error {
	start := c.clock.Now()
	log.Printf("refresh starting at %v", start.Format(time.DateTime))

	// The schedule is season-static; a miss here only degrades the
	// head-to-head adjustment, it never aborts the refresh.
	if err := c.EnsureSchedule(ctx); err != nil {
		log.Printf("continuing refresh without schedule: %v", err)
	}

	teams, warnings, err := c.provider.LoadTeamStats(ctx)
	if err != nil {
		return fmt.Errorf("refresh aborted, keeping previous snapshot: %w", err)
	}

	gameLog, err := c.provider.LoadGameLog(ctx)
	if err != nil {
		// The timeline is secondary output; fall back to the last stored
		// log rather than failing the standings.
		log.Printf("game log fetch failed, keeping previous log: %v", err)
		gameLog, _ = c.cachedGameLog(ctx)
	}

	sched, _ := c.cachedSchedule(ctx)
	snap := buildSnapshot(c.roster, teams, sched, c.clock.Now())
	snap.Warnings = append(warnings, snap.Warnings...)

	if err := c.store.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("error persisting snapshot: %w", err)
	}
	if gameLog != nil {
		if err := c.store.SaveGameLog(ctx, gameLog); err != nil {
			log.Printf("error persisting game log: %v", err)
		}
	}

	c.mu.Lock()
	c.snapshot = snap
	if gameLog != nil {
		c.gameLog = gameLog
	}
	c.mu.Unlock()

	log.Printf("refresh finished, took %v", c.clock.Now().Sub(start))
	return nil
}

func (c *controller) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	// Warm start: serve whatever the last process run computed.
	snap, err := c.store.GetSnapshot(ctx)
	if err != nil {
		if errors.Is(err, db.ErrSnapshotNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()
	return snap, nil
}

func (c *controller) cachedGameLog(ctx context.Context) ([]model.GameResult, error) {
	c.mu.RLock()
	gameLog := c.gameLog
	c.mu.RUnlock()
	if gameLog != nil {
		return gameLog, nil
	}

	gameLog, err := c.store.GetGameLog(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.gameLog = gameLog
	c.mu.Unlock()
	return gameLog, nil
}

// RunPeriodicRefresh keeps the standings fresh with one scheduled pass per
// day, early enough that the previous night's games are all final.
func (c *controller) RunPeriodicRefresh(shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	loc, err := time.LoadLocation(refreshTimezone)
	if err != nil {
		log.Printf("error loading %s, scheduling refreshes in UTC: %v", refreshTimezone, err)
		loc = time.UTC
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		log.Printf("error creating refresh scheduler: %v", err)
		return
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(refreshCron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			if err := c.Refresh(ctx); err != nil {
				log.Printf("scheduled refresh failed: %v", err)
			}
		}),
	)
	if err != nil {
		log.Printf("error scheduling daily refresh: %v", err)
		return
	}

	scheduler.Start()
	<-shutdown

	if err := scheduler.Shutdown(); err != nil {
		log.Printf("error shutting down refresh scheduler: %v", err)
	}
}
