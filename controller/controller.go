package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jdp/draft_tracker/db"
	"github.com/jdp/draft_tracker/model"
	"github.com/jdp/draft_tracker/platforms/nbastats"
)

// ErrNoData means no standings snapshot exists yet and one could not be
// computed. The web layer renders it as "data unavailable, try later".
var ErrNoData = errors.New("standings data unavailable")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Refresh runs one full fetch-then-compute pass and atomically replaces
	// the current snapshot. On any fetch failure the previous snapshot is
	// left untouched.
	Refresh(ctx context.Context) error
	// GetSnapshot returns the last completed snapshot. It never blocks on an
	// in-progress refresh.
	GetSnapshot(ctx context.Context) (*model.Snapshot, error)
	// Recalculate computes a fresh snapshot for an alternate set of draft
	// assignments using the already-fetched team stats. The default roster
	// and the current snapshot are not touched.
	Recalculate(ctx context.Context, assignments map[string][]string) (*model.Snapshot, error)
	// EliminationReport returns, per participant, the elimination decision
	// and the two quantities that justify it.
	EliminationReport(ctx context.Context) ([]model.EliminationEntry, error)
	// Timeline builds each participant's cumulative win-percentage series
	// over the given date axis from the stored game log.
	Timeline(ctx context.Context, dates []time.Time) (model.Timeline, error)
	// DateAxis returns one entry per day from the earliest logged game
	// through end, inclusive. Nil when no games are logged yet.
	DateAxis(ctx context.Context, end time.Time) ([]time.Time, error)

	// EnsureSchedule makes sure the season fixture list is cached, fetching
	// it only if the store has none. A cached non-empty schedule is never
	// silently replaced.
	EnsureSchedule(ctx context.Context) error
	// ReloadSchedule explicitly refetches the fixture list, replacing the
	// cached one.
	ReloadSchedule(ctx context.Context) error

	// GamesOn lists the scheduled fixtures on the given calendar day.
	GamesOn(ctx context.Context, date time.Time) ([]model.Fixture, error)
	// ResultsOn lists the finished games on the given calendar day.
	ResultsOn(ctx context.Context, date time.Time) ([]model.GameResult, error)

	RunPeriodicRefresh(shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock    clock.Clock
	provider nbastats.Client
	store    db.Store
	roster   model.Roster

	// mu guards the cached state below. Refresh writes under the write lock
	// only after a complete new snapshot is built, so readers always see a
	// consistent one.
	mu       sync.RWMutex
	snapshot *model.Snapshot
	schedule *model.Schedule
	gameLog  []model.GameResult
}

func New(clock clock.Clock, provider nbastats.Client, store db.Store, roster model.Roster) (C, error) {
	c := &controller{
		clock:    clock,
		provider: provider,
		store:    store,
		roster:   roster,
	}
	return c, nil
}
