package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/jdp/draft_tracker/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Refresh(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	args := c.Called(ctx)

	var s *model.Snapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Snapshot)
	}

	return s, args.Error(1)
}

func (c *C) Recalculate(ctx context.Context, assignments map[string][]string) (*model.Snapshot, error) {
	args := c.Called(ctx, assignments)

	var s *model.Snapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Snapshot)
	}

	return s, args.Error(1)
}

func (c *C) EliminationReport(ctx context.Context) ([]model.EliminationEntry, error) {
	args := c.Called(ctx)

	var report []model.EliminationEntry
	if args.Get(0) != nil {
		report = args.Get(0).([]model.EliminationEntry)
	}

	return report, args.Error(1)
}

func (c *C) Timeline(ctx context.Context, dates []time.Time) (model.Timeline, error) {
	args := c.Called(ctx, dates)

	var tl model.Timeline
	if args.Get(0) != nil {
		tl = args.Get(0).(model.Timeline)
	}

	return tl, args.Error(1)
}

func (c *C) DateAxis(ctx context.Context, end time.Time) ([]time.Time, error) {
	args := c.Called(ctx, end)

	var dates []time.Time
	if args.Get(0) != nil {
		dates = args.Get(0).([]time.Time)
	}

	return dates, args.Error(1)
}

func (c *C) EnsureSchedule(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) ReloadSchedule(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) GamesOn(ctx context.Context, date time.Time) ([]model.Fixture, error) {
	args := c.Called(ctx, date)

	var fixtures []model.Fixture
	if args.Get(0) != nil {
		fixtures = args.Get(0).([]model.Fixture)
	}

	return fixtures, args.Error(1)
}

func (c *C) ResultsOn(ctx context.Context, date time.Time) ([]model.GameResult, error) {
	args := c.Called(ctx, date)

	var results []model.GameResult
	if args.Get(0) != nil {
		results = args.Get(0).([]model.GameResult)
	}

	return results, args.Error(1)
}

func (c *C) RunPeriodicRefresh(shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(shutdown, wg)
}
