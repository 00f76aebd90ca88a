package mocknbastats

import (
	"context"

	"github.com/jdp/draft_tracker/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadTeamStats(ctx context.Context) ([]model.TeamStats, []string, error) {
	args := c.Called(ctx)

	var stats []model.TeamStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]model.TeamStats)
	}

	var warnings []string
	if args.Get(1) != nil {
		warnings = args.Get(1).([]string)
	}

	return stats, warnings, args.Error(2)
}

func (c *Client) LoadSchedule(ctx context.Context) (*model.Schedule, error) {
	args := c.Called(ctx)

	var s *model.Schedule
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Schedule)
	}

	return s, args.Error(1)
}

func (c *Client) LoadGameLog(ctx context.Context) ([]model.GameResult, error) {
	args := c.Called(ctx)

	var log []model.GameResult
	if args.Get(0) != nil {
		log = args.Get(0).([]model.GameResult)
	}

	return log, args.Error(1)
}
