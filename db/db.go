package db

import (
	"context"
	"errors"

	"github.com/jdp/draft_tracker/model"
)

var (
	ErrSnapshotNotFound = errors.New("no snapshot saved")
	ErrScheduleNotFound = errors.New("no schedule saved")
)

// Store persists the engine's computed output between refresh cycles. The
// engine only ever writes complete values: a snapshot, the season schedule,
// or the full game log, each replaced wholesale.
type Store interface {
	// GetSnapshot returns the last fully-computed standings snapshot, or
	// ErrSnapshotNotFound if nothing has been saved yet.
	GetSnapshot(ctx context.Context) (*model.Snapshot, error)
	SaveSnapshot(ctx context.Context, s *model.Snapshot) error

	// GetSchedule returns the cached season fixture list, or
	// ErrScheduleNotFound if it was never fetched.
	GetSchedule(ctx context.Context) (*model.Schedule, error)
	SaveSchedule(ctx context.Context, s *model.Schedule) error

	GetGameLog(ctx context.Context) ([]model.GameResult, error)
	SaveGameLog(ctx context.Context, log []model.GameResult) error

	Close()
}
