package mockdb

import (
	"context"

	"github.com/jdp/draft_tracker/model"
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (db *Store) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	args := db.Called(ctx)

	var s *model.Snapshot
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Snapshot)
	}

	return s, args.Error(1)
}

func (db *Store) SaveSnapshot(ctx context.Context, s *model.Snapshot) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *Store) GetSchedule(ctx context.Context) (*model.Schedule, error) {
	args := db.Called(ctx)

	var s *model.Schedule
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Schedule)
	}

	return s, args.Error(1)
}

func (db *Store) SaveSchedule(ctx context.Context, s *model.Schedule) error {
	args := db.Called(ctx, s)
	return args.Error(0)
}

func (db *Store) GetGameLog(ctx context.Context) ([]model.GameResult, error) {
	args := db.Called(ctx)

	var log []model.GameResult
	if args.Get(0) != nil {
		log = args.Get(0).([]model.GameResult)
	}

	return log, args.Error(1)
}

func (db *Store) SaveGameLog(ctx context.Context, log []model.GameResult) error {
	args := db.Called(ctx, log)
	return args.Error(0)
}

func (db *Store) Close() {
	db.Called()
}
