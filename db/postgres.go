package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdp/draft_tracker/model"
)

func New(ctx context.Context, connString string, clock clock.Clock) (Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresStore{pool: pool, clock: clock}, nil
}

type postgresStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresStore) Close() {
	db.pool.Close()
}

func (db *postgresStore) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	const query = `SELECT payload FROM snapshots ORDER BY updated DESC LIMIT 1`

	var payload []byte
	if err := db.pool.QueryRow(ctx, query).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	var s model.Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("error parsing stored snapshot: %w", err)
	}
	return &s, nil
}

func (db *postgresStore) SaveSnapshot(ctx context.Context, s *model.Snapshot) error {
	const query = `INSERT INTO snapshots(updated, payload) VALUES(@updated, @payload)`

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("error serializing snapshot: %w", err)
	}

	args := pgx.NamedArgs{
		"updated": s.Updated,
		"payload": payload,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}
	return nil
}

func (db *postgresStore) GetSchedule(ctx context.Context) (*model.Schedule, error) {
	payload, err := db.getSingleton(ctx, "schedule")
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	var s model.Schedule
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("error parsing stored schedule: %w", err)
	}
	return &s, nil
}

func (db *postgresStore) SaveSchedule(ctx context.Context, s *model.Schedule) error {
	return db.saveSingleton(ctx, "schedule", s)
}

func (db *postgresStore) GetGameLog(ctx context.Context) ([]model.GameResult, error) {
	payload, err := db.getSingleton(ctx, "game_log")
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// An empty log and a never-saved log read the same.
			return nil, nil
		}
		return nil, err
	}

	var log []model.GameResult
	if err := json.Unmarshal(payload, &log); err != nil {
		return nil, fmt.Errorf("error parsing stored game log: %w", err)
	}
	return log, nil
}

func (db *postgresStore) SaveGameLog(ctx context.Context, log []model.GameResult) error {
	return db.saveSingleton(ctx, "game_log", log)
}

// Single-row documents like the season schedule and the game log live in the
// documents table keyed by name.
func (db *postgresStore) getSingleton(ctx context.Context, name string) ([]byte, error) {
	const query = `SELECT payload FROM documents WHERE name=@name`

	var payload []byte
	err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"name": name}).Scan(&payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (db *postgresStore) saveSingleton(ctx context.Context, name string, v any) error {
	const query = `INSERT INTO documents(name, updated, payload) VALUES(@name, @updated, @payload)
			ON CONFLICT (name) DO UPDATE SET updated=EXCLUDED.updated, payload=EXCLUDED.payload`

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error serializing %s: %w", name, err)
	}

	args := pgx.NamedArgs{
		"name":    name,
		"updated": db.clock.Now().UTC(),
		"payload": payload,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving %s: %w", name, err)
	}
	return nil
}
