package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdp/draft_tracker/model"
)

const (
	snapshotFile = "snapshot.json"
	scheduleFile = "schedule.json"
	gameLogFile  = "game_log.json"
)

// NewFileStore returns a Store backed by JSON files under root. It is the
// zero-infrastructure alternative to the Postgres store for running the
// tracker off a single cache directory.
func NewFileStore(root string) (Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("error creating cache dir: %w", err)
	}
	return &fileStore{root: root}, nil
}

type fileStore struct {
	root string
}

func (f *fileStore) Close() {}

func (f *fileStore) GetSnapshot(_ context.Context) (*model.Snapshot, error) {
	var s model.Snapshot
	if err := f.read(snapshotFile, &s, ErrSnapshotNotFound); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fileStore) SaveSnapshot(_ context.Context, s *model.Snapshot) error {
	return f.write(snapshotFile, s)
}

func (f *fileStore) GetSchedule(_ context.Context) (*model.Schedule, error) {
	var s model.Schedule
	if err := f.read(scheduleFile, &s, ErrScheduleNotFound); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fileStore) SaveSchedule(_ context.Context, s *model.Schedule) error {
	return f.write(scheduleFile, s)
}

func (f *fileStore) GetGameLog(_ context.Context) ([]model.GameResult, error) {
	var log []model.GameResult
	if err := f.read(gameLogFile, &log, nil); err != nil {
		return nil, err
	}
	return log, nil
}

func (f *fileStore) SaveGameLog(_ context.Context, log []model.GameResult) error {
	return f.write(gameLogFile, log)
}

// read decodes the named file into v. A missing file maps to notFound, or to
// a silent zero value when notFound is nil.
func (f *fileStore) read(name string, v any, notFound error) error {
	b, err := os.ReadFile(filepath.Join(f.root, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return notFound
		}
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error parsing %s: %w", name, err)
	}
	return nil
}

// write replaces the named file atomically via a rename so a crashed write
// never leaves a half-written cache behind.
func (f *fileStore) write(name string, v any) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error serializing %s: %w", name, err)
	}

	path := filepath.Join(f.root, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
