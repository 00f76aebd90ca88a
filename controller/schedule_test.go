package controller

import (
	"context"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jdp/draft_tracker/db"
	"github.com/jdp/draft_tracker/db/mockdb"
	"github.com/jdp/draft_tracker/model"
	"github.com/jdp/draft_tracker/platforms/nbastats/mocknbastats"
	"github.com/stretchr/testify/mock"
)

func fixture(day int, home, away string) model.Fixture {
	return model.Fixture{
		Date: time.Date(2026, time.January, day, 19, 0, 0, 0, time.UTC),
		Home: home,
		Away: away,
	}
}

func TestHeadToHeadCounts(t *testing.T) {
	roster := rosterForTest(t, map[string][]string{
		"A": {"Thunder", "Spurs", "Magic"},
		"B": {"Hawks", "Kings"},
	})
	sched := &model.Schedule{
		Populated: true,
		Fixtures: []model.Fixture{
			fixture(10, "Thunder", "Spurs"), // A vs A
			fixture(11, "Thunder", "Magic"), // A vs A
			fixture(12, "Thunder", "Hawks"), // A vs B, no count
			fixture(13, "Hawks", "Kings"),   // B vs B
			fixture(2, "Spurs", "Magic"),    // A vs A but already played
			fixture(14, "Jazz", "Lakers"),   // undrafted vs undrafted, no count
		},
	}

	asOf := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	snap := &model.Snapshot{}
	counts := headToHeadCounts(roster, sched, asOf, snap)

	if counts["A"] != 2 {
		t.Errorf("expected 2 head-to-head fixtures for A, got %d", counts["A"])
	}
	if counts["B"] != 1 {
		t.Errorf("expected 1 head-to-head fixture for B, got %d", counts["B"])
	}
	if counts[model.UndraftedParticipant] != 0 {
		t.Errorf("expected no head-to-head count for Undrafted, got %d", counts[model.UndraftedParticipant])
	}
	if len(snap.Warnings) != 0 {
		t.Errorf("expected no warnings with a populated schedule, got %v", snap.Warnings)
	}
}

func TestHeadToHeadCounts_missingSchedule(t *testing.T) {
	roster := rosterForTest(t, map[string][]string{"A": {"Thunder", "Spurs"}})

	for _, sched := range []*model.Schedule{nil, {Populated: false}} {
		snap := &model.Snapshot{}
		counts := headToHeadCounts(roster, sched, testNow, snap)

		if len(counts) != 0 {
			t.Errorf("expected empty counts without a schedule, got %v", counts)
		}
		if len(snap.Warnings) != 1 {
			t.Errorf("expected a degradation warning, got %v", snap.Warnings)
		}
	}
}

func TestEnsureSchedule_cachedScheduleNotRefetched(t *testing.T) {
	cached := &model.Schedule{
		Populated: true,
		Fixtures:  []model.Fixture{fixture(10, "Thunder", "Spurs")},
	}

	store := &mockdb.Store{}
	store.On("GetSchedule", mock.Anything).Return(cached, nil).Once()

	provider := &mocknbastats.Client{}
	// No LoadSchedule expectation: fetching here would fail the test.

	c := newControllerForTest(t, provider, store)
	if err := c.EnsureSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second call hits the in-memory copy, not even the store.
	if err := c.EnsureSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestEnsureSchedule_fetchesWhenStoreEmpty(t *testing.T) {
	fetched := &model.Schedule{
		Populated: true,
		Fixtures:  []model.Fixture{fixture(10, "Thunder", "Spurs")},
	}

	store := &mockdb.Store{}
	store.On("GetSchedule", mock.Anything).Return(nil, db.ErrScheduleNotFound).Once()
	store.On("SaveSchedule", mock.Anything, fetched).Return(nil).Once()

	provider := &mocknbastats.Client{}
	provider.On("LoadSchedule", mock.Anything).Return(fetched, nil).Once()

	c := newControllerForTest(t, provider, store)
	if err := c.EnsureSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestReloadSchedule_replacesCachedSchedule(t *testing.T) {
	cached := &model.Schedule{
		Populated: true,
		Fixtures:  []model.Fixture{fixture(10, "Thunder", "Spurs")},
	}
	fetched := &model.Schedule{
		Populated: true,
		Fixtures: []model.Fixture{
			fixture(10, "Thunder", "Spurs"),
			fixture(11, "Magic", "Hawks"),
		},
	}

	store := &mockdb.Store{}
	store.On("GetSchedule", mock.Anything).Return(cached, nil).Once()
	store.On("SaveSchedule", mock.Anything, fetched).Return(nil).Once()

	provider := &mocknbastats.Client{}
	provider.On("LoadSchedule", mock.Anything).Return(fetched, nil).Once()

	c := newControllerForTest(t, provider, store)

	// Prime the cache, then explicitly reload.
	if err := c.EnsureSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.ReloadSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	games, err := c.GamesOn(context.Background(), time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0].Home != "Magic" {
		t.Errorf("expected the reloaded fixture list, got %v", games)
	}

	provider.AssertExpectations(t)
	store.AssertExpectations(t)
}

func newControllerForTest(t *testing.T, provider *mocknbastats.Client, store *mockdb.Store) C {
	t.Helper()

	roster := rosterForTest(t, map[string][]string{
		"A": {"Thunder", "Spurs"},
		"B": {"Magic", "Hawks"},
	})

	mockClock := clock.NewMock()
	mockClock.Set(testNow)

	c, err := New(mockClock, provider, store, roster)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c
}
