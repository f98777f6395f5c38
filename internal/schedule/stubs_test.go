package schedule

import (
	"context"
	"errors"
	"sync"

	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/store"
)

// countingStore wraps a MemoryStore and counts writes, optionally failing
// selected operations.
type countingStore struct {
	*store.MemoryStore

	mu              sync.Mutex
	teamUpserts     map[int64]int
	gameUpsertCalls int
	teamLookups     int

	failGamesByDate bool
	failUpserts     bool
}

func newCountingStore() *countingStore {
	return &countingStore{
		MemoryStore: store.NewMemoryStore(),
		teamUpserts: make(map[int64]int),
	}
}

func (s *countingStore) GamesByDate(ctx context.Context, date string) ([]store.Game, error) {
	if s.failGamesByDate {
		return nil, errors.New("store unavailable")
	}
	return s.MemoryStore.GamesByDate(ctx, date)
}

func (s *countingStore) TeamByID(ctx context.Context, id int64) (store.Team, bool, error) {
	s.mu.Lock()
	s.teamLookups++
	s.mu.Unlock()
	return s.MemoryStore.TeamByID(ctx, id)
}

func (s *countingStore) UpsertGames(ctx context.Context, games []store.Game) error {
	if s.failUpserts {
		return errors.New("store unavailable")
	}
	s.mu.Lock()
	s.gameUpsertCalls++
	s.mu.Unlock()
	return s.MemoryStore.UpsertGames(ctx, games)
}

func (s *countingStore) UpsertTeam(ctx context.Context, team store.Team) (store.Team, error) {
	if s.failUpserts {
		return store.Team{}, errors.New("store unavailable")
	}
	s.mu.Lock()
	s.teamUpserts[team.ID]++
	s.mu.Unlock()
	return s.MemoryStore.UpsertTeam(ctx, team)
}

// stubFetcher returns canned games or an error and records the dates it saw.
type stubFetcher struct {
	games []domain.Game
	err   error
	dates []string
}

func (f *stubFetcher) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}
	return f.games, nil
}
