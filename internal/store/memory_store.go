package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps games and teams in memory behind a single lock. It is the
// default store when no database is configured and doubles as the test store.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[int64]Game
	teams map[int64]Team
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[int64]Game),
		teams: make(map[int64]Team),
	}
}

// GamesByDate returns persisted games for the date, ordered by id.
func (s *MemoryStore) GamesByDate(ctx context.Context, date string) ([]Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Game
	for _, g := range s.games {
		if g.GameDate == date {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// TeamByID retrieves a team by id.
func (s *MemoryStore) TeamByID(ctx context.Context, id int64) (Team, bool, error) {
	if err := ctx.Err(); err != nil {
		return Team{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[id]
	return team, ok, nil
}

// UpsertGames inserts or replaces games keyed on id.
func (s *MemoryStore) UpsertGames(ctx context.Context, games []Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range games {
		s.games[g.ID] = g
	}
	return nil
}

// UpsertTeam inserts or replaces a team keyed on id.
func (s *MemoryStore) UpsertTeam(ctx context.Context, team Team) (Team, error) {
	if err := ctx.Err(); err != nil {
		return Team{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams[team.ID] = team
	return team, nil
}

// GameCount reports the number of persisted games. Test helper.
func (s *MemoryStore) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// TeamCount reports the number of persisted teams. Test helper.
func (s *MemoryStore) TeamCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}
