package schedule

import (
	"context"

	"github.com/sven-0414/nhl-data-service/internal/store"
)

// teamResolver deduplicates team writes within one persistence batch. Many
// games in a batch reference the same team; writing each reference naively
// would violate the store's uniqueness constraint on team id. The resolver is
// owned by a single batch and discarded with it.
type teamResolver struct {
	store store.Store
	seen  map[int64]store.Team
}

func newTeamResolver(s store.Store) *teamResolver {
	return &teamResolver{
		store: s,
		seen:  make(map[int64]store.Team),
	}
}

// resolve returns the persisted team for ref, writing the store at most once
// per distinct team id: batch map first, then store lookup, then insert.
func (r *teamResolver) resolve(ctx context.Context, ref store.Team) (store.Team, error) {
	if cached, ok := r.seen[ref.ID]; ok {
		return cached, nil
	}

	existing, ok, err := r.store.TeamByID(ctx, ref.ID)
	if err != nil {
		return store.Team{}, err
	}
	if !ok {
		existing, err = r.store.UpsertTeam(ctx, ref)
		if err != nil {
			return store.Team{}, err
		}
	}

	r.seen[ref.ID] = existing
	return existing, nil
}
