package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/logging"
	"github.com/sven-0414/nhl-data-service/internal/metrics"
	"github.com/sven-0414/nhl-data-service/internal/store"
)

// Fetcher retrieves the upstream schedule for one calendar date.
type Fetcher interface {
	FetchGames(ctx context.Context, date string) ([]domain.Game, error)
}

// Cache answers games-by-date queries from the store or the upstream API.
//
// Live-required dates (today or later) always fetch live and are never
// persisted; their games are still mutating. Past dates are served from the
// store, falling back to a fetch-and-persist on a miss. An upstream failure
// degrades to an empty result; only store failures surface to the caller.
type Cache struct {
	store    store.Store
	fetcher  Fetcher
	provider string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// New constructs a Cache. The provider name labels fetch metrics.
func New(st store.Store, fetcher Fetcher, provider string, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	if provider == "" {
		provider = "upstream"
	}
	return &Cache{
		store:    st,
		fetcher:  fetcher,
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// GamesByDate returns all games scheduled on the calendar date (YYYY-MM-DD),
// ordered as the source produced them.
func (c *Cache) GamesByDate(ctx context.Context, date string) ([]domain.Game, error) {
	logger := logging.FromContext(ctx, c.logger)

	if RequiresLiveFetch(date, c.now()) {
		batch := c.fetchUpstream(ctx, date, logger)
		c.metrics.RecordCacheLookup(metrics.CacheLive)
		return filterByDate(batch, date), nil
	}

	rows, err := c.store.GamesByDate(ctx, date)
	if err != nil {
		c.metrics.RecordCacheLookup(metrics.CacheError)
		return nil, fmt.Errorf("schedule: reading store for %s: %w", date, err)
	}

	if len(rows) > 0 {
		games, err := c.fromStore(ctx, rows)
		if err != nil {
			c.metrics.RecordCacheLookup(metrics.CacheError)
			return nil, err
		}
		c.metrics.RecordCacheLookup(metrics.CacheHit)
		logging.Info(logger, "served games from store",
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(games)),
			slog.String(logging.FieldSource, "store"),
		)
		return games, nil
	}

	batch := c.fetchUpstream(ctx, date, logger)
	// The upstream answers with a whole week. Persist every game in it that
	// is already settled history, not just the requested date, so one miss
	// warms the adjacent past dates too. Live-required dates in the batch are
	// still mutating and stay out of the store.
	if settled := c.pastGames(batch); len(settled) > 0 {
		if err := c.persist(ctx, settled); err != nil {
			c.metrics.RecordCacheLookup(metrics.CacheError)
			return nil, err
		}
		logging.Info(logger, "persisted fetched games",
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(settled)),
		)
	}
	c.metrics.RecordCacheLookup(metrics.CacheMiss)
	return filterByDate(batch, date), nil
}

// fetchUpstream fetches the schedule batch containing date. Any upstream
// failure is recovered here as "no games"; callers cannot distinguish a
// failed fetch from an empty day, which is the intended availability
// trade-off.
func (c *Cache) fetchUpstream(ctx context.Context, date string, logger *slog.Logger) []domain.Game {
	start := time.Now()
	games, err := c.fetcher.FetchGames(ctx, date)
	c.metrics.RecordFetchAttempt(c.provider, time.Since(start), err)
	if err != nil {
		logging.Warn(logger, "schedule fetch failed, serving no games",
			slog.String(logging.FieldDate, date),
			slog.String(logging.FieldProvider, c.provider),
			"error", err,
		)
		return []domain.Game{}
	}
	return games
}

// pastGames keeps the games scheduled on strictly-past dates.
func (c *Cache) pastGames(games []domain.Game) []domain.Game {
	now := c.now()
	settled := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if !RequiresLiveFetch(g.GameDate, now) {
			settled = append(settled, g)
		}
	}
	return settled
}

// filterByDate drops games whose scheduling date disagrees with the
// requested one. The upstream returns a whole week per request, and a game
// mislabeled across a week boundary is not trustworthy for this date.
func filterByDate(games []domain.Game, date string) []domain.Game {
	filtered := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if g.GameDate == date {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func (c *Cache) fromStore(ctx context.Context, rows []store.Game) ([]domain.Game, error) {
	// Team rows repeat across games on the same date; look each id up once.
	teams := make(map[int64]*store.Team)
	lookup := func(id *int64) (*store.Team, error) {
		if id == nil {
			return nil, nil
		}
		if cached, ok := teams[*id]; ok {
			return cached, nil
		}
		team, ok, err := c.store.TeamByID(ctx, *id)
		if err != nil {
			return nil, fmt.Errorf("schedule: reading team %d: %w", *id, err)
		}
		if !ok {
			teams[*id] = nil
			return nil, nil
		}
		copied := team
		teams[*id] = &copied
		return &copied, nil
	}

	games := make([]domain.Game, 0, len(rows))
	for _, row := range rows {
		home, err := lookup(row.HomeTeamID)
		if err != nil {
			return nil, err
		}
		away, err := lookup(row.AwayTeamID)
		if err != nil {
			return nil, err
		}
		games = append(games, ToGame(row, home, away))
	}
	return games, nil
}

func (c *Cache) persist(ctx context.Context, games []domain.Game) error {
	resolver := newTeamResolver(c.store)

	rows := make([]store.Game, 0, len(games))
	for _, g := range games {
		row, home, away := ToRecord(g)
		if home != nil {
			if _, err := resolver.resolve(ctx, *home); err != nil {
				return fmt.Errorf("schedule: resolving team %d: %w", home.ID, err)
			}
		}
		if away != nil {
			if _, err := resolver.resolve(ctx, *away); err != nil {
				return fmt.Errorf("schedule: resolving team %d: %w", away.ID, err)
			}
		}
		rows = append(rows, row)
	}

	if err := c.store.UpsertGames(ctx, rows); err != nil {
		return fmt.Errorf("schedule: persisting games: %w", err)
	}
	return nil
}
