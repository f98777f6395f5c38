package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/sven-0414/nhl-data-service/internal/store"
)

// Store persists games and teams in PostgreSQL. Upserts conflict on the
// natural keys (game id, team id) so duplicate writes from concurrent cache
// misses resolve to last-write-wins.
type Store struct {
	db *sql.DB
}

// Open connects to the database, verifies the connection, and ensures the
// schema exists.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an existing connection pool without schema setup.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the teams and games tables when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			id BIGINT PRIMARY KEY,
			abbrev TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			logo TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			id BIGINT PRIMARY KEY,
			season INT NOT NULL DEFAULT 0,
			game_type INT NOT NULL DEFAULT 0,
			game_date TEXT NOT NULL,
			venue TEXT NOT NULL DEFAULT '',
			start_time_utc TEXT NOT NULL DEFAULT '',
			eastern_utc_offset TEXT NOT NULL DEFAULT '',
			venue_utc_offset TEXT NOT NULL DEFAULT '',
			venue_timezone TEXT NOT NULL DEFAULT '',
			game_state TEXT NOT NULL DEFAULT '',
			game_schedule_state TEXT NOT NULL DEFAULT '',
			game_center_link TEXT NOT NULL DEFAULT '',
			home_score INT NOT NULL DEFAULT 0,
			away_score INT NOT NULL DEFAULT 0,
			period INT NOT NULL DEFAULT 0,
			period_type TEXT NOT NULL DEFAULT '',
			max_regulation_periods INT,
			last_period_type TEXT NOT NULL DEFAULT '',
			ot_periods INT,
			time_remaining TEXT NOT NULL DEFAULT '',
			seconds_remaining INT,
			clock_running BOOLEAN,
			in_intermission BOOLEAN,
			home_team_id BIGINT REFERENCES teams(id),
			away_team_id BIGINT REFERENCES teams(id)
		)`,
		`CREATE INDEX IF NOT EXISTS games_game_date_idx ON games (game_date)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: ensuring schema: %w", err)
		}
	}
	return nil
}

const gameColumns = `id, season, game_type, game_date, venue, start_time_utc,
	eastern_utc_offset, venue_utc_offset, venue_timezone, game_state,
	game_schedule_state, game_center_link, home_score, away_score, period,
	period_type, max_regulation_periods, last_period_type, ot_periods,
	time_remaining, seconds_remaining, clock_running, in_intermission,
	home_team_id, away_team_id`

// GamesByDate returns persisted games for the calendar date, ordered by id.
func (s *Store) GamesByDate(ctx context.Context, date string) ([]store.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE game_date = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("postgres: query games for %s: %w", date, err)
	}
	defer rows.Close()

	var games []store.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate games: %w", err)
	}
	return games, nil
}

// TeamByID returns the persisted team and whether it exists.
func (s *Store) TeamByID(ctx context.Context, id int64) (store.Team, bool, error) {
	query := `SELECT id, abbrev, name, city, logo FROM teams WHERE id = $1`

	var team store.Team
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID, &team.Abbrev, &team.Name, &team.City, &team.Logo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Team{}, false, nil
	}
	if err != nil {
		return store.Team{}, false, fmt.Errorf("postgres: query team %d: %w", id, err)
	}
	return team, true, nil
}

const upsertGameQuery = `
	INSERT INTO games (` + gameColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	ON CONFLICT (id) DO UPDATE SET
		season = EXCLUDED.season,
		game_type = EXCLUDED.game_type,
		game_date = EXCLUDED.game_date,
		venue = EXCLUDED.venue,
		start_time_utc = EXCLUDED.start_time_utc,
		eastern_utc_offset = EXCLUDED.eastern_utc_offset,
		venue_utc_offset = EXCLUDED.venue_utc_offset,
		venue_timezone = EXCLUDED.venue_timezone,
		game_state = EXCLUDED.game_state,
		game_schedule_state = EXCLUDED.game_schedule_state,
		game_center_link = EXCLUDED.game_center_link,
		home_score = EXCLUDED.home_score,
		away_score = EXCLUDED.away_score,
		period = EXCLUDED.period,
		period_type = EXCLUDED.period_type,
		max_regulation_periods = EXCLUDED.max_regulation_periods,
		last_period_type = EXCLUDED.last_period_type,
		ot_periods = EXCLUDED.ot_periods,
		time_remaining = EXCLUDED.time_remaining,
		seconds_remaining = EXCLUDED.seconds_remaining,
		clock_running = EXCLUDED.clock_running,
		in_intermission = EXCLUDED.in_intermission,
		home_team_id = EXCLUDED.home_team_id,
		away_team_id = EXCLUDED.away_team_id`

// UpsertGames writes the batch in one transaction, keyed on game id.
func (s *Store) UpsertGames(ctx context.Context, games []store.Game) error {
	if len(games) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertGameQuery)
	if err != nil {
		return fmt.Errorf("postgres: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, g := range games {
		_, err := stmt.ExecContext(ctx,
			g.ID, g.Season, g.GameType, g.GameDate, g.Venue, g.StartTimeUTC,
			g.EasternUTCOffset, g.VenueUTCOffset, g.VenueTimezone, g.GameState,
			g.GameScheduleState, g.GameCenterLink, g.HomeScore, g.AwayScore,
			g.Period, g.PeriodType, g.MaxRegulationPeriods, g.LastPeriodType,
			g.OtPeriods, g.TimeRemaining, g.SecondsRemaining, g.ClockRunning,
			g.InIntermission, g.HomeTeamID, g.AwayTeamID,
		)
		if err != nil {
			return fmt.Errorf("postgres: upsert game %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit upsert: %w", err)
	}
	return nil
}

// UpsertTeam writes a team keyed on id and returns the persisted row.
func (s *Store) UpsertTeam(ctx context.Context, team store.Team) (store.Team, error) {
	query := `
		INSERT INTO teams (id, abbrev, name, city, logo)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			abbrev = EXCLUDED.abbrev,
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			logo = EXCLUDED.logo
		RETURNING id, abbrev, name, city, logo`

	var saved store.Team
	err := s.db.QueryRowContext(ctx, query,
		team.ID, team.Abbrev, team.Name, team.City, team.Logo,
	).Scan(&saved.ID, &saved.Abbrev, &saved.Name, &saved.City, &saved.Logo)
	if err != nil {
		return store.Team{}, fmt.Errorf("postgres: upsert team %d: %w", team.ID, err)
	}
	return saved, nil
}

func scanGame(rows *sql.Rows) (store.Game, error) {
	var (
		g                store.Game
		maxRegulation    sql.NullInt64
		otPeriods        sql.NullInt64
		secondsRemaining sql.NullInt64
		clockRunning     sql.NullBool
		inIntermission   sql.NullBool
		homeTeamID       sql.NullInt64
		awayTeamID       sql.NullInt64
	)

	err := rows.Scan(
		&g.ID, &g.Season, &g.GameType, &g.GameDate, &g.Venue, &g.StartTimeUTC,
		&g.EasternUTCOffset, &g.VenueUTCOffset, &g.VenueTimezone, &g.GameState,
		&g.GameScheduleState, &g.GameCenterLink, &g.HomeScore, &g.AwayScore,
		&g.Period, &g.PeriodType, &maxRegulation, &g.LastPeriodType,
		&otPeriods, &g.TimeRemaining, &secondsRemaining, &clockRunning,
		&inIntermission, &homeTeamID, &awayTeamID,
	)
	if err != nil {
		return store.Game{}, err
	}

	g.MaxRegulationPeriods = nullableInt(maxRegulation)
	g.OtPeriods = nullableInt(otPeriods)
	g.SecondsRemaining = nullableInt(secondsRemaining)
	g.ClockRunning = nullableBool(clockRunning)
	g.InIntermission = nullableBool(inIntermission)
	g.HomeTeamID = nullableInt64(homeTeamID)
	g.AwayTeamID = nullableInt64(awayTeamID)
	return g, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	val := int(v.Int64)
	return &val
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	val := v.Int64
	return &val
}

func nullableBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	val := v.Bool
	return &val
}
