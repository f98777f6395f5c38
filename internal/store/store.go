package store

import "context"

// Game is the flattened persisted shape of a game. Nested upstream
// substructures are denormalized onto the row; empty string / nil means the
// substructure field was never present.
type Game struct {
	ID                int64
	Season            int
	GameType          int
	GameDate          string
	Venue             string
	StartTimeUTC      string
	EasternUTCOffset  string
	VenueUTCOffset    string
	VenueTimezone     string
	GameState         string
	GameScheduleState string
	GameCenterLink    string
	HomeScore         int
	AwayScore         int

	// PeriodDescriptor fields.
	Period               int
	PeriodType           string
	MaxRegulationPeriods *int

	// GameOutcome fields.
	LastPeriodType string
	OtPeriods      *int

	// Clock fields, set only for games persisted mid-play.
	TimeRemaining    string
	SecondsRemaining *int
	ClockRunning     *bool
	InIntermission   *bool

	HomeTeamID *int64
	AwayTeamID *int64
}

// Team is the persisted shape of a team, shared across games and seasons.
type Team struct {
	ID     int64
	Abbrev string
	Name   string
	City   string
	Logo   string
}

// Store defines the persistence contract consumed by the schedule cache.
// Implementations must make upserts idempotent on the natural keys (game id,
// team id) so duplicate writes from concurrent cache misses are absorbed.
type Store interface {
	// GamesByDate returns all persisted games scheduled under the given
	// calendar date (YYYY-MM-DD).
	GamesByDate(ctx context.Context, date string) ([]Game, error)
	// TeamByID returns the persisted team and whether it exists.
	TeamByID(ctx context.Context, id int64) (Team, bool, error)
	// UpsertGames inserts or updates the batch keyed on game id.
	UpsertGames(ctx context.Context, games []Game) error
	// UpsertTeam inserts or updates a team keyed on team id and returns the
	// persisted row.
	UpsertTeam(ctx context.Context, team Team) (Team, error)
}
