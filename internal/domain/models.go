package domain

// GameState mirrors the NHL api-web lifecycle vocabulary for a game.
type GameState string

const (
	StateFuture   GameState = "FUT"
	StatePregame  GameState = "PRE"
	StateLive     GameState = "LIVE"
	StateCritical GameState = "CRIT"
	StateFinal    GameState = "FINAL"
	StateOfficial GameState = "OFF"
)

// Terminal reports whether the game can no longer change.
func (s GameState) Terminal() bool {
	return s == StateFinal || s == StateOfficial
}

// LocalizedName wraps the upstream localized string shape.
type LocalizedName struct {
	Default string `json:"default"`
}

// Clock carries the live game clock. Present only while a game is running.
type Clock struct {
	TimeRemaining    string `json:"timeRemaining,omitempty"`
	SecondsRemaining *int   `json:"secondsRemaining,omitempty"`
	Running          *bool  `json:"running,omitempty"`
	InIntermission   *bool  `json:"inIntermission,omitempty"`
}

// PeriodDescriptor describes the current or final period of play.
type PeriodDescriptor struct {
	Number               int    `json:"number,omitempty"`
	PeriodType           string `json:"periodType,omitempty"`
	MaxRegulationPeriods *int   `json:"maxRegulationPeriods,omitempty"`
}

// GameOutcome describes how a finished game ended.
type GameOutcome struct {
	LastPeriodType string `json:"lastPeriodType,omitempty"`
	OtPeriods      *int   `json:"otPeriods,omitempty"`
}

// Team is a team reference as it appears on a game, including its live score.
// PlaceName and Name may be absent on partial upstream payloads.
type Team struct {
	ID        int64          `json:"id"`
	Abbrev    string         `json:"abbrev,omitempty"`
	Logo      string         `json:"logo,omitempty"`
	PlaceName *LocalizedName `json:"placeName,omitempty"`
	Name      *LocalizedName `json:"commonName,omitempty"`
	Score     int            `json:"score"`
}

// Game is the canonical game shape exposed by the service. GameDate is the
// calendar date the game is scheduled under, distinct from StartTimeUTC.
type Game struct {
	ID                int64             `json:"id"`
	Season            int               `json:"season,omitempty"`
	GameType          int               `json:"gameType,omitempty"`
	GameDate          string            `json:"gameDate,omitempty"`
	Venue             *LocalizedName    `json:"venue,omitempty"`
	StartTimeUTC      string            `json:"startTimeUTC,omitempty"`
	EasternUTCOffset  string            `json:"easternUTCOffset,omitempty"`
	VenueUTCOffset    string            `json:"venueUTCOffset,omitempty"`
	VenueTimezone     string            `json:"venueTimezone,omitempty"`
	GameState         GameState         `json:"gameState,omitempty"`
	GameScheduleState string            `json:"gameScheduleState,omitempty"`
	GameCenterLink    string            `json:"gameCenterLink,omitempty"`
	PeriodDescriptor  *PeriodDescriptor `json:"periodDescriptor,omitempty"`
	GameOutcome       *GameOutcome      `json:"gameOutcome,omitempty"`
	Clock             *Clock            `json:"clock,omitempty"`
	HomeTeam          *Team             `json:"homeTeam,omitempty"`
	AwayTeam          *Team             `json:"awayTeam,omitempty"`
}
