package nhle

import (
	"encoding/json"
	"log/slog"

	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/logging"
)

// scheduleResponse is the upstream envelope: a week of day groupings, each
// with a date label and the games played on that date.
type scheduleResponse struct {
	GameWeek []gameWeek `json:"gameWeek"`
}

type gameWeek struct {
	Date          string        `json:"date"`
	DayAbbrev     string        `json:"dayAbbrev"`
	NumberOfGames int           `json:"numberOfGames"`
	Games         []domain.Game `json:"games"`
}

// ParseSchedule decodes a schedule payload into a flat, ordered game list.
// Each game inherits its containing week's date label; the upstream omits the
// date on the game object itself in some payloads, and when the two disagree
// the grouping wins. Malformed payloads decode to an empty slice, logged but
// never surfaced as an error.
func ParseSchedule(data []byte, logger *slog.Logger) []domain.Game {
	var envelope scheduleResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		logging.Warn(logger, "discarding malformed schedule payload", "error", err)
		return []domain.Game{}
	}

	games := make([]domain.Game, 0)
	for _, week := range envelope.GameWeek {
		for _, g := range week.Games {
			if week.Date != "" {
				g.GameDate = week.Date
			}
			games = append(games, g)
		}
	}
	return games
}
