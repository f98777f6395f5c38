package schedule

import (
	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/store"
)

// ToRecord flattens a game into its persistable row plus the team rows it
// references. Teams absent from the upstream payload come back nil and the
// denormalized score defaults to zero.
func ToRecord(g domain.Game) (store.Game, *store.Team, *store.Team) {
	row := store.Game{
		ID:                g.ID,
		Season:            g.Season,
		GameType:          g.GameType,
		GameDate:          g.GameDate,
		StartTimeUTC:      g.StartTimeUTC,
		EasternUTCOffset:  g.EasternUTCOffset,
		VenueUTCOffset:    g.VenueUTCOffset,
		VenueTimezone:     g.VenueTimezone,
		GameState:         string(g.GameState),
		GameScheduleState: g.GameScheduleState,
		GameCenterLink:    g.GameCenterLink,
	}

	if g.Venue != nil {
		row.Venue = g.Venue.Default
	}
	if g.HomeTeam != nil {
		row.HomeScore = g.HomeTeam.Score
	}
	if g.AwayTeam != nil {
		row.AwayScore = g.AwayTeam.Score
	}
	if pd := g.PeriodDescriptor; pd != nil {
		row.Period = pd.Number
		row.PeriodType = pd.PeriodType
		row.MaxRegulationPeriods = pd.MaxRegulationPeriods
	}
	if out := g.GameOutcome; out != nil {
		row.LastPeriodType = out.LastPeriodType
		row.OtPeriods = out.OtPeriods
	}
	if clock := g.Clock; clock != nil {
		row.TimeRemaining = clock.TimeRemaining
		row.SecondsRemaining = clock.SecondsRemaining
		row.ClockRunning = clock.Running
		row.InIntermission = clock.InIntermission
	}

	home := teamRecord(g.HomeTeam)
	away := teamRecord(g.AwayTeam)
	if home != nil {
		id := home.ID
		row.HomeTeamID = &id
	}
	if away != nil {
		id := away.ID
		row.AwayTeamID = &id
	}
	return row, home, away
}

func teamRecord(t *domain.Team) *store.Team {
	if t == nil {
		return nil
	}
	rec := &store.Team{
		ID:     t.ID,
		Abbrev: t.Abbrev,
		Logo:   t.Logo,
	}
	if t.Name != nil {
		rec.Name = t.Name.Default
	}
	if t.PlaceName != nil {
		rec.City = t.PlaceName.Default
	}
	return rec
}

// ToGame reconstructs the external game shape from persisted rows. Nested
// substructures are rebuilt only when at least one of their fields survived
// persistence; an all-empty substructure stays absent so round-trips do not
// fabricate data that was never there.
func ToGame(row store.Game, home, away *store.Team) domain.Game {
	g := domain.Game{
		ID:                row.ID,
		Season:            row.Season,
		GameType:          row.GameType,
		GameDate:          row.GameDate,
		StartTimeUTC:      row.StartTimeUTC,
		EasternUTCOffset:  row.EasternUTCOffset,
		VenueUTCOffset:    row.VenueUTCOffset,
		VenueTimezone:     row.VenueTimezone,
		GameState:         domain.GameState(row.GameState),
		GameScheduleState: row.GameScheduleState,
		GameCenterLink:    row.GameCenterLink,
	}

	if row.Venue != "" {
		g.Venue = &domain.LocalizedName{Default: row.Venue}
	}
	if row.Period > 0 || row.PeriodType != "" {
		g.PeriodDescriptor = &domain.PeriodDescriptor{
			Number:               row.Period,
			PeriodType:           row.PeriodType,
			MaxRegulationPeriods: row.MaxRegulationPeriods,
		}
	}
	if row.LastPeriodType != "" || row.OtPeriods != nil {
		g.GameOutcome = &domain.GameOutcome{
			LastPeriodType: row.LastPeriodType,
			OtPeriods:      row.OtPeriods,
		}
	}
	if row.TimeRemaining != "" || row.SecondsRemaining != nil || row.ClockRunning != nil || row.InIntermission != nil {
		g.Clock = &domain.Clock{
			TimeRemaining:    row.TimeRemaining,
			SecondsRemaining: row.SecondsRemaining,
			Running:          row.ClockRunning,
			InIntermission:   row.InIntermission,
		}
	}

	g.HomeTeam = teamShape(home, row.HomeScore)
	g.AwayTeam = teamShape(away, row.AwayScore)
	return g
}

func teamShape(t *store.Team, score int) *domain.Team {
	if t == nil {
		return nil
	}
	shape := &domain.Team{
		ID:     t.ID,
		Abbrev: t.Abbrev,
		Logo:   t.Logo,
		Score:  score,
	}
	if t.Name != "" {
		shape.Name = &domain.LocalizedName{Default: t.Name}
	}
	if t.City != "" {
		shape.PlaceName = &domain.LocalizedName{Default: t.City}
	}
	return shape
}
