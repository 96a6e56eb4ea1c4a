package providers

import (
	"context"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
)

// ScheduleProvider defines how upstream schedule data is fetched and normalized.
type ScheduleProvider interface {
	FetchGamesForWeek(ctx context.Context, week, season int, seasonType string) ([]domaingames.Game, error)
}

// OddsProvider fetches normalized betting odds for a single game. The boolean
// result reports whether the upstream had any odds for the game; its absence
// is not an error.
type OddsProvider interface {
	FetchBettingOdds(ctx context.Context, gameID string) (odds.Odds, bool, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	OddsProvider
}
