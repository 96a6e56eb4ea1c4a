package teststubs

import (
	"context"
	"sync/atomic"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Games     []domaingames.Game
	GamesErr  error
	Odds      odds.Odds
	OddsFound bool
	OddsErr   error

	GameCalls atomic.Int32
	OddsCalls atomic.Int32
}

// FetchGamesForWeek returns the configured games and error while tracking calls.
func (s *StubProvider) FetchGamesForWeek(ctx context.Context, week, season int, seasonType string) ([]domaingames.Game, error) {
	_ = ctx
	_ = week
	_ = season
	_ = seasonType
	s.GameCalls.Add(1)
	return s.Games, s.GamesErr
}

// FetchBettingOdds returns the configured odds result while tracking calls.
func (s *StubProvider) FetchBettingOdds(ctx context.Context, gameID string) (odds.Odds, bool, error) {
	_ = ctx
	_ = gameID
	s.OddsCalls.Add(1)
	return s.Odds, s.OddsFound, s.OddsErr
}
