// Package games orchestrates the fetch-cache-normalize pipeline behind the
// serving layer: check the cache, otherwise pace the upstream call, normalize
// the response, and remember non-empty results until the weekly horizon.
package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"nfl-data-service/internal/cache"
	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/logging"
	"nfl-data-service/internal/metrics"
	"nfl-data-service/internal/providers"
)

const (
	lookupGames = "games"
	lookupOdds  = "odds"
)

// Service is the stable query API consumed by the serving layer. Failures
// upstream degrade to empty results; callers cannot distinguish "no games"
// from "fetch failed" by design (see the HTTP layer's documentation).
type Service struct {
	provider     providers.DataProvider
	providerName string
	cache        *cache.Cache
	throttle     *providers.Throttle
	logger       *slog.Logger
	metrics      *metrics.Recorder
	flight       singleflight.Group
}

// NewService wires a Service from its collaborators. logger and recorder may
// be nil.
func NewService(provider providers.DataProvider, providerName string, store *cache.Cache, throttle *providers.Throttle, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider:     provider,
		providerName: providerName,
		cache:        store,
		throttle:     throttle,
		logger:       logger,
		metrics:      recorder,
	}
}

// GamesForWeek returns the schedule for one week, from cache when possible.
// The result is empty both when the upstream has no games and when the fetch
// failed; failures are logged, never propagated.
func (s *Service) GamesForWeek(ctx context.Context, week, season int, seasonType string) []domaingames.Game {
	key := fmt.Sprintf("games_week_%d_season_%d", week, season)

	if cached, ok := s.cache.Get(key); ok {
		if games, ok := cached.([]domaingames.Game); ok {
			s.metrics.RecordCacheLookup(lookupGames, true)
			return games
		}
	}
	s.metrics.RecordCacheLookup(lookupGames, false)

	result, err, _ := s.flight.Do(key, func() (any, error) {
		if err := s.throttle.Wait(ctx); err != nil {
			return nil, err
		}
		start := time.Now()
		fetched, err := s.provider.FetchGamesForWeek(ctx, week, season, seasonType)
		s.recordAttempt(start, err)
		if err != nil {
			return nil, err
		}
		if len(fetched) > 0 {
			s.cache.Put(key, fetched)
		}
		return fetched, nil
	})
	if err != nil {
		s.logFetchFailure("no games data available", err,
			slog.Int(logging.FieldWeek, week),
			slog.Int(logging.FieldSeason, season),
		)
		return []domaingames.Game{}
	}

	games, _ := result.([]domaingames.Game)
	if games == nil {
		games = []domaingames.Game{}
	}
	return games
}

// CurrentWeekGames returns games for the current week. The current week is
// pinned to week 1 of the default season until real week derivation lands.
// TODO: derive the active week from the season start date instead.
func (s *Service) CurrentWeekGames(ctx context.Context) []domaingames.Game {
	return s.GamesForWeek(ctx, 1, domaingames.DefaultSeason, "reg")
}

// AvailableWeeks lists the weeks a season can be queried for. Pure, no I/O.
func (s *Service) AvailableWeeks(season int) []int {
	weeks := make([]int, domaingames.RegularSeasonWeeks)
	for i := range weeks {
		weeks[i] = i + 1
	}
	return weeks
}

// BettingOdds returns odds for one game, from cache when possible. The false
// result covers both "no odds published yet" and any upstream failure.
func (s *Service) BettingOdds(ctx context.Context, gameID string) (odds.Odds, bool) {
	key := "betting_odds_" + gameID

	if cached, ok := s.cache.Get(key); ok {
		if record, ok := cached.(odds.Odds); ok {
			s.metrics.RecordCacheLookup(lookupOdds, true)
			return record, true
		}
	}
	s.metrics.RecordCacheLookup(lookupOdds, false)

	type oddsResult struct {
		record odds.Odds
		found  bool
	}
	result, err, _ := s.flight.Do(key, func() (any, error) {
		if err := s.throttle.Wait(ctx); err != nil {
			return nil, err
		}
		start := time.Now()
		record, found, err := s.provider.FetchBettingOdds(ctx, gameID)
		s.recordAttempt(start, err)
		if err != nil {
			return nil, err
		}
		if found {
			s.cache.Put(key, record)
		}
		return oddsResult{record: record, found: found}, nil
	})
	if err != nil {
		s.logFetchFailure("no betting odds available", err,
			slog.String(logging.FieldGameID, gameID))
		return odds.Odds{}, false
	}

	res, ok := result.(oddsResult)
	if !ok {
		return odds.Odds{}, false
	}
	return res.record, res.found
}

// ClearCache drops every cached entry.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// CacheInfo reports cache introspection data.
func (s *Service) CacheInfo() cache.Info {
	return s.cache.Info()
}

func (s *Service) recordAttempt(start time.Time, err error) {
	s.metrics.RecordProviderAttempt(s.providerName, time.Since(start), err)
	if upErr, ok := providers.AsUpstreamError(err); ok && upErr.StatusCode == http.StatusTooManyRequests {
		s.metrics.RecordRateLimit(s.providerName)
	}
}

func (s *Service) logFetchFailure(msg string, err error, attrs ...any) {
	if errors.Is(err, providers.ErrNoAPIKey) {
		// Expected in mock/no-data mode; keep it quiet.
		logging.Info(s.logger, msg, append(attrs, "reason", "no api key")...)
		return
	}
	logging.Warn(s.logger, msg, append(attrs, "error", err)...)
}
