// Package tank01 fetches NFL schedules and betting odds from the Tank01
// RapidAPI provider and maps its semi-structured payloads into domain records.
package tank01

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domaingames "nfl-data-service/internal/domain/games"
	"nfl-data-service/internal/domain/odds"
	"nfl-data-service/internal/logging"
	"nfl-data-service/internal/providers"
)

// Config controls how the tank01 client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the Tank01 API. With no API key configured it performs no
// network calls and reports providers.ErrNoAPIKey instead.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a tank01 client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// Configured reports whether live fetches are possible.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// FetchGamesForWeek retrieves and normalizes the schedule for one week.
// Individually malformed entries are skipped, never fatal.
func (c *Client) FetchGamesForWeek(ctx context.Context, week, season int, seasonType string) ([]domaingames.Game, error) {
	params := url.Values{}
	params.Set("week", strconv.Itoa(week))
	params.Set("seasonType", seasonType)
	params.Set("season", strconv.Itoa(season))

	raw, err := c.fetch(ctx, endpointGamesForWeek, params)
	if err != nil {
		return nil, err
	}

	games, skipped := normalizeSchedule(raw, c.logger)
	logging.Info(c.logger, "parsed schedule payload",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int(logging.FieldSkipped, skipped),
		slog.Int(logging.FieldWeek, week),
		slog.Int(logging.FieldSeason, season),
	)
	return games, nil
}

// FetchBettingOdds retrieves and normalizes odds for one game. A game the
// upstream has no odds for yields (zero, false, nil).
func (c *Client) FetchBettingOdds(ctx context.Context, gameID string) (odds.Odds, bool, error) {
	params := url.Values{}
	params.Set("gameID", gameID)
	params.Set("itemFormat", "map")
	params.Set("impliedTotals", "true")

	raw, err := c.fetch(ctx, endpointBettingOdds, params)
	if err != nil {
		return odds.Odds{}, false, err
	}

	record, ok := normalizeOdds(raw, gameID, c.logger)
	if !ok {
		logging.Warn(c.logger, "game not found in betting odds response",
			slog.String(logging.FieldGameID, gameID))
	}
	return record, ok, nil
}

// fetch issues one authenticated GET and returns the decoded body without
// interpreting its shape.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, providers.ErrNoAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, &providers.UpstreamError{Provider: ProviderName, Endpoint: endpoint, Err: err}
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.UpstreamError{Provider: ProviderName, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.UpstreamError{
			Provider:   ProviderName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.UpstreamError{Provider: ProviderName, Endpoint: endpoint, Err: err}
	}
	return payload, nil
}
