package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nfl-data-service/internal/app/games"
	domaingames "nfl-data-service/internal/domain/games"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the data client. Request validation lives
// here; the client itself swallows upstream failures, so an empty result can
// mean either "no data scheduled" or "upstream unavailable".
type Handler struct {
	svc           *games.Service
	logger        *slog.Logger
	now           nowFunc
	apiConfigured bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *games.Service, logger *slog.Logger, apiConfigured bool) *Handler {
	return &Handler{
		svc:           svc,
		logger:        logger,
		now:           time.Now,
		apiConfigured: apiConfigured,
	}
}

// Root describes the service and its endpoints.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	resp := map[string]any{
		"message": "NFL Data API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"gamesForWeek":     "/games/week/{week}",
			"currentWeekGames": "/games/current-week",
			"availableWeeks":   "/games/available-weeks",
			"bettingOdds":      "/odds/{gameId}",
			"cacheInfo":        "/cache/info",
			"clearCache":       "/cache/clear",
			"health":           "/health",
		},
		"config": map[string]bool{
			"tank01ApiConfigured": h.apiConfigured,
			"usingMockData":       !h.apiConfigured,
		},
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	resp := map[string]string{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339),
	}
	if h.apiConfigured {
		resp["tank01ApiStatus"] = "connected"
	} else {
		resp["tank01ApiStatus"] = "using_mock_data"
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// WeekGames returns all games for the week in the path: /games/week/{week}.
func (h *Handler) WeekGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/games/week/")
	week, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid week", h.logger)
		return
	}
	if week < 1 || week > domaingames.RegularSeasonWeeks {
		writeError(w, r, nethttp.StatusBadRequest, "week must be between 1 and 18", h.logger)
		return
	}

	season := queryInt(r.URL.Query(), "season", domaingames.DefaultSeason)
	seasonType := r.URL.Query().Get("seasonType")
	if seasonType == "" {
		seasonType = "reg"
	}

	result := h.svc.GamesForWeek(r.Context(), week, season, seasonType)
	writeJSON(w, nethttp.StatusOK, domaingames.NewWeekResponse(week, season, result), h.logger)
}

// CurrentWeekGames returns games for the current week.
func (h *Handler) CurrentWeekGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	result := h.svc.CurrentWeekGames(r.Context())
	writeJSON(w, nethttp.StatusOK, map[string]any{"games": result}, h.logger)
}

// AvailableWeeks lists queryable weeks for a season.
func (h *Handler) AvailableWeeks(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	season := queryInt(r.URL.Query(), "season", domaingames.DefaultSeason)
	resp := map[string]any{
		"season":         season,
		"availableWeeks": h.svc.AvailableWeeks(season),
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Odds returns betting odds for the game in the path: /odds/{gameId}.
func (h *Handler) Odds(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/odds/")
	gameID, err := url.PathUnescape(raw)
	if err != nil || gameID == "" || strings.ContainsAny(gameID, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	record, found := h.svc.BettingOdds(r.Context(), gameID)
	resp := map[string]any{"gameId": gameID}
	if found {
		resp["odds"] = record
	} else {
		resp["odds"] = map[string]any{}
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// CacheInfo reports cache introspection data.
func (h *Handler) CacheInfo(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.CacheInfo(), h.logger)
}

// ClearCache drops all cached data.
func (h *Handler) ClearCache(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	h.svc.ClearCache()
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": "cache cleared"}, h.logger)
}

func queryInt(values url.Values, key string, fallback int) int {
	raw := values.Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
