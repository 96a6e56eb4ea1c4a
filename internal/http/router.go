// Package http assembles the route table for the serving layer.
package http

import (
	nethttp "net/http"

	"nfl-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/games/week/", handler.WeekGames)
	mux.HandleFunc("/games/current-week", handler.CurrentWeekGames)
	mux.HandleFunc("/games/available-weeks", handler.AvailableWeeks)
	mux.HandleFunc("/odds/", handler.Odds)
	mux.HandleFunc("/cache/info", handler.CacheInfo)
	mux.HandleFunc("/cache/clear", handler.ClearCache)
	return mux
}
