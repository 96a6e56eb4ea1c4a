package tank01

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nfl-data-service/internal/providers"
)

func TestFetchGamesForWeekSendsAuthAndParams(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"body": [` + wellFormedGame + `]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	games, err := client.FetchGamesForWeek(context.Background(), 1, 2025, "reg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected one game, got %d", len(games))
	}

	if gotReq.URL.Path != "/getNFLGamesForWeek" {
		t.Fatalf("unexpected path %s", gotReq.URL.Path)
	}
	q := gotReq.URL.Query()
	if q.Get("week") != "1" || q.Get("season") != "2025" || q.Get("seasonType") != "reg" {
		t.Fatalf("unexpected query %s", gotReq.URL.RawQuery)
	}
	if gotReq.Header.Get("X-RapidAPI-Key") != "secret" {
		t.Fatal("expected API key header")
	}
	if gotReq.Header.Get("X-RapidAPI-Host") == "" {
		t.Fatal("expected API host header")
	}
}

func TestFetchBettingOddsSendsFormatParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(oddsPayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	record, found, err := client.FetchBettingOdds(context.Background(), "20250904_DAL@PHI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || record.GameID != "20250904_DAL@PHI" {
		t.Fatalf("expected odds found, got %v (found=%v)", record, found)
	}

	parsed, err := http.NewRequest(http.MethodGet, "/?"+gotQuery, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := parsed.URL.Query()
	if q.Get("gameID") != "20250904_DAL@PHI" || q.Get("itemFormat") != "map" || q.Get("impliedTotals") != "true" {
		t.Fatalf("unexpected query %s", gotQuery)
	}
}

func TestFetchWithoutAPIKeyShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if client.Configured() {
		t.Fatal("expected client to report unconfigured")
	}

	_, err := client.FetchGamesForWeek(context.Background(), 1, 2025, "reg")
	if !errors.Is(err, providers.ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
	if called {
		t.Fatal("expected no network call without an API key")
	}
}

func TestFetchNon2xxYieldsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	_, err := client.FetchGamesForWeek(context.Background(), 1, 2025, "reg")

	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", upErr.StatusCode)
	}
}

func TestFetchTransportFailureYieldsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	_, err := client.FetchGamesForWeek(context.Background(), 1, 2025, "reg")

	if _, ok := providers.AsUpstreamError(err); !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestFetchMalformedJSONYieldsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})
	_, _, err := client.FetchBettingOdds(context.Background(), "x")

	if _, ok := providers.AsUpstreamError(err); !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestNormalizeBaseURLTrimsSlash(t *testing.T) {
	if got := normalizeBaseURL("https://example.com/"); got != "https://example.com" {
		t.Fatalf("unexpected base url %q", got)
	}
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", got)
	}
}
