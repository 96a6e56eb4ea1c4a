package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nfl-data-service/internal/config"
	"nfl-data-service/internal/metrics"
	"nfl-data-service/internal/teststubs"
)

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

func testConfig() config.Config {
	return config.Config{
		Port: "0",
		Cache: config.CacheConfig{
			MinWindow:  time.Hour,
			RefreshDay: time.Tuesday,
		},
		Tank01: config.Tank01Config{
			RequestInterval: time.Millisecond,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func TestNewServerWiresRoutes(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, &teststubs.StubProvider{}, false)

	rr := httptest.NewRecorder()
	srv.httpServer.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["tank01ApiStatus"] != "using_mock_data" {
		t.Fatalf("unexpected api status %q", body["tank01ApiStatus"])
	}
}

func TestNewWithoutAPIKeyReportsMockMode(t *testing.T) {
	srv := New(testConfig(), nil)

	rr := httptest.NewRecorder()
	srv.httpServer.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["tank01ApiStatus"] != "using_mock_data" {
		t.Fatalf("expected mock mode without API key, got %q", body["tank01ApiStatus"])
	}
}

func TestBuildMetricsFailureFallsBack(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter unavailable")
	}
	defer func() { metricsSetup = original }()

	rec, metricsSrv, shutdown := buildMetrics(testConfig(), nil)
	if rec == nil {
		t.Fatal("expected a fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatal("expected no metrics server on setup failure")
	}
}

func TestRunShutsDownGracefully(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, &teststubs.StubProvider{}, false)
	httpStub := &stubHTTPServer{addr: ":0"}
	metricsStub := &stubHTTPServer{addr: ":0"}
	srv.httpServer = httpStub
	srv.metricsServer = metricsStub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	if httpStub.shutdownCalls != 1 {
		t.Fatalf("expected one http shutdown, got %d", httpStub.shutdownCalls)
	}
	if metricsStub.shutdownCalls != 1 {
		t.Fatalf("expected one metrics shutdown, got %d", metricsStub.shutdownCalls)
	}
}

func TestLaunchServerInvokesOnExit(t *testing.T) {
	stub := &stubHTTPServer{addr: ":0", listenErr: errors.New("bind failed")}
	exited := make(chan error, 1)

	launchServer("http", stub, nil, func(err error) {
		exited <- err
	})

	select {
	case err := <-exited:
		if err == nil {
			t.Fatal("expected listen error passed through")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onExit not invoked")
	}
}

func TestLaunchServerIgnoresServerClosed(t *testing.T) {
	stub := &stubHTTPServer{addr: ":0", listenErr: http.ErrServerClosed}
	called := make(chan struct{}, 1)

	launchServer("http", stub, nil, func(error) {
		called <- struct{}{}
	})

	select {
	case <-called:
		t.Fatal("onExit must not fire for ErrServerClosed")
	case <-time.After(50 * time.Millisecond):
	}
}
