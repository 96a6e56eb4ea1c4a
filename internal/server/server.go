package server

import (
	"context"
	"log/slog"
	"net/http"

	appgames "nfl-data-service/internal/app/games"
	"nfl-data-service/internal/cache"
	"nfl-data-service/internal/config"
	httpserver "nfl-data-service/internal/http"
	"nfl-data-service/internal/http/handlers"
	"nfl-data-service/internal/http/middleware"
	"nfl-data-service/internal/metrics"
	"nfl-data-service/internal/providers"
	"nfl-data-service/internal/providers/tank01"
)

var metricsSetup = metrics.Setup

// Server owns the process-lifetime singletons: the data client, its cache and
// throttle, and the HTTP/metrics listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	dataCache     *cache.Cache
	gamesService  *appgames.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the tank01 provider wired in.
func New(cfg config.Config, logger *slog.Logger) *Server {
	client := tank01.NewClient(tank01.Config{
		BaseURL: cfg.Tank01.BaseURL,
		APIKey:  cfg.Tank01.APIKey,
		Logger:  logger,
	})
	return newServerWithProvider(cfg, logger, client, client.Configured())
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, apiConfigured bool) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	dataCache := cache.New(cfg.Cache.RefreshDay, cfg.Cache.MinWindow, logger)
	throttle := providers.NewThrottle(cfg.Tank01.RequestInterval)
	gamesSvc := appgames.NewService(provider, tank01.ProviderName, dataCache, throttle, logger, recorder)

	httpSrv := buildHTTPServer(cfg, gamesSvc, logger, recorder, apiConfigured)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		dataCache:     dataCache,
		gamesService:  gamesSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, gamesSvc *appgames.Service, logger *slog.Logger, recorder *metrics.Recorder, apiConfigured bool) httpServer {
	handler := handlers.NewHandler(gamesSvc, logger, apiConfigured)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: mux,
		}}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onExit func(error)) {
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Error(name+" server exited", "error", err)
			}
			if onExit != nil {
				onExit(err)
			}
		}
	}()
}
