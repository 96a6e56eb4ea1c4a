package config

import "time"

const (
	envPort            = "PORT"
	envTank01APIKey    = "TANK01_API_KEY"
	envTank01BaseURL   = "TANK01_BASE_URL"
	envRequestInterval = "TANK01_REQUEST_INTERVAL"
	envCacheMinWindow  = "CACHE_MIN_WINDOW"
	envCacheRefreshDay = "CACHE_REFRESH_WEEKDAY"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "8000"
	// Minimum spacing between upstream calls; Tank01 meters by request volume.
	defaultRequestInterval = 100 * Duration(time.Millisecond)
	// Floor for the cache validity window even right before the weekly refresh.
	defaultCacheMinWindow = Duration(time.Hour)
	defaultMetricsPort    = "9090"
)

// defaultCacheRefreshDay is when Tank01 publishes the coming week's slate.
const defaultCacheRefreshDay = time.Tuesday
