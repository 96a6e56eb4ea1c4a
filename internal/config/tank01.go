package config

import "time"

// Tank01Config holds upstream provider settings. An empty APIKey disables
// live fetches; the service still runs and serves empty results.
type Tank01Config struct {
	BaseURL         string
	APIKey          string
	RequestInterval time.Duration
}

func loadTank01() Tank01Config {
	return Tank01Config{
		BaseURL:         envOrDefault(envTank01BaseURL, ""),
		APIKey:          envOrDefault(envTank01APIKey, ""),
		RequestInterval: durationEnvOrDefault(envRequestInterval, defaultRequestInterval),
	}
}

// CacheConfig holds the calendar-derived cache settings.
type CacheConfig struct {
	MinWindow  time.Duration
	RefreshDay time.Weekday
}

func loadCache() CacheConfig {
	return CacheConfig{
		MinWindow:  durationEnvOrDefault(envCacheMinWindow, defaultCacheMinWindow),
		RefreshDay: weekdayEnvOrDefault(envCacheRefreshDay, defaultCacheRefreshDay),
	}
}
