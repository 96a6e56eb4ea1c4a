package config

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	Tank01  Tank01Config
	Cache   CacheConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		Tank01:  loadTank01(),
		Cache:   loadCache(),
		Metrics: loadMetrics(),
	}
}
