package config

import "time"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	DatabaseURL  string
	PollInterval time.Duration
	BackfillDays int
	NHL          NHLConfig
	Metrics      MetricsConfig
}

// NHLConfig controls the upstream schedule API client.
type NHLConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		DatabaseURL:  envOrDefault(envDatabaseURL, ""),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		BackfillDays: intEnvOrDefault(envBackfillDays, defaultBackfillDays),
		NHL: NHLConfig{
			BaseURL:     envOrDefault(envNHLBaseURL, ""),
			HTTPTimeout: durationEnvOrDefault(envNHLTimeout, defaultNHLTimeout),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envMetricsName, defaultServiceName),
			OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
		},
	}
}
