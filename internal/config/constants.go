package config

import "time"

// Environment variable names.
const (
	envPort          = "PORT"
	envDatabaseURL   = "DATABASE_URL"
	envPollInterval  = "POLL_INTERVAL"
	envBackfillDays  = "BACKFILL_DAYS"
	envNHLBaseURL    = "NHL_API_BASE_URL"
	envNHLTimeout    = "NHL_API_TIMEOUT"
	envMetricsOn     = "METRICS_ENABLED"
	envMetricsPort   = "METRICS_PORT"
	envMetricsName   = "METRICS_SERVICE_NAME"
	envOtlpEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
)

// Defaults.
const (
	defaultPort         = "8080"
	defaultPollInterval = 5 * time.Minute
	defaultBackfillDays = 7
	defaultNHLTimeout   = 10 * time.Second
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nhl-data-service"
)
