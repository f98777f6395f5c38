package nhle

import "time"

// ProviderName identifies this upstream in logs and metrics.
const ProviderName = "nhle"

const (
	defaultBaseURL     = "https://api-web.nhle.com"
	schedulePath       = "/v1/schedule/"
	defaultHTTPTimeout = 10 * time.Second

	// maxBodyBytes bounds schedule payload reads; a full week of games is
	// well under 1 MiB.
	maxBodyBytes = 4 << 20
)
