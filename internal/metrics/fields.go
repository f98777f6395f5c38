package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
)

// Cache lookup outcomes recorded by the schedule cache.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheLive  = "live"
	CacheError = "error"
)
