package config

import "time"

// CacheConfig defines settings for the answer cache middleware.  The cache is
// off by default: the baseline behavior of the service is to reread the
// knowledge file on every question, and the cache is an opt-in trade of
// staleness (bounded by TTL) against that per-request read.
type CacheConfig struct {
	Enabled bool          // cache successful answers in Redis
	TTL     time.Duration // lifetime of a cached answer
	Prefix  string        // Redis key namespace
}

// LoadCacheConfig reads cache settings from the environment.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "false") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s"), 30*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "answers"),
	}
}
