package config

import (
	"time"

	"github.com/spf13/viper"
)

// CacheConfig defines settings for the response cache middleware.
// When Enabled is false or no Redis client is configured, caching will be disabled.
// TTL defines the lifetime of cache entries.  Prefix namespaces the keys and
// MaxBodyBytes caps the size of a cached response body.
type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	TTL          time.Duration `mapstructure:"ttl"`
	Prefix       string        `mapstructure:"prefix"`
	MaxBodyBytes int           `mapstructure:"max_body_bytes"`
}

func setCacheDefaults(v *viper.Viper) {
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("cache.prefix", "cache")
	v.SetDefault("cache.max_body_bytes", 1048576)
}
