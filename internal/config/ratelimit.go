package config

import (
	"time"

	"github.com/spf13/viper"
)

type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Capacity       int           `mapstructure:"capacity"`
	RefillTokens   int           `mapstructure:"refill_tokens"`
	RefillInterval time.Duration `mapstructure:"refill_interval"`
	TTL            time.Duration `mapstructure:"ttl"`
	KeyStrategy    string        `mapstructure:"key_strategy"`
	Prefix         string        `mapstructure:"prefix"`
	Debug          bool          `mapstructure:"debug"`
}

func setRateLimitDefaults(v *viper.Viper) {
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.refill_tokens", 1)
	v.SetDefault("rate_limit.refill_interval", "1s")
	v.SetDefault("rate_limit.ttl", "10m")
	v.SetDefault("rate_limit.key_strategy", "ip_user_route")
	v.SetDefault("rate_limit.prefix", "rl")
	v.SetDefault("rate_limit.debug", false)
}

// normalize clamps nonsensical values so the limiter always makes progress.
func (c RateLimitConfig) normalize() RateLimitConfig {
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.RefillTokens < 1 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = time.Second
	}
	if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
		c.TTL = minTTL
	}
	return c
}
