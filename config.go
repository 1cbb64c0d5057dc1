package cachedigest

import "github.com/caarlos0/env/v11"

// Config holds middleware configuration loadable from the environment.
type Config struct {
	CookieName       string `env:"CACHE_DIGEST_COOKIE" envDefault:"cache_digest"`
	MaxEncodedLength int    `env:"CACHE_DIGEST_MAX_LENGTH" envDefault:"8192"`
	CacheSize        int    `env:"CACHE_DIGEST_CACHE_SIZE" envDefault:"0"`
}

// DefaultConfig returns the configuration Middleware uses when no options
// are given.
func DefaultConfig() Config {
	return Config{
		CookieName:       "cache_digest",
		MaxEncodedLength: 8192,
		CacheSize:        0,
	}
}

// ParseConfig loads Config from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the config into middleware options. Zero values fall
// back to the defaults.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 3)
	if c.CookieName != "" {
		opts = append(opts, WithCookieName(c.CookieName))
	}
	if c.MaxEncodedLength > 0 {
		opts = append(opts, WithMaxEncodedLength(c.MaxEncodedLength))
	}
	if c.CacheSize > 0 {
		opts = append(opts, WithCacheSize(c.CacheSize))
	}
	return opts
}
