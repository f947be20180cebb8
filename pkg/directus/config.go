package directus

import "time"

// Config is the environment configuration of the Content Client.
type Config struct {
	URL             string        `env:"DIRECTUS_URL" envDefault:"http://localhost:8055" validate:"required,url"`
	Token           string        `env:"DIRECTUS_TOKEN"`
	Timeout         time.Duration `env:"DIRECTUS_TIMEOUT" envDefault:"10s"`
	CacheSize       int           `env:"DIRECTUS_CACHE_SIZE" envDefault:"256" validate:"gte=0"`
	CacheTTL        time.Duration `env:"DIRECTUS_CACHE_TTL" envDefault:"5m"`
	BreakerFailures int           `env:"DIRECTUS_BREAKER_FAILURES" envDefault:"5" validate:"gte=0"`
	BreakerRecovery time.Duration `env:"DIRECTUS_BREAKER_RECOVERY" envDefault:"30s"`
}

// NewFromConfig applies the non-zero fields of cfg, then opts.
// A zero BreakerFailures disables the circuit breaker.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := make([]Option, 0, 4+len(opts))

	if cfg.Token != "" {
		configOpts = append(configOpts, WithToken(cfg.Token))
	}
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.CacheSize > 0 && cfg.CacheTTL > 0 {
		configOpts = append(configOpts, WithCache(cfg.CacheSize, cfg.CacheTTL))
	}
	if cfg.BreakerFailures > 0 {
		configOpts = append(configOpts, WithCircuitBreaker(
			NewCircuitBreaker(cfg.BreakerFailures, 1, cfg.BreakerRecovery),
		))
	}

	return NewClient(cfg.URL, append(configOpts, opts...)...)
}
