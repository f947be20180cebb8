package main

import (
	"errors"
	"strings"

	"github.com/Marco22874/lares-frontend/pkg/config"
	"github.com/Marco22874/lares-frontend/pkg/cookie"
	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/email"
	"github.com/Marco22874/lares-frontend/pkg/environment"
	"github.com/Marco22874/lares-frontend/pkg/file"
	"github.com/Marco22874/lares-frontend/pkg/httpserver"
	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
	"github.com/Marco22874/lares-frontend/pkg/redis"
)

// appConfig holds the process-level settings.
type appConfig struct {
	Env             string   `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production dev stage prod"`
	Name            string   `env:"APP_NAME" envDefault:"lares"`
	SiteName        string   `env:"SITE_NAME" envDefault:"Lares Cohousing"`
	LogLevel        string   `env:"LOG_LEVEL"`
	StaticDir       string   `env:"STATIC_DIR" envDefault:"./static"`
	ContactNotifyTo string   `env:"CONTACT_NOTIFY_TO" validate:"omitempty,email"`
	RateLimitOff    bool     `env:"RATE_LIMIT_DISABLED" envDefault:"false"`
	TrustedHeaders  []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
}

// settings is every configuration section the commands need.
type settings struct {
	App       appConfig
	HTTP      httpserver.Config
	Directus  directus.Config
	Cookie    cookie.Config
	RateLimit ratelimiter.Config
	Redis     redis.Config
	Email     email.Config
	Storage   file.Config
}

var errNoCookieSecret = errors.New("COOKIE_SECRETS is required outside development")

// loadSettings reads every section from the environment and .env.
func loadSettings() (*settings, error) {
	var s settings
	for _, load := range []func() error{
		func() error { return config.Load(&s.App) },
		func() error { return config.Load(&s.HTTP) },
		func() error { return config.Load(&s.Directus) },
		func() error { return config.Load(&s.Cookie) },
		func() error { return config.Load(&s.RateLimit) },
		func() error { return config.Load(&s.Redis) },
		func() error { return config.Load(&s.Email) },
		func() error { return config.Load(&s.Storage) },
	} {
		if err := load(); err != nil {
			return nil, err
		}
	}
	if len(s.Cookie.SecretList()) == 0 && !s.env().IsDevelopment() {
		return nil, errNoCookieSecret
	}
	return &s, nil
}

func (s *settings) env() environment.Environment {
	return environment.Parse(s.App.Env)
}

// devCookieSecret signs cookies in development when COOKIE_SECRETS is unset.
const devCookieSecret = "lares-development-cookie-secret-do-not-use"

func (s *settings) cookieSecrets() []string {
	if secrets := s.Cookie.SecretList(); len(secrets) > 0 {
		return secrets
	}
	return []string{devCookieSecret}
}

func (s *settings) clientIPHeaders() []string {
	out := make([]string, 0, len(s.App.TrustedHeaders))
	for _, h := range s.App.TrustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}
