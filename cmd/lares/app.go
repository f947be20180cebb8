package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Marco22874/lares-frontend/modules/site"
	"github.com/Marco22874/lares-frontend/pkg/clientip"
	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/cookie"
	"github.com/Marco22874/lares-frontend/pkg/directus"
	"github.com/Marco22874/lares-frontend/pkg/email"
	"github.com/Marco22874/lares-frontend/pkg/environment"
	"github.com/Marco22874/lares-frontend/pkg/file"
	"github.com/Marco22874/lares-frontend/pkg/httpserver"
	"github.com/Marco22874/lares-frontend/pkg/logger"
	"github.com/Marco22874/lares-frontend/pkg/ratelimiter"
	"github.com/Marco22874/lares-frontend/pkg/redis"
	"github.com/Marco22874/lares-frontend/pkg/requestid"
)

// healthTimeout bounds each dependency probe.
const healthTimeout = 3 * time.Second

// app is the wired dependency graph shared by the commands.
type app struct {
	cfg     *settings
	log     *slog.Logger
	cms     *directus.Client
	redis   *goredis.Client
	closers []func() error
}

func newLogger(cfg *settings, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.env(), cfg.App.Name),
		logger.WithLevelName(cfg.App.LogLevel),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
}

// newApp connects to the CMS and, when configured, Redis.
func newApp(ctx context.Context, cfg *settings, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	cms, err := directus.NewFromConfig(cfg.Directus, directus.WithLogger(log))
	if err != nil {
		return nil, err
	}
	a.cms = cms

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = client
		a.closers = append(a.closers, client.Close)
	}
	return a, nil
}

// Close releases connections in reverse order.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func (a *app) cookies() (*cookie.Manager, error) {
	cfg := a.cfg.Cookie
	cfg.Secrets = strings.Join(a.cfg.cookieSecrets(), ",")
	return cookie.NewFromConfig(cfg)
}

// limiter returns the contact rate limiter: Redis backed when Redis is
// configured, in memory otherwise.
func (a *app) limiter() (*ratelimiter.Bucket, error) {
	if a.cfg.App.RateLimitOff {
		return nil, nil
	}
	var store ratelimiter.Store
	if a.redis != nil {
		store = ratelimiter.NewRedisStore(a.redis, ratelimiter.WithKeyPrefix(a.cfg.Redis.KeyPrefix+"ratelimit:"))
	} else {
		mem := ratelimiter.NewMemoryStore()
		a.closers = append(a.closers, func() error { mem.Close(); return nil })
		store = mem
	}
	return ratelimiter.NewBucket(store, a.cfg.RateLimit)
}

// sender returns Postmark when a server token is set and the file based
// development sender otherwise.
func (a *app) sender() (email.EmailSender, error) {
	if a.cfg.Email.Enabled() {
		client, err := email.NewPostmarkClient(a.cfg.Email)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	if a.cfg.env().IsProduction() {
		a.log.Warn("postmark is not configured, notifications are written to disk",
			logger.Component("email"))
	}
	return email.NewDevSender(a.cfg.Email.DevDir, a.log), nil
}

func (a *app) storage(ctx context.Context) (file.Storage, error) {
	return file.New(ctx, a.cfg.Storage)
}

// submitter posts to the CMS and, when a recipient is configured, emails
// the site owner.
func (a *app) submitter() (*contact.Submitter, error) {
	opts := []contact.SubmitterOption{contact.WithLogger(a.log)}
	if a.cfg.App.ContactNotifyTo != "" {
		sender, err := a.sender()
		if err != nil {
			return nil, err
		}
		notifier, err := site.NewEmailNotifier(sender, a.cfg.App.ContactNotifyTo)
		if err != nil {
			return nil, err
		}
		opts = append(opts, contact.WithNotifier(notifier))
	}
	return contact.NewSubmitter(site.DirectusPoster(a.cms), opts...)
}

// checks are the dependency probes of /health and the check command.
func (a *app) checks() map[string]httpserver.Check {
	checks := map[string]httpserver.Check{
		"directus": a.cms.Ping,
	}
	if a.redis != nil {
		checks["redis"] = redis.Healthcheck(a.redis)
	}
	return checks
}

// handler builds the site router with every service and middleware.
func (a *app) handler(ctx context.Context) (http.Handler, error) {
	cookies, err := a.cookies()
	if err != nil {
		return nil, err
	}
	bucket, err := a.limiter()
	if err != nil {
		return nil, err
	}
	submitter, err := a.submitter()
	if err != nil {
		return nil, err
	}

	contactOpts := []site.ContactOption{site.WithContactLogger(a.log)}
	if bucket != nil {
		contactOpts = append(contactOpts, site.WithRateLimiter(bucket))
	}

	opts := site.RouterOptions{
		Pages: site.NewPageService(a.cms, cookies,
			site.WithPageLogger(a.log),
			site.WithSiteName(a.cfg.App.SiteName),
		),
		Contact: site.NewContactService(submitter, cookies, contactOpts...),
		Consent: site.NewConsentService(cookies, a.log),
		Health:  httpserver.HealthCheckHandler(a.log, healthTimeout, a.checks()),
		Middlewares: []func(http.Handler) http.Handler{
			requestid.Middleware,
			clientip.NewResolver(a.cfg.clientIPHeaders()...).Middleware,
			environment.Middleware(a.cfg.env()),
		},
	}
	if a.cfg.App.StaticDir != "" {
		opts.Static = http.FileServer(http.Dir(a.cfg.App.StaticDir))
	}

	storage, err := a.storage(ctx)
	if err != nil {
		return nil, err
	}
	if local, ok := storage.(*file.LocalStorage); ok {
		opts.Media = http.FileServer(http.Dir(local.Dir()))
	}

	return site.Router(opts), nil
}
