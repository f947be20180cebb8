package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a service that serves its own sub-router.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects what the site router mounts. Nil services are
// skipped.
type RouterOptions struct {
	Pages   Mountable
	Contact Mountable
	Consent Mountable

	// Health answers GET /health.
	Health http.Handler
	// Media serves mirrored CMS assets under /media/.
	Media http.Handler
	// Static serves bundled scripts and styles under /static/.
	Static http.Handler

	Middlewares []func(http.Handler) http.Handler
}

// Router builds the site router.
//
//	r := site.Router(site.RouterOptions{
//		Pages:   site.NewPageService(cms, cookies),
//		Contact: site.NewContactService(submitter, cookies, site.WithRateLimiter(bucket)),
//		Consent: site.NewConsentService(cookies, log),
//		Health:  httpserver.HealthCheckHandler(log, 2*time.Second, checks),
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(opts.Middlewares...)

	if opts.Health != nil {
		r.Method(http.MethodGet, "/health", opts.Health)
	}
	if opts.Media != nil {
		r.Mount("/media", http.StripPrefix("/media", opts.Media))
	}
	if opts.Static != nil {
		r.Mount("/static", http.StripPrefix("/static", opts.Static))
	}

	r.Route("/api", func(api chi.Router) {
		if opts.Contact != nil {
			api.Mount("/contact", opts.Contact.Handle())
		}
		if opts.Consent != nil {
			api.Mount("/consent", opts.Consent.Handle())
		}
	})

	if opts.Pages != nil {
		r.Mount("/", opts.Pages.Handle())
	}
	return r
}
