package handler

import (
	"context"
	"net/http"
	"time"
)

// Context carries the request, its response writer and the request context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext returns the default Context. A nil request yields a context
// backed by context.Background.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *httpContext) ctx() context.Context {
	if c.r == nil {
		return context.Background()
	}
	return c.r.Context()
}

func (c *httpContext) Deadline() (time.Time, bool) { return c.ctx().Deadline() }
func (c *httpContext) Done() <-chan struct{}       { return c.ctx().Done() }
func (c *httpContext) Err() error                  { return c.ctx().Err() }
func (c *httpContext) Value(key any) any           { return c.ctx().Value(key) }
