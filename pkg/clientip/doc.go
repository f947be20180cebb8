// Package clientip resolves the visitor's IP address.
//
// The contact form keys its in-flight guard and rate limit on this value, so
// only headers set by a trusted proxy should be configured. A Resolver with
// no headers uses the TCP peer address alone.
//
//	res := clientip.NewResolver(cfg.TrustedIPHeaders...)
//	r.Use(res.Middleware)
//	ip := clientip.FromContext(r.Context())
package clientip
