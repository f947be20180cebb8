// Package config loads typed configuration from environment variables.
//
// Structs are filled by caarlos0/env using `env` and `envDefault` tags and
// then checked with go-playground/validator `validate` tags. A .env file in
// the working directory is read the first time Load runs.
//
// Load caches by type so packages may call it freely. Parse and
// ParseWithEnvironment skip the cache and suit tests and one-shot commands.
package config
