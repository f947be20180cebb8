package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v and validates the result.
// The default .env file is read once if present. Each config type is parsed
// once per process; later calls copy the cached value.
//
//	type DirectusConfig struct {
//		URL   string `env:"DIRECTUS_URL" envDefault:"http://localhost:8055" validate:"required,url"`
//		Token string `env:"DIRECTUS_TOKEN"`
//	}
//
//	var cfg DirectusConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := Parse(v); err != nil {
		return err
	}
	cache[key] = *v
	return nil
}

// MustLoad is Load that panics on failure. Use it only during startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse reads the current environment into v without caching.
func Parse[T any](v *T) error {
	return ParseWithEnvironment(v, nil)
}

// ParseWithEnvironment reads values from environ instead of the process
// environment. A nil map means the process environment.
func ParseWithEnvironment[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(v, opts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := Validate(v); err != nil {
		return err
	}
	return nil
}

// Validate checks the `validate` struct tags of v.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadEnvFiles loads the given dotenv files into the process environment.
// Variables already set are kept. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}
