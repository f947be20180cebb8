package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/config"
)

type directusConfig struct {
	URL     string        `env:"DIRECTUS_URL" envDefault:"http://localhost:8055" validate:"required,url"`
	Token   string        `env:"DIRECTUS_TOKEN"`
	Timeout time.Duration `env:"DIRECTUS_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	Locales []string      `env:"LOCALES" envDefault:"it,en,de,fr" envSeparator:","`
}

func TestParseWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg directusConfig
		require.NoError(t, config.ParseWithEnvironment(&cfg, map[string]string{}))
		assert.Equal(t, "http://localhost:8055", cfg.URL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"it", "en", "de", "fr"}, cfg.Locales)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		var cfg directusConfig
		require.NoError(t, config.ParseWithEnvironment(&cfg, map[string]string{
			"DIRECTUS_URL":     "https://cms.lares.example",
			"DIRECTUS_TOKEN":   "static-token",
			"DIRECTUS_TIMEOUT": "3s",
		}))
		assert.Equal(t, "https://cms.lares.example", cfg.URL)
		assert.Equal(t, "static-token", cfg.Token)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		var cfg directusConfig
		err := config.ParseWithEnvironment(&cfg, map[string]string{"DIRECTUS_TIMEOUT": "soon"})
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		var cfg directusConfig
		err := config.ParseWithEnvironment(&cfg, map[string]string{"DIRECTUS_URL": "not a url"})
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, config.ParseWithEnvironment[directusConfig](nil, nil), config.ErrNilPointer)
		require.ErrorIs(t, config.Load[directusConfig](nil), config.ErrNilPointer)
	})
}

type cachedConfig struct {
	Name string `env:"LARES_TEST_CACHED_NAME" envDefault:"lares"`
}

func TestLoadCachesByType(t *testing.T) {
	t.Setenv("LARES_TEST_CACHED_NAME", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Name)

	t.Setenv("LARES_TEST_CACHED_NAME", "second")
	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Name)
}

func TestMustLoadPanics(t *testing.T) {
	type required struct {
		Secret string `env:"LARES_TEST_REQUIRED_SECRET,required"`
	}
	assert.Panics(t, func() {
		var cfg required
		config.MustLoad(&cfg)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LARES_TEST_FROM_FILE=hello\n"), 0o600))
	t.Setenv("LARES_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("LARES_TEST_FROM_FILE"))

	require.NoError(t, config.LoadEnvFiles(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "hello", os.Getenv("LARES_TEST_FROM_FILE"))
}
