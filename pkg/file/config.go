package file

import (
	"context"
	"fmt"
)

// Driver names.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures the mirror backend.
type Config struct {
	Driver   string `env:"STORAGE_DRIVER" envDefault:"local" validate:"oneof=local s3"`
	LocalDir string `env:"STORAGE_LOCAL_DIR" envDefault:"./data/media"`
	LocalURL string `env:"STORAGE_LOCAL_URL" envDefault:"/media/"`
	S3       S3Config
}

// New builds the configured Storage.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalStorage(cfg.LocalDir, cfg.LocalURL)
	case DriverS3:
		return NewS3Storage(ctx, cfg.S3, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}
