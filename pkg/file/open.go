package file

import (
	"context"
	"fmt"
)

// Driver names a storage backend.
type Driver string

const (
	DriverLocal Driver = "local"
	DriverS3    Driver = "s3"
)

// Config selects and configures a storage backend from the environment.
type Config struct {
	Driver  Driver `env:"STORAGE_DRIVER" envDefault:"local"`
	BaseDir string `env:"STORAGE_BASE_DIR" envDefault:"."`
	S3      S3Config
}

// New builds the backend named by cfg.Driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		s, err := NewLocalStorage(cfg.BaseDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverS3:
		s, err := NewS3Storage(ctx, cfg.S3, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
