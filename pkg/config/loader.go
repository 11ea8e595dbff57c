package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option customizes a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env key of the struct, e.g. "SILLYNAMES_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles reads the given .env files for this call only. Later files win
// over earlier ones; real environment variables win over all of them.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithEnvironment replaces the process environment with m.
func WithEnvironment(m map[string]string) Option {
	return func(o *options) { o.environment = m }
}

// Load parses environment variables into v based on its `env` field tags.
//
// The default .env file in the working directory is loaded into the process
// environment once, on first use; a missing file is not an error.
//
// Example:
//
//	type Config struct {
//		Column string `env:"COLUMN" envDefault:"ride_name"`
//		Seed   uint64 `env:"SEED"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SILLYNAMES_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environ, err := o.environ()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: environ,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. With no arguments it loads ./.env.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// environ returns nil when the process environment should be used as is.
func (o *options) environ() (map[string]string, error) {
	if len(o.files) == 0 {
		return o.environment, nil
	}

	merged := make(map[string]string)
	for _, file := range o.files {
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, val := range values {
			merged[k] = val
		}
	}

	base := o.environment
	if base == nil {
		base = processEnv()
	}
	for k, val := range base {
		merged[k] = val
	}
	return merged, nil
}

func processEnv() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
