// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - The default .env file in the working directory is loaded once, on the
//     first call to Load. A missing file is ignored.
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags. Nested structs, slices and any type
//     implementing encoding.TextUnmarshaler are supported.
//   - WithPrefix namespaces every key, so one struct can be reused under
//     different prefixes.
//   - WithEnvFiles layers extra .env files under the real environment for a
//     single call, and WithEnvironment swaps the environment for an explicit
//     map, which keeps tests independent of the process state.
//
// # Usage
//
//	type Config struct {
//	    Column string `env:"COLUMN" envDefault:"ride_name"`
//	    Source string `env:"SOURCE" envDefault:"file"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("SILLYNAMES_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be checked with errors.Is:
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrNilPointer: a nil pointer was passed to Load or MustLoad.
package config
