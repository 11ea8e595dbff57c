// Package environment names the deployment environment the application runs
// in (development, staging, production).
//
// Parse accepts the full names and the short aliases dev, stage and prod.
// Environment implements encoding.TextUnmarshaler, so it can be used as a
// field of an env-tagged configuration struct:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// The logger package uses the value to pick its output preset.
package environment
