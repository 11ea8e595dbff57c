package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sillynames/pkg/anonymizer"
	"github.com/dmitrymomot/sillynames/pkg/config"
	"github.com/dmitrymomot/sillynames/pkg/environment"
	"github.com/dmitrymomot/sillynames/pkg/file"
	"github.com/dmitrymomot/sillynames/pkg/pg"
	"github.com/dmitrymomot/sillynames/pkg/validator"
)

const envPrefix = "SILLYNAMES_"

const (
	sourceFile     = "file"
	sourcePostgres = "postgres"
)

type appConfig struct {
	Env      environment.Environment `env:"ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`

	Source string `env:"SOURCE" envDefault:"file"`
	Input  string `env:"INPUT"`
	Output string `env:"OUTPUT"`
	Format string `env:"FORMAT"`
	Table  string `env:"TABLE"`
	DryRun bool   `env:"DRY_RUN"`

	Anonymizer anonymizer.Config
	Storage    file.Config
	Postgres   pg.Config
}

// loadConfig reads SILLYNAMES_* variables and then applies command line
// flags on top, so a flag always wins over the environment. A nil environ
// means the process environment.
func loadConfig(args []string, environ map[string]string, stderr io.Writer) (appConfig, error) {
	var cfg appConfig

	opts := []config.Option{config.WithPrefix(envPrefix)}
	if environ != nil {
		opts = append(opts, config.WithEnvironment(environ))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("sillynames", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Source, "source", cfg.Source, "data source: file or postgres")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "input dataset path (file source)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output dataset path (file source), defaults to <input>.anonymized.<ext>")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "dataset format: csv, json or yaml (default: from the file extension)")
	fs.StringVar(&cfg.Table, "table", cfg.Table, "table name, optionally schema-qualified (postgres source)")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "log the mapping without writing anything")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	a := &cfg.Anonymizer
	fs.StringVar(&a.Column, "column", a.Column, "column to anonymize")
	fs.StringVar(&a.AdjectivesPath, "adjectives", a.AdjectivesPath, "adjectives word list path (default: built-in list)")
	fs.StringVar(&a.AnimalsPath, "animals", a.AnimalsPath, "animals word list path (default: built-in list)")
	fs.BoolVar(&a.WordListHeader, "wordlist-header", a.WordListHeader, "skip the first line of each word list")
	fs.IntVar(&a.MaxWords, "max-words", a.MaxWords, "read at most this many words per list, 0 for no limit")
	fs.Func("separator", "separator between adjective and animal, may be empty (default \" \")", func(v string) error {
		a.Separator = &v
		return nil
	})
	fs.BoolVar(&a.Shuffle, "shuffle", a.Shuffle, "shuffle word lists before pairing")
	fs.Uint64Var(&a.Seed, "seed", a.Seed, "shuffle seed, 0 for a random one")
	fs.TextVar(&a.Case, "case", a.Case, "placeholder case: asis, title or lower")
	fs.BoolVar(&a.Dedupe, "dedupe", a.Dedupe, "drop repeated placeholders")
	fs.BoolVar(&a.Strict, "strict", a.Strict, "fail when two values would share a placeholder")
	fs.BoolVar(&a.SkipMissing, "skip-missing", a.SkipMissing, "leave empty cells untouched")
	fs.TextVar(&a.Overflow, "overflow", a.Overflow, "when placeholders run out: error, wrap or passthrough")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments: %s", errInvalidArgs, strings.Join(fs.Args(), " "))
	}

	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	err := validator.Apply(
		validator.InList("source", c.Source, []string{sourceFile, sourcePostgres}),
		validator.When(c.Source == sourceFile, validator.Required("input", c.Input)),
		validator.When(c.Source == sourcePostgres, validator.Required("table", c.Table)),
	)
	if err != nil {
		return errors.Join(errInvalidArgs, err)
	}
	return nil
}

func (c appConfig) logLevel() (slog.Level, bool, error) {
	if c.LogLevel == "" {
		return 0, false, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, false, fmt.Errorf("%w: %w", errInvalidArgs, err)
	}
	return l, true, nil
}
