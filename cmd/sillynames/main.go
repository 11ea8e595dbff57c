// Command sillynames replaces the values of a dataset column, ride names by
// default, with "<adjective> <animal>" placeholders.
//
// Usage:
//
//	sillynames -input rides.csv [-output rides.anonymized.csv] [flags]
//	sillynames -source postgres -table public.rides [flags]
//
// Every flag can also be set through a SILLYNAMES_* environment variable or
// a .env file; flags take precedence.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sillynames/pkg/anonymizer"
	"github.com/dmitrymomot/sillynames/pkg/dataset"
	"github.com/dmitrymomot/sillynames/pkg/file"
	"github.com/dmitrymomot/sillynames/pkg/logger"
	"github.com/dmitrymomot/sillynames/pkg/pg"
)

var errInvalidArgs = errors.New("invalid arguments")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], nil, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "sillynames:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, environ map[string]string, stderr io.Writer) error {
	cfg, err := loadConfig(args, environ, stderr)
	if err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "sillynames"),
		logger.WithOutput(stderr),
		logger.WithRunIDFromContext(),
	}
	level, ok, err := cfg.logLevel()
	if err != nil {
		return err
	}
	if ok {
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)

	ctx = logger.WithRunID(ctx, uuid.NewString())
	log.InfoContext(ctx, "run started",
		logger.Source(cfg.Source),
		logger.Column(cfg.Anonymizer.Column),
		slog.Bool("dry_run", cfg.DryRun),
	)

	storage, err := file.New(ctx, cfg.Storage)
	if err != nil {
		log.ErrorContext(ctx, "storage setup failed", logger.Error(err))
		return err
	}

	anon, err := anonymizer.New(cfg.Anonymizer, storage, log)
	if err != nil {
		return err
	}

	switch cfg.Source {
	case sourcePostgres:
		err = runPostgres(ctx, cfg, anon, log)
	default:
		err = runFile(ctx, cfg, storage, anon, log)
	}
	if err != nil {
		log.ErrorContext(ctx, "run failed", logger.Error(err))
		return err
	}

	log.InfoContext(ctx, "run finished")
	return nil
}

func runFile(ctx context.Context, cfg appConfig, storage file.Storage, anon *anonymizer.Anonymizer, log *slog.Logger) error {
	inFormat, err := resolveFormat(cfg.Format, cfg.Input)
	if err != nil {
		return err
	}

	ds, err := readDataset(ctx, storage, cfg.Input, inFormat)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "dataset loaded", logger.Source(cfg.Input), logger.Count("rows", ds.Len()))

	out, mapping, err := anon.Anonymize(ctx, ds)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		logMapping(ctx, log, mapping)
		return nil
	}

	output := cfg.Output
	if output == "" {
		output = defaultOutput(cfg.Input)
	}
	outFormat, err := resolveFormat(cfg.Format, output)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dataset.Encode(&buf, outFormat, out); err != nil {
		return err
	}
	f, err := storage.Put(ctx, output, &buf)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "dataset written",
		logger.Destination(f.Path),
		logger.Count("rows", out.Len()),
		slog.Int64("bytes", f.Size),
	)
	return nil
}

func runPostgres(ctx context.Context, cfg appConfig, anon *anonymizer.Anonymizer, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	ds, err := pg.LoadTable(ctx, pool, cfg.Table, anon.Column())
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "table loaded", logger.Source(cfg.Table), logger.Count("rows", ds.Len()))

	_, mapping, err := anon.Anonymize(ctx, ds)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		logMapping(ctx, log, mapping)
		return nil
	}

	updated, err := pg.ApplyMapping(ctx, pool, cfg.Table, anon.Column(), mapping)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "table updated",
		logger.Destination(cfg.Table),
		slog.Int64("rows", updated),
	)
	return nil
}

func readDataset(ctx context.Context, storage file.Reader, p string, format dataset.Format) (*dataset.Dataset, error) {
	rc, err := storage.Open(ctx, p)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return dataset.Decode(rc, format)
}

func resolveFormat(explicit, p string) (dataset.Format, error) {
	if explicit != "" {
		return dataset.ParseFormat(explicit)
	}
	return dataset.FormatFromPath(p)
}

// defaultOutput turns "data/rides.csv" into "data/rides.anonymized.csv".
func defaultOutput(input string) string {
	ext := path.Ext(input)
	return strings.TrimSuffix(input, ext) + ".anonymized" + ext
}

func logMapping(ctx context.Context, log *slog.Logger, mapping anonymizer.Mapping) {
	for _, a := range mapping {
		log.InfoContext(ctx, "assignment",
			slog.Any("original", a.Original),
			slog.String("placeholder", a.Placeholder),
		)
	}
	log.InfoContext(ctx, "dry run, nothing written", logger.Count("assigned", len(mapping)))
}
