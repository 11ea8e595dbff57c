package anonymizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sillynames/pkg/dataset"
	"github.com/dmitrymomot/sillynames/pkg/file"
	"github.com/dmitrymomot/sillynames/pkg/logger"
	"github.com/dmitrymomot/sillynames/pkg/placeholder"
	"github.com/dmitrymomot/sillynames/pkg/validator"
	"github.com/dmitrymomot/sillynames/pkg/wordlist"
)

// Config holds the anonymizer settings. Empty word list paths select the
// built-in dictionaries. A nil Separator selects a single space; an empty one
// joins the words directly.
type Config struct {
	Column         string           `env:"COLUMN" envDefault:"ride_name"`
	AdjectivesPath string           `env:"ADJECTIVES_PATH"`
	AnimalsPath    string           `env:"ANIMALS_PATH"`
	WordListHeader bool             `env:"WORDLIST_HEADER"`
	MaxWords       int              `env:"WORDLIST_MAX_WORDS"`
	Separator      *string          `env:"SEPARATOR"`
	Shuffle        bool             `env:"SHUFFLE"`
	Seed           uint64           `env:"SEED"`
	Case           placeholder.Case `env:"CASE" envDefault:"asis"`
	Dedupe         bool             `env:"DEDUPE_PLACEHOLDERS"`
	Strict         bool             `env:"STRICT_UNIQUE"`
	SkipMissing    bool             `env:"SKIP_MISSING"`
	Overflow       Overflow         `env:"OVERFLOW" envDefault:"error"`
}

// Anonymizer replaces the values of one column with generated placeholders.
type Anonymizer struct {
	cfg     Config
	storage file.Reader
	log     *slog.Logger
}

// New validates cfg and returns an Anonymizer. storage is only required when
// a word list path is set. A nil logger discards all records.
func New(cfg Config, storage file.Reader, log *slog.Logger) (*Anonymizer, error) {
	if err := cfg.validate(storage != nil); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if log == nil {
		log = logger.Discard()
	}

	return &Anonymizer{
		cfg:     cfg,
		storage: storage,
		log:     log.With(logger.Component("anonymizer")),
	}, nil
}

func (c Config) validate(hasStorage bool) error {
	return validator.Apply(
		validator.Required("column", c.Column),
		validator.InList("overflow", c.Overflow, []Overflow{OverflowError, OverflowWrap, OverflowPassthrough}),
		validator.MinNum("max_words", c.MaxWords, 0),
		validator.RequiredIf("storage", hasStorage, c.AdjectivesPath != "" || c.AnimalsPath != "",
			"when a word list path is set"),
	)
}

// Column returns the name of the column being anonymized.
func (a *Anonymizer) Column() string {
	return a.cfg.Column
}

// Placeholders loads both word lists and generates the placeholder sequence.
// Every call reads the lists again; nothing is cached between calls.
func (a *Anonymizer) Placeholders(ctx context.Context) ([]string, error) {
	adjectives, err := a.words(ctx, a.cfg.AdjectivesPath, placeholder.Adjective)
	if err != nil {
		return nil, fmt.Errorf("adjectives: %w", err)
	}
	animals, err := a.words(ctx, a.cfg.AnimalsPath, placeholder.Animal)
	if err != nil {
		return nil, fmt.Errorf("animals: %w", err)
	}

	return placeholder.Generate(adjectives, animals, &placeholder.Options{
		Separator: a.cfg.Separator,
		Shuffle:   a.cfg.Shuffle,
		Seed:      a.cfg.Seed,
		Case:      a.cfg.Case,
		Unique:    a.cfg.Dedupe,
	})
}

// Anonymize generates the placeholders once and substitutes the configured
// column of ds. The input dataset is not modified.
//
// Running it on its own output substitutes again: placeholders are values
// like any other.
func (a *Anonymizer) Anonymize(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, Mapping, error) {
	if ds == nil {
		return nil, nil, ErrNilDataset
	}

	start := time.Now()

	placeholders, err := a.Placeholders(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	opts := []Option{WithOverflow(a.cfg.Overflow)}
	if a.cfg.Strict {
		opts = append(opts, WithUniquePlaceholders())
	}
	if a.cfg.SkipMissing {
		opts = append(opts, WithSkipMissing())
	}

	out, mapping, err := Substitute(ds, a.cfg.Column, placeholders, opts...)
	if err != nil {
		a.log.ErrorContext(ctx, "anonymization failed",
			logger.Column(a.cfg.Column),
			logger.Count("placeholders", len(placeholders)),
			logger.Error(err),
		)
		return nil, nil, err
	}

	a.log.InfoContext(ctx, "column anonymized",
		logger.Column(a.cfg.Column),
		logger.Count("rows", out.Len()),
		logger.Count("assigned", len(mapping)),
		logger.Count("placeholders", len(placeholders)),
		slog.String("overflow", a.cfg.Overflow.String()),
		logger.Duration(time.Since(start)),
	)

	return out, mapping, nil
}

func (a *Anonymizer) words(ctx context.Context, path string, t placeholder.WordType) ([]string, error) {
	if path == "" {
		words := placeholder.Words(t)
		if a.cfg.MaxWords > 0 && len(words) > a.cfg.MaxWords {
			words = words[:a.cfg.MaxWords]
		}
		return words, nil
	}

	var opts []wordlist.Option
	if a.cfg.WordListHeader {
		opts = append(opts, wordlist.WithHeader())
	}
	if a.cfg.MaxWords > 0 {
		opts = append(opts, wordlist.WithMaxWords(a.cfg.MaxWords))
	}

	words, err := wordlist.LoadFile(ctx, a.storage, path, opts...)
	if err != nil {
		return nil, err
	}
	a.log.DebugContext(ctx, "word list loaded", logger.Source(path), logger.Count("words", len(words)))
	return words, nil
}
