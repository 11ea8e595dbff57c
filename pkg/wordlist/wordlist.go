package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/sillynames/pkg/file"
	"github.com/dmitrymomot/sillynames/pkg/sanitizer"
)

// maxRecordSize bounds a single record. Fixed-width word lists are far below it.
const maxRecordSize = 64 * 1024

// Option configures Load.
type Option func(*options)

type options struct {
	header   bool
	maxWords int
}

// WithHeader drops the first non-blank record, for resources whose first line
// is a column title rather than a word.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithMaxWords stops reading after n words. Values <= 0 mean no limit.
func WithMaxWords(n int) Option {
	return func(o *options) { o.maxWords = n }
}

// Load reads one word per record from r. Records are cleaned with
// sanitizer.Record, blank records are skipped, order and duplicates are kept.
func Load(r io.Reader, opts ...Option) ([]string, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordSize)

	var words []string
	headerSkipped := !o.header
	for scanner.Scan() {
		word := sanitizer.Record(scanner.Text())
		if word == "" {
			continue
		}
		if !headerSkipped {
			headerSkipped = true
			continue
		}

		words = append(words, word)
		if o.maxWords > 0 && len(words) == o.maxWords {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}

	return words, nil
}

// LoadFile opens path through storage and loads it. A missing resource keeps
// file.ErrFileNotFound in the error chain.
func LoadFile(ctx context.Context, storage file.Reader, path string, opts ...Option) ([]string, error) {
	rc, err := storage.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFailedToOpen, path, err)
	}
	defer func() { _ = rc.Close() }()

	words, err := Load(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}
