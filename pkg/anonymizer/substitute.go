package anonymizer

import (
	"fmt"

	"github.com/dmitrymomot/sillynames/pkg/dataset"
)

// Assignment pairs an original column value with its placeholder.
type Assignment struct {
	Original    any
	Placeholder string
}

// Mapping lists assignments in the order the original values first appear.
// It is returned for reporting and is never persisted.
type Mapping []Assignment

// Lookup returns the placeholder assigned to original.
func (m Mapping) Lookup(original any) (string, bool) {
	if !dataset.Comparable(original) {
		return "", false
	}
	key := dataset.Key(original)
	for _, a := range m {
		if dataset.Key(a.Original) == key {
			return a.Placeholder, true
		}
	}
	return "", false
}

// Option configures Substitute.
type Option func(*substituteOptions)

type substituteOptions struct {
	overflow    Overflow
	unique      bool
	skipMissing bool
}

// WithOverflow sets the overflow policy. Default: OverflowError.
func WithOverflow(o Overflow) Option {
	return func(so *substituteOptions) { so.overflow = o }
}

// WithUniquePlaceholders rejects a mapping in which two distinct values get
// equal placeholders. By default such collisions are accepted.
func WithUniquePlaceholders() Option {
	return func(so *substituteOptions) { so.unique = true }
}

// WithSkipMissing leaves missing cells (nil or "") untouched so they consume
// no placeholder. By default a missing cell is a value like any other.
func WithSkipMissing() Option {
	return func(so *substituteOptions) { so.skipMissing = true }
}

// Substitute returns a copy of ds in which every distinct value of column is
// replaced by the placeholder at the same position, distinct values being
// enumerated in order of first appearance. ds itself is not modified.
//
// Missing cells (nil or "") are replaced too, unless WithSkipMissing is set.
// All NaN cells share one placeholder.
func Substitute(ds *dataset.Dataset, column string, placeholders []string, opts ...Option) (*dataset.Dataset, Mapping, error) {
	if ds == nil {
		return nil, nil, ErrNilDataset
	}

	o := substituteOptions{overflow: OverflowError}
	for _, opt := range opts {
		opt(&o)
	}

	distinct, err := ds.Distinct(column)
	if err != nil {
		return nil, nil, err
	}

	values := make([]any, 0, len(distinct))
	for _, v := range distinct {
		if !o.skipMissing || !isMissing(v) {
			values = append(values, v)
		}
	}

	if len(values) > len(placeholders) {
		switch {
		case o.overflow == OverflowError:
			return nil, nil, fmt.Errorf("%w: column %q has %d distinct values, %d placeholders available",
				ErrNotEnoughPlaceholders, column, len(values), len(placeholders))
		case o.overflow == OverflowWrap && len(placeholders) == 0:
			return nil, nil, fmt.Errorf("%w: nothing to wrap around", ErrNotEnoughPlaceholders)
		}
	}

	mapping := make(Mapping, 0, len(values))
	lookup := make(map[any]string, len(values))
	owner := make(map[string]any, len(values))
	for i, v := range values {
		var p string
		switch {
		case i < len(placeholders):
			p = placeholders[i]
		case o.overflow == OverflowWrap:
			p = placeholders[i%len(placeholders)]
		default:
			continue // OverflowPassthrough
		}

		if o.unique {
			if prev, taken := owner[p]; taken {
				return nil, nil, fmt.Errorf("%w: %v and %v both map to %q", ErrDuplicatePlaceholder, prev, v, p)
			}
			owner[p] = v
		}

		lookup[dataset.Key(v)] = p
		mapping = append(mapping, Assignment{Original: v, Placeholder: p})
	}

	out := ds.Clone()
	for _, row := range out.Rows {
		if p, ok := lookup[dataset.Key(row[column])]; ok {
			row[column] = p
		}
	}

	return out, mapping, nil
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
