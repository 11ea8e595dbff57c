package placeholder

import (
	"math/rand/v2"
	"slices"

	"github.com/dmitrymomot/sillynames/pkg/sanitizer"
)

// Generate pairs adjectives[i] with animals[i] for every index below the
// shorter list's length and returns the placeholders in that order.
// The input slices are never modified.
func Generate(adjectives, animals []string, opts *Options) ([]string, error) {
	if len(adjectives) == 0 || len(animals) == 0 {
		return nil, ErrEmptyWordList
	}

	o := opts.merge(defaultOptions())

	if o.Shuffle {
		rng := newRand(o.Seed)
		adjectives = shuffled(rng, adjectives)
		animals = shuffled(rng, animals)
	}

	n := min(len(adjectives), len(animals))
	names := make([]string, 0, n)

	var seen map[string]struct{}
	if o.Unique {
		seen = make(map[string]struct{}, n)
	}

	for i := range n {
		name := applyCase(adjectives[i]+*o.Separator+animals[i], o.Case)

		if seen != nil {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
		}

		names = append(names, name)
	}

	return names, nil
}

// Defaults generates placeholders from the built-in dictionaries.
func Defaults(opts *Options) []string {
	// The built-in lists are never empty.
	names, _ := Generate(defaultWords[Adjective], defaultWords[Animal], opts)
	return names
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func shuffled(rng *rand.Rand, words []string) []string {
	out := slices.Clone(words)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func applyCase(s string, c Case) string {
	switch c {
	case Title:
		return sanitizer.ToTitle(s)
	case Lower:
		return sanitizer.ToLower(s)
	default:
		return s
	}
}
