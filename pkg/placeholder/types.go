package placeholder

// WordType identifies a built-in dictionary.
type WordType int

const (
	Adjective WordType = iota
	Animal
)

// Case controls how generated placeholders are cased.
type Case int

const (
	AsIs  Case = iota // keep the words exactly as loaded
	Title             // "happy otter" -> "Happy Otter"
	Lower             // "Happy Otter" -> "happy otter"
)

// Options configures placeholder generation.
type Options struct {
	// Separator between the adjective and the animal. An empty string joins
	// the words directly ("HappyOtter").
	// Default: " " (when nil)
	Separator *string

	// Shuffle shuffles each word list independently before pairing.
	// Default: false (positional pairing in list order)
	Shuffle bool

	// Seed for the shuffle. The same seed and inputs always produce the same
	// sequence. Zero picks an unpredictable seed.
	Seed uint64

	// Case applied to every placeholder.
	// Default: AsIs
	Case Case

	// Unique drops placeholders equal to an earlier one, which happens when
	// the word lists contain duplicate entries.
	// Default: false
	Unique bool
}

const defaultSeparator = " "

func defaultOptions() *Options {
	sep := defaultSeparator
	return &Options{
		Separator: &sep,
		Case:      AsIs,
	}
}

// merge combines user options with defaults.
func (o *Options) merge(defaults *Options) *Options {
	if o == nil {
		return defaults
	}

	result := *o

	if result.Separator == nil {
		result.Separator = defaults.Separator
	}

	return &result
}
