package placeholder

import "errors"

var (
	// ErrEmptyWordList is returned when either word list has no entries.
	ErrEmptyWordList = errors.New("placeholder: both word lists must be non-empty")
	// ErrInvalidCase is returned by ParseCase for unknown case names.
	ErrInvalidCase = errors.New("placeholder: invalid case")
)
