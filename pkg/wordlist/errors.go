package wordlist

import "errors"

var (
	// ErrEmptyWordList is returned when a resource holds no words after cleaning.
	ErrEmptyWordList = errors.New("word list is empty")
	// ErrFailedToRead is returned when the resource cannot be read to the end.
	ErrFailedToRead = errors.New("failed to read word list")
	// ErrFailedToOpen is returned when the resource cannot be opened.
	ErrFailedToOpen = errors.New("failed to open word list")
)
