package dataset

import "errors"

var (
	ErrColumnNotFound    = errors.New("column not found")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrRowShape          = errors.New("row length does not match column count")
	ErrUncomparableValue = errors.New("column holds a value that cannot be compared")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMalformedInput    = errors.New("malformed dataset input")
	ErrFailedToEncode    = errors.New("failed to encode dataset")
)
