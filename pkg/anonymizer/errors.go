package anonymizer

import "errors"

var (
	ErrNilDataset            = errors.New("dataset is nil")
	ErrNotEnoughPlaceholders = errors.New("more distinct values than placeholders")
	ErrDuplicatePlaceholder  = errors.New("two distinct values would share a placeholder")
	ErrInvalidOverflow       = errors.New("invalid overflow policy")
	ErrInvalidConfig         = errors.New("invalid anonymizer configuration")
)
