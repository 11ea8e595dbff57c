package validator

import "errors"

// ErrValidationFailed matches every error returned by Apply.
var ErrValidationFailed = errors.New("validation failed")
