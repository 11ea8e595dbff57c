package validator

import (
	"fmt"
	"strings"
)

// Required fails for empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// NotEmpty fails for an empty string. Whitespace counts as content.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{Field: field, Message: "must not be empty"},
	}
}

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
		},
	}
}

func MinNum[T Numeric](field string, value, minimum T) Rule {
	return Rule{
		Check: func() bool { return value >= minimum },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", minimum),
		},
	}
}

// RequiredIf fails when present is false while cond holds, e.g. a storage
// backend is required only once a path is configured.
func RequiredIf(field string, present, cond bool, reason string) Rule {
	return Rule{
		Check: func() bool { return !cond || present },
		Error: ValidationError{Field: field, Message: "is required " + reason},
	}
}
