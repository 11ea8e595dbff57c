// Package validator builds declarative validation from small Rule values.
//
// A Rule pairs a Check function with the error reported when it fails. Apply
// evaluates every rule and returns all failures at once as ValidationErrors:
//
//	err := validator.Apply(
//	    validator.Required("column", cfg.Column),
//	    validator.InList("source", cfg.Source, []string{"file", "postgres"}),
//	    validator.MinNum("max_words", cfg.MaxWords, 0),
//	)
//
// Returned errors match ErrValidationFailed with errors.Is, and
// ExtractValidationErrors recovers the field-level details.
package validator
