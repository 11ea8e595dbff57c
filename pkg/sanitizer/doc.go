// Package sanitizer provides small string cleaning helpers used when reading
// word lists and building placeholder names.
//
// Helpers are plain func(string) string values so they can be chained with
// Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.ToTitle,
//	)
//
//	clean("  happy\t\tOTTER\n") // "Happy Otter"
//
// Record is the preconfigured pipeline applied to every word list record.
package sanitizer
