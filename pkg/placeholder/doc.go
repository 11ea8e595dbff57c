// Package placeholder builds the two-word substitute names ("Happy Otter")
// that replace original values during anonymization.
//
// Generate pairs two ordered word lists by index: the i-th placeholder is the
// i-th adjective, a separator and the i-th animal. The sequence is as long as
// the shorter list. Nothing guarantees uniqueness unless Options.Unique is set;
// duplicate entries in the word lists produce duplicate placeholders.
//
// # Ordering
//
// By default placeholders follow list order, so the same inputs always give the
// same output. Set Shuffle to shuffle each list independently before pairing.
// A non-zero Seed makes the shuffle reproducible, which is what tests want:
//
//	names, err := placeholder.Generate(adjectives, animals, &placeholder.Options{
//	    Shuffle: true,
//	    Seed:    42,
//	    Case:    placeholder.Title,
//	})
//
// # Built-in dictionaries
//
// Words(Adjective) and Words(Animal) expose curated default lists, and Defaults
// generates placeholders from them. They are used when no word list resources
// are configured.
package placeholder
