// Package wordlist loads ordered word lists from fixed-width text resources,
// one word per record.
//
// Padding, control characters and a leading byte order mark are stripped from
// each record. Blank records are skipped. Nothing else is validated: duplicate
// words and their order are preserved exactly as stored.
//
//	adjectives, err := wordlist.LoadFile(ctx, storage, "resources/adjectives.txt", wordlist.WithHeader())
//	if errors.Is(err, wordlist.ErrEmptyWordList) {
//	    // resource exists but holds no words
//	}
package wordlist
