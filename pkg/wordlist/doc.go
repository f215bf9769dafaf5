// Package wordlist provides word sources for passphrase generation.
//
// A List answers a single query, Words(minLen, maxLen), by linear filtering over
// an in-memory slice. Lists come from a literal slice (New), any newline-delimited
// reader (Parse), a file on disk (LoadFile), or the embedded simple English
// dictionary (English). Blank lines and surrounding whitespace are ignored.
//
//	words, err := wordlist.LoadFile("words.txt")
//	if err != nil {
//	    return err
//	}
//	pass, err := passphrase.Generate(passphrase.XKCD(), words, nil)
//
// Lists are never modified after construction and can be shared between goroutines.
package wordlist
