package wordlist

import "errors"

var (
	// ErrReadWordList is returned when the word list source cannot be read.
	ErrReadWordList = errors.New("failed to read word list")

	// ErrEmptyWordList is returned by LoadFile when the file holds no words.
	ErrEmptyWordList = errors.New("word list is empty")
)
