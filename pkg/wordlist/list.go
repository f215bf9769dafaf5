package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// List is an immutable in-memory word list. It is safe for concurrent readers.
type List struct {
	words []string
}

// New builds a list from words, trimming whitespace and dropping blank entries.
func New(words ...string) *List {
	l := &List{words: make([]string, 0, len(words))}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			l.words = append(l.words, w)
		}
	}
	return l
}

// Parse reads one word per line. Blank lines are ignored.
func Parse(r io.Reader) (*List, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadWordList, err)
	}
	return New(words...), nil
}

// LoadFile parses the newline-delimited word list at path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadWordList, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if l.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyWordList, path)
	}
	return l, nil
}

// Words returns the words whose length in characters lies in [minLen, maxLen].
// The result is a new slice on every call.
func (l *List) Words(minLen, maxLen int) []string {
	var out []string
	for _, w := range l.words {
		if n := utf8.RuneCountInString(w); n >= minLen && n <= maxLen {
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	return len(l.words)
}
