package wordlist

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed simple_en.txt
var simpleEnglish string

var english = sync.OnceValue(func() *List {
	return New(strings.Split(simpleEnglish, "\n")...)
})

// English returns the bundled simple English dictionary.
// It is parsed on first use and shared afterwards.
func English() *List {
	return english()
}
