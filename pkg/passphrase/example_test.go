package passphrase_test

import (
	"fmt"

	"github.com/dmitrymomot/xkcdpass/pkg/passphrase"
	"github.com/dmitrymomot/xkcdpass/pkg/wordlist"
)

func ExampleGenerate() {
	cfg := passphrase.Config{
		Words:     passphrase.WordsConfig{Count: 3, MinLength: 4, MaxLength: 8, Transformation: passphrase.AlternatingCase},
		Separator: passphrase.SeparatorConfig{Mode: passphrase.SingleCharacter, Candidates: passphrase.Charset(".")},
		PaddingSymbols: passphrase.SymbolPadding{
			Style:      passphrase.Adaptive{TargetLength: 24},
			Mode:       passphrase.SingleCharacter,
			Candidates: passphrase.Charset("!"),
		},
	}

	pass, err := passphrase.Generate(cfg, wordlist.New("Staple"), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(pass)
	// Output: staple.STAPLE.staple!!!!
}
