// Package passphrase builds XKCD-style passwords: several dictionary words joined
// by a separator, optionally wrapped in digit blocks and padding symbols.
//
// A password is fully described by a Config and a WordSource. The Config is a plain
// value record; the WordSource is any type able to list words within a length range
// (see package wordlist for the bundled implementations).
//
// # Architecture
//
// Generate runs a fixed pipeline:
//
//   - query the word source once and draw Words.Count words with replacement;
//   - lowercase them and apply the Transformation policy;
//   - pick ONE separator and ONE padding character for the whole password;
//   - draw the optional digit blocks (a block of n digits never starts with 0);
//   - join digits, words and separators, then apply the Adaptive or Fixed padding.
//
// Randomness comes from a caller-owned *rand.Rand (math/rand/v2). Pass nil to get a
// ChaCha8 generator seeded from crypto/rand. A *rand.Rand is not safe for concurrent
// use, so concurrent callers must each own one; Config values and word lists can be
// shared freely.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/xkcdpass/pkg/passphrase"
//	    "github.com/dmitrymomot/xkcdpass/pkg/wordlist"
//	)
//
//	pass, err := passphrase.Generate(passphrase.Default(), wordlist.English(), nil)
//	if err != nil {
//	    // handle error
//	}
//
// Named presets are available as constructors (Default, AppleID, NTML, XKCD, Web16,
// Web32, WiFi) and by name through Preset. Custom configurations are built by filling
// every field:
//
//	cfg := passphrase.Config{
//	    Words:     passphrase.WordsConfig{Count: 4, MinLength: 4, MaxLength: 6, Transformation: passphrase.CapitalizeFirst},
//	    Separator: passphrase.SeparatorConfig{Mode: passphrase.SingleCharacter, Candidates: passphrase.Charset(".")},
//	    PaddingDigits: passphrase.DigitPadding{After: 3},
//	    PaddingSymbols: passphrase.SymbolPadding{
//	        Style: passphrase.Fixed{After: 1},
//	        Mode:  passphrase.SeparatorCharacter,
//	    },
//	}
//
// # Persistence
//
// Configurations round-trip through YAML (WriteYAML, ParseConfig, LoadConfig).
// Enums are stored by name and the padding style as a tagged mapping:
//
//	padding_symbols:
//	  style:
//	    kind: adaptive
//	    target_length: 63
//	  mode: random
//	  candidates: '!@$%^&*+=:|~?'
//
// # Error Handling
//
// All failures are sentinel errors usable with errors.Is:
//
//   - ErrInvalidConfiguration     – structurally invalid Config.
//   - ErrEmptyWordCandidates      – no word fits the length bounds.
//   - ErrEmptyCharacterCandidates – a selection policy has nothing to choose from.
//   - ErrUnknownPreset            – Preset called with a name outside the catalog.
//   - ErrDecodeConfig / ErrEncodeConfig – persisted format failures.
//
// Generate never returns a partial password.
package passphrase
