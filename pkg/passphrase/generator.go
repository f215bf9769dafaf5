package passphrase

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WordSource provides the candidate words for a generation call.
// Words returns every word whose length in characters lies in [minLen, maxLen].
// The returned slice must not be modified by the caller.
type WordSource interface {
	Words(minLen, maxLen int) []string
}

// NewRand returns a ChaCha8 generator seeded from crypto/rand.
// The result must not be shared between goroutines.
func NewRand() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Generate builds one password from cfg using words as the word source.
// A nil rng is replaced with NewRand(). On failure no partial password is returned.
func Generate(cfg Config, words WordSource, rng *rand.Rand) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if words == nil {
		return "", fmt.Errorf("%w: word source is nil", ErrEmptyWordCandidates)
	}
	if rng == nil {
		rng = NewRand()
	}

	candidates := words.Words(cfg.Words.MinLength, cfg.Words.MaxLength)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: length %d..%d", ErrEmptyWordCandidates, cfg.Words.MinLength, cfg.Words.MaxLength)
	}

	chosen := make([]string, cfg.Words.Count)
	for i := range chosen {
		chosen[i] = toLowerASCII(candidates[rng.IntN(len(candidates))])
	}
	if err := transform(chosen, cfg.Words.Transformation, rng); err != nil {
		return "", err
	}

	sep, err := pickCharacter(cfg.Separator.Mode, cfg.Separator.Candidates, 0, rng)
	if err != nil {
		return "", fmt.Errorf("separator: %w", err)
	}
	pad, err := pickCharacter(cfg.PaddingSymbols.Mode, cfg.PaddingSymbols.Candidates, sep, rng)
	if err != nil {
		return "", fmt.Errorf("padding: %w", err)
	}

	var digitsBefore, digitsAfter string
	if n := cfg.PaddingDigits.Before; n > 0 {
		digitsBefore = digitBlock(n, rng)
	}
	if n := cfg.PaddingDigits.After; n > 0 {
		digitsAfter = digitBlock(n, rng)
	}

	var b strings.Builder
	if digitsBefore != "" {
		b.WriteString(digitsBefore)
		b.WriteRune(sep)
	}
	for i, word := range chosen {
		if i > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(word)
	}
	if digitsAfter != "" {
		b.WriteRune(sep)
		b.WriteString(digitsAfter)
	}
	pass := b.String()

	switch style := cfg.PaddingSymbols.Style.(type) {
	case Adaptive:
		if missing := style.TargetLength - utf8.RuneCountInString(pass); missing > 0 {
			pass += strings.Repeat(string(pad), missing)
		}
	case Fixed:
		pass = strings.Repeat(string(pad), style.Before) + pass + strings.Repeat(string(pad), style.After)
	default:
		return "", fmt.Errorf("%w: unsupported padding style %T", ErrInvalidConfiguration, style)
	}

	return pass, nil
}

// transform applies the casing policy in place. Words are already lowercase.
func transform(words []string, t Transformation, rng *rand.Rand) error {
	switch t {
	case CapitalizeFirst:
		for i, w := range words {
			_, size := utf8.DecodeRuneInString(w)
			words[i] = toUpperASCII(w[:size]) + w[size:]
		}
	case CapitalizeRest:
		for i, w := range words {
			_, size := utf8.DecodeRuneInString(w)
			words[i] = w[:size] + toUpperASCII(w[size:])
		}
	case LowerCase:
	case UpperCase:
		for i, w := range words {
			words[i] = toUpperASCII(w)
		}
	case AlternatingCase:
		for i := 1; i < len(words); i += 2 {
			words[i] = toUpperASCII(words[i])
		}
	case RandomCase:
		for i, w := range words {
			if rng.IntN(2) == 1 {
				words[i] = toUpperASCII(w)
			}
		}
	default:
		return fmt.Errorf("%w: unknown transformation %d", ErrInvalidConfiguration, int(t))
	}
	return nil
}

// pickCharacter selects one character for the whole password.
// sep is returned as is for SeparatorCharacter.
func pickCharacter(mode CharacterMode, candidates Charset, sep rune, rng *rand.Rand) (rune, error) {
	switch mode {
	case SingleCharacter:
		if len(candidates) == 0 {
			return 0, ErrEmptyCharacterCandidates
		}
		return candidates[0], nil
	case RandomCharacter:
		if len(candidates) == 0 {
			return 0, ErrEmptyCharacterCandidates
		}
		return candidates[rng.IntN(len(candidates))], nil
	case SeparatorCharacter:
		return sep, nil
	default:
		return 0, fmt.Errorf("%w: unknown character mode %d", ErrInvalidConfiguration, int(mode))
	}
}

// digitBlock draws a number with exactly n digits from [10^(n-1), 10^n-1].
// For n == 1 this is [1, 9].
func digitBlock(n int, rng *rand.Rand) string {
	lo := pow10(n - 1)
	hi := pow10(n)
	return strconv.FormatInt(lo+rng.Int64N(hi-lo), 10)
}

func pow10(n int) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}
	return v
}

func toLowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func toUpperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
