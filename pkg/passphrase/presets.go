package passphrase

import (
	"fmt"
	"slices"
)

const (
	symbolsWide   = "!@$%^&*-_+=:|~?/.;"
	symbolsWeb    = "!@$%^&*+=:|~?"
	separatorsWeb = "-+=.*_|~,"
)

// presets is the closed catalog of named configurations.
var presets = map[string]func() Config{
	"default": Default,
	"appleid": AppleID,
	"ntml":    NTML,
	"xkcd":    XKCD,
	"web16":   Web16,
	"web32":   Web32,
	"wifi":    WiFi,
}

// Preset returns a fresh copy of the named configuration.
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

// PresetNames returns the catalog names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default is a balanced configuration, e.g. "$$12*horse*BATTERY*staple*34$$".
func Default() Config {
	return Config{
		Words: WordsConfig{Count: 3, MinLength: 4, MaxLength: 8, Transformation: AlternatingCase},
		Separator: SeparatorConfig{
			Mode:       RandomCharacter,
			Candidates: Charset(symbolsWide),
		},
		PaddingDigits: DigitPadding{Before: 2, After: 2},
		PaddingSymbols: SymbolPadding{
			Style:      Fixed{Before: 2, After: 2},
			Mode:       RandomCharacter,
			Candidates: Charset(symbolsWide),
		},
	}
}

// AppleID fits the Apple ID password rules.
func AppleID() Config {
	return Config{
		Words: WordsConfig{Count: 3, MinLength: 5, MaxLength: 7, Transformation: RandomCase},
		Separator: SeparatorConfig{
			Mode:       RandomCharacter,
			Candidates: Charset("-:.,"),
		},
		PaddingDigits: DigitPadding{Before: 2, After: 2},
		PaddingSymbols: SymbolPadding{
			Style:      Fixed{Before: 1, After: 1},
			Mode:       RandomCharacter,
			Candidates: Charset("!?@&"),
		},
	}
}

// NTML produces short passwords for NTLM-hashed accounts.
func NTML() Config {
	return Config{
		Words: WordsConfig{Count: 2, MinLength: 5, MaxLength: 5, Transformation: CapitalizeRest},
		Separator: SeparatorConfig{
			Mode:       RandomCharacter,
			Candidates: Charset(separatorsWeb),
		},
		PaddingDigits: DigitPadding{Before: 1, After: 0},
		PaddingSymbols: SymbolPadding{
			Style:      Fixed{Before: 0, After: 1},
			Mode:       RandomCharacter,
			Candidates: Charset(symbolsWeb),
		},
	}
}

// XKCD mirrors the comic: four words joined by dashes.
func XKCD() Config {
	return Config{
		Words: WordsConfig{Count: 4, MinLength: 4, MaxLength: 8, Transformation: RandomCase},
		Separator: SeparatorConfig{
			Mode:       SingleCharacter,
			Candidates: Charset("-"),
		},
		PaddingDigits: DigitPadding{Before: 0, After: 0},
		PaddingSymbols: SymbolPadding{
			Style:      Fixed{Before: 0, After: 0},
			Mode:       SingleCharacter,
			Candidates: Charset("-"),
		},
	}
}

// Web16 stays within 16 characters.
func Web16() Config {
	return Config{
		Words: WordsConfig{Count: 3, MinLength: 4, MaxLength: 4, Transformation: RandomCase},
		Separator: SeparatorConfig{
			Mode:       RandomCharacter,
			Candidates: Charset(separatorsWeb),
		},
		PaddingDigits: DigitPadding{Before: 0, After: 0},
		PaddingSymbols: SymbolPadding{
			Style:      Fixed{Before: 1, After: 1},
			Mode:       RandomCharacter,
			Candidates: Charset(symbolsWeb),
		},
	}
}

// Web32 stays within 32 characters.
func Web32() Config {
	return Config{
		Words: WordsConfig{Count: 4, MinLength: 4, MaxLength: 5, Transformation: AlternatingCase},
		Separator: SeparatorConfig{
			Mode:       RandomCharacter,
			Candidates: Charset(separatorsWeb),
		},
		PaddingDigits: DigitPadding{Before: 2, After: 2},
		PaddingSymbols: SymbolPadding{
			Style:      Fixed{Before: 1, After: 1},
			Mode:       RandomCharacter,
			Candidates: Charset(symbolsWeb),
		},
	}
}

// WiFi fills a WPA2 passphrase up to 63 characters.
func WiFi() Config {
	return Config{
		Words: WordsConfig{Count: 6, MinLength: 4, MaxLength: 8, Transformation: RandomCase},
		Separator: SeparatorConfig{
			Mode:       RandomCharacter,
			Candidates: Charset(separatorsWeb),
		},
		PaddingDigits: DigitPadding{Before: 4, After: 4},
		PaddingSymbols: SymbolPadding{
			Style:      Adaptive{TargetLength: 63},
			Mode:       RandomCharacter,
			Candidates: Charset(symbolsWeb),
		},
	}
}
