package passphrase

import (
	"fmt"
)

// MaxPaddingDigits is the largest digit block that fits an int64.
const MaxPaddingDigits = 18

// Transformation selects the letter casing applied to the chosen words.
type Transformation int

// Word transformations.
const (
	CapitalizeFirst Transformation = iota // Horse
	CapitalizeRest                        // hORSE
	LowerCase                             // horse
	UpperCase                             // HORSE
	AlternatingCase                       // horse-BATTERY-staple
	RandomCase                            // coin flip per word
)

var transformationNames = map[Transformation]string{
	CapitalizeFirst: "capitalize-first",
	CapitalizeRest:  "capitalize-rest",
	LowerCase:       "lower",
	UpperCase:       "upper",
	AlternatingCase: "alternating",
	RandomCase:      "random",
}

func (t Transformation) String() string {
	if name, ok := transformationNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Transformation(%d)", int(t))
}

// MarshalText encodes the transformation by name.
func (t Transformation) MarshalText() ([]byte, error) {
	name, ok := transformationNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown transformation %d", ErrInvalidConfiguration, int(t))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a transformation name.
func (t *Transformation) UnmarshalText(text []byte) error {
	for value, name := range transformationNames {
		if name == string(text) {
			*t = value
			return nil
		}
	}
	return fmt.Errorf("%w: unknown transformation %q", ErrInvalidConfiguration, text)
}

// CharacterMode decides how a single character is picked from a candidate list.
type CharacterMode int

// Character selection modes. SeparatorCharacter is only meaningful for padding.
const (
	SingleCharacter    CharacterMode = iota // always the first candidate
	RandomCharacter                         // uniform among candidates
	SeparatorCharacter                      // reuse the chosen separator
)

var characterModeNames = map[CharacterMode]string{
	SingleCharacter:    "single",
	RandomCharacter:    "random",
	SeparatorCharacter: "separator",
}

func (m CharacterMode) String() string {
	if name, ok := characterModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CharacterMode(%d)", int(m))
}

// MarshalText encodes the mode by name.
func (m CharacterMode) MarshalText() ([]byte, error) {
	name, ok := characterModeNames[m]
	if !ok {
		return nil, fmt.Errorf("%w: unknown character mode %d", ErrInvalidConfiguration, int(m))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a mode name.
func (m *CharacterMode) UnmarshalText(text []byte) error {
	for value, name := range characterModeNames {
		if name == string(text) {
			*m = value
			return nil
		}
	}
	return fmt.Errorf("%w: unknown character mode %q", ErrInvalidConfiguration, text)
}

// Charset is an ordered list of candidate characters.
type Charset []rune

func (c Charset) String() string { return string(c) }

// PaddingStyle is either Adaptive or Fixed.
type PaddingStyle interface {
	paddingStyle()
}

// Adaptive pads the end of the password up to TargetLength characters.
// Longer passwords are left as is.
type Adaptive struct {
	TargetLength int
}

// Fixed adds Before padding characters at the start and After at the end.
type Fixed struct {
	Before int
	After  int
}

func (Adaptive) paddingStyle() {}
func (Fixed) paddingStyle()    {}

// Config fully determines password generation apart from drawn randomness.
type Config struct {
	Words          WordsConfig     `yaml:"words"`
	Separator      SeparatorConfig `yaml:"separator"`
	PaddingDigits  DigitPadding    `yaml:"padding_digits"`
	PaddingSymbols SymbolPadding   `yaml:"padding_symbols"`
}

// WordsConfig describes how many words to draw and how to case them.
type WordsConfig struct {
	Count          int            `yaml:"count"`
	MinLength      int            `yaml:"min_length"`
	MaxLength      int            `yaml:"max_length"`
	Transformation Transformation `yaml:"transformation"`
}

// SeparatorConfig picks the one character placed between words and digit blocks.
type SeparatorConfig struct {
	Mode       CharacterMode `yaml:"mode"`
	Candidates Charset       `yaml:"candidates"`
}

// DigitPadding is the number of digits placed before and after the words.
type DigitPadding struct {
	Before int `yaml:"before"`
	After  int `yaml:"after"`
}

// SymbolPadding describes the outer padding.
// Candidates are ignored when Mode is SeparatorCharacter.
type SymbolPadding struct {
	Style      PaddingStyle
	Mode       CharacterMode
	Candidates Charset
}

// Validate reports structural problems. Empty candidate lists are reported by
// Generate, only when a policy actually needs them.
func (c Config) Validate() error {
	w := c.Words
	switch {
	case w.Count < 1:
		return fmt.Errorf("%w: word count must be at least 1, got %d", ErrInvalidConfiguration, w.Count)
	case w.MinLength < 0:
		return fmt.Errorf("%w: negative minimum word length %d", ErrInvalidConfiguration, w.MinLength)
	case w.MinLength > w.MaxLength:
		return fmt.Errorf("%w: minimum word length %d exceeds maximum %d", ErrInvalidConfiguration, w.MinLength, w.MaxLength)
	}
	if _, ok := transformationNames[w.Transformation]; !ok {
		return fmt.Errorf("%w: unknown transformation %d", ErrInvalidConfiguration, int(w.Transformation))
	}

	switch c.Separator.Mode {
	case SingleCharacter, RandomCharacter:
	default:
		return fmt.Errorf("%w: separator mode %s is not allowed", ErrInvalidConfiguration, c.Separator.Mode)
	}

	for _, n := range []int{c.PaddingDigits.Before, c.PaddingDigits.After} {
		if n < 0 || n > MaxPaddingDigits {
			return fmt.Errorf("%w: digit padding must be within 0..%d, got %d", ErrInvalidConfiguration, MaxPaddingDigits, n)
		}
	}

	p := c.PaddingSymbols
	if _, ok := characterModeNames[p.Mode]; !ok {
		return fmt.Errorf("%w: unknown padding mode %d", ErrInvalidConfiguration, int(p.Mode))
	}
	switch s := p.Style.(type) {
	case Adaptive:
		if s.TargetLength < 0 {
			return fmt.Errorf("%w: negative adaptive target length %d", ErrInvalidConfiguration, s.TargetLength)
		}
	case Fixed:
		if s.Before < 0 || s.After < 0 {
			return fmt.Errorf("%w: negative fixed padding %d/%d", ErrInvalidConfiguration, s.Before, s.After)
		}
	case nil:
		return fmt.Errorf("%w: padding style is not set", ErrInvalidConfiguration)
	default:
		return fmt.Errorf("%w: unsupported padding style %T", ErrInvalidConfiguration, s)
	}
	return nil
}
