package passphrase

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	styleAdaptive = "adaptive"
	styleFixed    = "fixed"
)

type adaptiveYAML struct {
	Kind         string `yaml:"kind"`
	TargetLength int    `yaml:"target_length"`
}

type fixedYAML struct {
	Kind   string `yaml:"kind"`
	Before int    `yaml:"before"`
	After  int    `yaml:"after"`
}

type symbolPaddingYAML struct {
	Style      any           `yaml:"style"`
	Mode       CharacterMode `yaml:"mode"`
	Candidates Charset       `yaml:"candidates"`
}

// MarshalYAML encodes the charset as a plain string.
func (c Charset) MarshalYAML() (any, error) {
	return string(c), nil
}

// UnmarshalYAML decodes a string into its characters. An empty string yields nil.
func (c *Charset) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*c = nil
		return nil
	}
	*c = Charset(s)
	return nil
}

// UnmarshalYAML requires every section and rejects unknown ones.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	var in plain
	if err := decodeFields(value, &in, "words", "separator", "padding_digits", "padding_symbols"); err != nil {
		return err
	}
	*c = Config(in)
	return nil
}

// UnmarshalYAML requires every field, so a missing transformation is not read as the zero variant.
func (w *WordsConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain WordsConfig
	var in plain
	if err := decodeFields(value, &in, "count", "min_length", "max_length", "transformation"); err != nil {
		return err
	}
	*w = WordsConfig(in)
	return nil
}

func (s *SeparatorConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain SeparatorConfig
	var in plain
	if err := decodeFields(value, &in, "mode", "candidates"); err != nil {
		return err
	}
	*s = SeparatorConfig(in)
	return nil
}

func (d *DigitPadding) UnmarshalYAML(value *yaml.Node) error {
	type plain DigitPadding
	var in plain
	if err := decodeFields(value, &in, "before", "after"); err != nil {
		return err
	}
	*d = DigitPadding(in)
	return nil
}

// MarshalYAML flattens the padding style variant into a tagged mapping.
func (p SymbolPadding) MarshalYAML() (any, error) {
	out := symbolPaddingYAML{Mode: p.Mode, Candidates: p.Candidates}
	switch s := p.Style.(type) {
	case Adaptive:
		out.Style = adaptiveYAML{Kind: styleAdaptive, TargetLength: s.TargetLength}
	case Fixed:
		out.Style = fixedYAML{Kind: styleFixed, Before: s.Before, After: s.After}
	default:
		return nil, fmt.Errorf("%w: unsupported padding style %T", ErrEncodeConfig, p.Style)
	}
	return out, nil
}

// UnmarshalYAML restores the padding style variant from its tagged mapping.
func (p *SymbolPadding) UnmarshalYAML(value *yaml.Node) error {
	f, err := fields(value, "style", "mode", "candidates")
	if err != nil {
		return err
	}
	style, err := decodeStyle(f["style"])
	if err != nil {
		return err
	}
	var mode CharacterMode
	if err := f["mode"].Decode(&mode); err != nil {
		return err
	}
	var candidates Charset
	if err := f["candidates"].Decode(&candidates); err != nil {
		return err
	}

	*p = SymbolPadding{Style: style, Mode: mode, Candidates: candidates}
	return nil
}

func decodeStyle(node *yaml.Node) (PaddingStyle, error) {
	var kind string
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "kind" {
				kind = node.Content[i+1].Value
			}
		}
	}

	switch kind {
	case styleAdaptive:
		var in adaptiveYAML
		if err := decodeFields(node, &in, "kind", "target_length"); err != nil {
			return nil, err
		}
		return Adaptive{TargetLength: in.TargetLength}, nil
	case styleFixed:
		var in fixedYAML
		if err := decodeFields(node, &in, "kind", "before", "after"); err != nil {
			return nil, err
		}
		return Fixed{Before: in.Before, After: in.After}, nil
	case "":
		return nil, fmt.Errorf("%w: line %d: padding style needs a kind", ErrDecodeConfig, node.Line)
	default:
		return nil, fmt.Errorf("%w: unknown padding style %q", ErrInvalidConfiguration, kind)
	}
}

// fields indexes a mapping node that must hold exactly the given keys, each with a value.
// Nested decoders do not inherit KnownFields, so every mapping is checked here.
func fields(node *yaml.Node, keys ...string) (map[string]*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping", ErrDecodeConfig, node.Line)
	}

	out := make(map[string]*yaml.Node, len(keys))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch _, seen := out[key.Value]; {
		case !slices.Contains(keys, key.Value):
			return nil, fmt.Errorf("%w: line %d: unknown field %q", ErrDecodeConfig, key.Line, key.Value)
		case seen:
			return nil, fmt.Errorf("%w: line %d: duplicate field %q", ErrDecodeConfig, key.Line, key.Value)
		case val.ShortTag() == "!!null":
			return nil, fmt.Errorf("%w: line %d: field %q has no value", ErrDecodeConfig, key.Line, key.Value)
		}
		out[key.Value] = val
	}

	for _, key := range keys {
		if _, ok := out[key]; !ok {
			return nil, fmt.Errorf("%w: line %d: missing field %q", ErrDecodeConfig, node.Line, key)
		}
	}
	return out, nil
}

func decodeFields(node *yaml.Node, out any, keys ...string) error {
	if _, err := fields(node, keys...); err != nil {
		return err
	}
	return node.Decode(out)
}

// WriteYAML writes the configuration in its persisted form.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Join(ErrEncodeConfig, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrEncodeConfig, err)
	}
	return nil
}

// ParseConfig decodes a persisted configuration and validates it.
// Every field is required and unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, ErrInvalidConfiguration) || errors.Is(err, ErrDecodeConfig) {
			return Config{}, err
		}
		return Config{}, errors.Join(ErrDecodeConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a persisted configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrDecodeConfig, err)
	}
	return ParseConfig(data)
}
