package passphrase

import "errors"

var (
	// ErrEmptyWordCandidates is returned when the word source has no words within the configured length bounds.
	ErrEmptyWordCandidates = errors.New("no candidate words for the requested length bounds")

	// ErrEmptyCharacterCandidates is returned when a character policy needs candidates and the list is empty.
	ErrEmptyCharacterCandidates = errors.New("no candidate characters for the selection policy")

	// ErrInvalidConfiguration is returned when a configuration is structurally invalid.
	ErrInvalidConfiguration = errors.New("invalid password configuration")

	// ErrUnknownPreset is returned by Preset for names outside the catalog.
	ErrUnknownPreset = errors.New("unknown configuration preset")

	ErrDecodeConfig = errors.New("failed to decode password configuration")
	ErrEncodeConfig = errors.New("failed to encode password configuration")
)
