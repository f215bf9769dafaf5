package main

const envPrefix = "XKCDPASS_"

// settings are read from XKCDPASS_* variables (and an optional .env file);
// command-line flags take precedence.
type settings struct {
	Env string `env:"ENV" envDefault:"production"`
	// LogLevel and LogFormat override the defaults of Env when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Preset   string `env:"PRESET" envDefault:"default"`
	Config   string `env:"CONFIG"`
	WordList string `env:"WORDLIST"`
	Count    int    `env:"COUNT" envDefault:"1"`
}
