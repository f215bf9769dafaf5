// Package config loads process settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - `.env` files are loaded first. The default `.env` in the working directory
//     is optional, files named with WithEnvFiles are required.
//   - The environment is then parsed into any struct using `env` and
//     `envDefault` field tags. Types implementing encoding.TextUnmarshaler, such
//     as slog.Level, are supported.
//
// # Usage
//
//	type Settings struct {
//	    Preset   string     `env:"PRESET" envDefault:"default"`
//	    LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("XKCDPASS_")); err != nil {
//	    log.Fatalf("loading settings: %v", err)
//	}
//
// # Error Handling
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// WithEnvironment parses from a map and skips .env loading entirely, so tests do
// not depend on the process environment.
package config
