// Package logger provides a thin factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Apply per-environment defaults with WithEnvironment
//
// The default logger writes JSON at info level to stderr, so command output on
// stdout stays clean.
//
// # Usage
//
//	import "github.com/dmitrymomot/xkcdpass/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(environment.Development, "xkcdpass"),
//	        logger.WithLevel(slog.LevelWarn),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Debug("loaded word list", logger.Path(path), logger.Count(list.Len()))
//	}
//
// Options are applied in order, so WithLevel placed after WithEnvironment
// overrides the environment default.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, allowing
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check. WithFormat panics on an unknown format;
// use ParseFormat to validate user input first.
package logger
