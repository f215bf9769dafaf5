package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/xkcdpass/pkg/config"
	"github.com/dmitrymomot/xkcdpass/pkg/environment"
	"github.com/dmitrymomot/xkcdpass/pkg/logger"
	"github.com/dmitrymomot/xkcdpass/pkg/passphrase"
	"github.com/dmitrymomot/xkcdpass/pkg/wordlist"
)

const serviceName = "xkcdpass"

var errInvalidCount = errors.New("count must be at least 1")

type app struct {
	settings settings
	log      *slog.Logger

	// environ replaces the process environment when set.
	environ map[string]string
}

type flagValues struct {
	preset   string
	config   string
	wordList string
	count    int
}

func newRootCmd(a *app) *cobra.Command {
	var flags flagValues

	root := &cobra.Command{
		Use:   "xkcdpass",
		Short: "Generate XKCD-style passwords from dictionary words",
		Long: "xkcdpass joins random dictionary words with a separator, optionally wrapped in\n" +
			"digits and padding symbols. Settings come from XKCDPASS_* environment variables\n" +
			"and can be overridden with flags.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&flags.preset, "preset", "p", "",
		fmt.Sprintf("Named configuration preset (%v)", passphrase.PresetNames()))
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "",
		"YAML configuration file; takes precedence over --preset")
	root.Flags().StringVarP(&flags.wordList, "wordlist", "w", "",
		"Newline-delimited word list file (defaults to the bundled English list)")
	root.Flags().IntVarP(&flags.count, "count", "n", 0, "Number of passwords to print")

	root.AddCommand(
		&cobra.Command{
			Use:   "presets",
			Short: "List the named configuration presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				for _, name := range passphrase.PresetNames() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show [preset]",
			Short: "Print a configuration as YAML",
			Long: "Print the effective configuration, or the named preset, as YAML.\n" +
				"Save the output, edit it and pass it back with --config.",
			Args: cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 1 {
					a.settings.Preset = args[0]
					a.settings.Config = ""
				}
				cfg, err := a.configuration()
				if err != nil {
					return err
				}
				return cfg.WriteYAML(cmd.OutOrStdout())
			},
		},
	)

	return root
}

// init loads settings, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command, flags flagValues) error {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if a.environ != nil {
		opts = append(opts, config.WithEnvironment(a.environ))
	}
	if err := config.Load(&a.settings, opts...); err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("preset") {
		a.settings.Preset = flags.preset
	}
	if fs.Changed("config") {
		a.settings.Config = flags.config
	}
	if fs.Changed("wordlist") {
		a.settings.WordList = flags.wordList
	}
	if fs.Changed("count") {
		a.settings.Count = flags.count
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(environment.Parse(a.settings.Env), serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if a.settings.LogLevel != "" {
		level, err := logger.ParseLevel(a.settings.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if a.settings.LogFormat != "" {
		format, err := logger.ParseFormat(a.settings.LogFormat)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	a.log = logger.New(logOpts...)
	logger.SetAsDefault(a.log)
	return nil
}

func (a *app) generate(cmd *cobra.Command) error {
	if a.settings.Count < 1 {
		return fmt.Errorf("%w, got %d", errInvalidCount, a.settings.Count)
	}

	cfg, err := a.configuration()
	if err != nil {
		return err
	}
	words, err := a.wordSource()
	if err != nil {
		return err
	}

	rng := passphrase.NewRand()
	out := cmd.OutOrStdout()
	for range a.settings.Count {
		pass, err := passphrase.Generate(cfg, words, rng)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, pass); err != nil {
			return err
		}
	}

	a.log.Debug("passwords generated", logger.Count(a.settings.Count))
	return nil
}

func (a *app) configuration() (passphrase.Config, error) {
	if path := a.settings.Config; path != "" {
		cfg, err := passphrase.LoadConfig(path)
		if err != nil {
			return passphrase.Config{}, err
		}
		a.log.Debug("configuration loaded", logger.Path(path))
		return cfg, nil
	}

	cfg, err := passphrase.Preset(a.settings.Preset)
	if err != nil {
		return passphrase.Config{}, err
	}
	a.log.Debug("configuration loaded", logger.Preset(a.settings.Preset))
	return cfg, nil
}

func (a *app) wordSource() (passphrase.WordSource, error) {
	if path := a.settings.WordList; path != "" {
		list, err := wordlist.LoadFile(path)
		if err != nil {
			return nil, err
		}
		a.log.Debug("word list loaded", logger.Path(path), logger.Count(list.Len()))
		return list, nil
	}
	return wordlist.English(), nil
}
