package main

import (
	"github.com/spf13/cobra"

	themeapp "github.com/alexisbeaulieu97/layoutkit/internal/app/theme"
	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
)

// session bundles the config and services a command works with.
type session struct {
	Config  *config.ThemeConfig
	Service *themeapp.Service
	Log     *logger.Logger
	store   store.Store
}

func (s *session) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	return store.Close(s.store)
}

// openSession loads the config, applies flag overrides and wires the theme service.
// operation names the command's action in error messages ("print tokens"). The store is
// opened only when the config loads or persists themes, or when alwaysStore is set.
func openSession(cmd *cobra.Command, flags *rootFlags, component, operation string, alwaysStore bool) (*session, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Report this issue.")
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading theme config", err, "Check the config file syntax and values.")
	}

	if err := applyFlagOverrides(cmd, flags, cfg); err != nil {
		return nil, newCommandError(operation, "applying flags", err, "Run with --help to see accepted values.")
	}

	var st store.Store
	if alwaysStore || cfg.Storage.Load || cfg.Storage.Persist {
		st, err = themeapp.OpenStore(cfg.Storage)
		if err != nil {
			return nil, newCommandError(operation, "opening theme store", err, "Check storage.backend and storage.path in the config.")
		}
	}

	return &session{
		Config:  cfg,
		Service: themeapp.NewService(st, log),
		Log:     log,
		store:   st,
	}, nil
}

func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, cfg *config.ThemeConfig) error {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("mode") {
		mode, err := tokens.ParseMode(flags.mode)
		if err != nil {
			return err
		}
		cfg.Mode = string(mode)
	}
	if changed("preset") {
		preset, err := tokens.ParsePreset(flags.preset)
		if err != nil {
			return err
		}
		cfg.Preset = string(preset)
	}
	if changed("seed") {
		cfg.Seed = flags.seed
		cfg.Derive = true
	}
	if changed("derive") {
		cfg.Derive = flags.derive
	}

	return config.ValidateConfig(cfg)
}
