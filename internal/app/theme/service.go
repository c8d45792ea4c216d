package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/showcase"
	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// Service coordinates token resolution, rendering and persistence for a theme config.
type Service struct {
	store store.Store
	log   *logger.Logger
}

// NewService constructs a theme service. A nil store disables loading and persisting.
func NewService(st store.Store, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: st, log: log}
}

// OpenStore opens the backend described by cfg.
func OpenStore(cfg config.Storage) (store.Store, error) {
	st, err := store.Open(cfg.Backend, cfg.Path)
	if err != nil {
		return nil, lkerrors.NewStorageError(cfg.Key, "open", err)
	}
	return st, nil
}

// Result is the outcome of resolving a config into tokens.
type Result struct {
	Tokens      *tokens.Set
	Corrections []tokens.Correction
	Layers      []string
	Mode        tokens.Mode
	Persisted   bool
}

// Tokens runs the layer pipeline for cfg. When cfg.Storage.Persist is set the final set
// is written back under the storage key.
func (s *Service) Tokens(cfg *config.ThemeConfig) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("theme config is nil")
	}

	log := s.log.WithFields(map[string]any{
		"preset": cfg.Preset,
		"mode":   cfg.Mode,
	})

	result := &Result{Mode: cfg.ThemeMode()}
	p := tokens.NewPipeline(tokens.Sources{
		Store:       s.store,
		StorageKey:  cfg.Storage.Key,
		LoadSaved:   cfg.Storage.Load,
		Base:        cfg.BaseTokens(),
		Preset:      cfg.ThemePreset(),
		Mode:        cfg.ThemeMode(),
		Overrides:   cfg.Overrides,
		Derive:      cfg.Derive,
		Seed:        cfg.Seed,
		Corrections: &result.Corrections,
		Log:         log,
	})

	result.Layers = p.Names()
	result.Tokens = p.Build()
	log.Debug("theme tokens resolved", "tokens", result.Tokens.Len(), "corrections", len(result.Corrections))

	if cfg.Storage.Persist {
		result.Persisted = tokens.Save(s.store, cfg.Storage.Key, result.Tokens, log)
	}

	return result, nil
}

// Render resolves cfg and returns the themed showcase fragment.
func (s *Service) Render(cfg *config.ThemeConfig) (string, *Result, error) {
	result, err := s.Tokens(cfg)
	if err != nil {
		return "", nil, err
	}
	return showcase.ThemePage(result.Tokens, result.Mode, cfg.RootWidth), result, nil
}

// Persist writes set under the configured key regardless of cfg.Storage.Persist.
func (s *Service) Persist(cfg *config.ThemeConfig, set *tokens.Set) error {
	if s.store == nil {
		return lkerrors.NewStorageError(cfg.Storage.Key, "set", fmt.Errorf("no store configured"))
	}
	if !tokens.Save(s.store, cfg.Storage.Key, set, s.log) {
		return lkerrors.NewStorageError(cfg.Storage.Key, "set", fmt.Errorf("theme was not saved"))
	}
	return nil
}
