package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/layoutkit/internal/store"
	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a theme file from disk over Default, validates it, and returns the result.
func ParseConfig(path string) (*ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lkerrors.NewParseError(path, 0, err)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, lkerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load returns the parsed file at path, or the validated defaults when path is empty.
func Load(path string) (*ThemeConfig, error) {
	if path == "" {
		cfg := Default()
		if err := ValidateConfig(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return ParseConfig(path)
}

func decode(data []byte) (*ThemeConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Switching backend without a path picks that backend's default location.
	if cfg.Storage.Path == DefaultStorePath(store.BackendFile) && cfg.Storage.Backend != store.BackendFile {
		cfg.Storage.Path = DefaultStorePath(cfg.Storage.Backend)
	}
	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
