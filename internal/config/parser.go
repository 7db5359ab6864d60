package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	atlaserrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns $XDG_CONFIG_HOME/atlas/config.yaml, falling back to
// ~/.config/atlas/config.yaml.
func DefaultPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "atlas", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "atlas", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields Default().
// A relative dataset path is resolved against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, atlaserrors.NewParseError(path, 0, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return Config{}, err
	}

	if cfg.Dataset != "" && !filepath.IsAbs(cfg.Dataset) {
		cfg.Dataset = filepath.Join(filepath.Dir(path), cfg.Dataset)
	}

	return cfg, nil
}

// Parse decodes and validates configuration bytes. path is used in errors.
func Parse(path string, data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, atlaserrors.NewParseError(path, extractLine(err), err)
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}

	cfg.applyDefaults()
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
