package config

import "github.com/alexisbeaulieu97/atlas/internal/theme"

// Config is the optional application configuration file. It is read at
// startup and never written back.
type Config struct {
	Dataset  string `yaml:"dataset,omitempty" validate:"omitempty,dataset_path"`
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFile  string `yaml:"log_file,omitempty"`
	ASCII    bool   `yaml:"ascii,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:    theme.NameLight,
		LogLevel: "info",
	}
}

// DarkTheme reports whether the browser should start in the dark palette.
func (c Config) DarkTheme() bool {
	return c.Theme == theme.NameDark
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
