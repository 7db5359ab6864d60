package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	atlaserrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, dir string, cfg Config, err error)
	}{
		{
			name: "full configuration is parsed",
			contents: `dataset: data/countries.yaml
theme: Dark
log_level: debug
log_file: /tmp/atlas.log
ascii: true
`,
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				require.NoError(t, err)
				require.Equal(t, filepath.Join(dir, "data", "countries.yaml"), cfg.Dataset)
				require.Equal(t, "dark", cfg.Theme)
				require.True(t, cfg.DarkTheme())
				require.Equal(t, "debug", cfg.LogLevel)
				require.Equal(t, "/tmp/atlas.log", cfg.LogFile)
				require.True(t, cfg.ASCII)
			},
		},
		{
			name:     "absolute dataset path is kept",
			contents: "dataset: /srv/countries.json\n",
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "/srv/countries.json", cfg.Dataset)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
				require.False(t, cfg.DarkTheme())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "theme: [light\n",
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				var parseErr *atlaserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "unknown theme returns validation error",
			contents: "theme: solarized\n",
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				var validationErr *atlaserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
				require.Contains(t, validationErr.Message, "light, dark")
			},
		},
		{
			name:     "unknown log level returns validation error",
			contents: "log_level: loud\n",
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				var validationErr *atlaserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log_level", validationErr.Field)
			},
		},
		{
			name:     "dataset with unsupported extension is rejected",
			contents: "dataset: countries.csv\n",
			assert: func(t *testing.T, dir string, cfg Config, err error) {
				var validationErr *atlaserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "dataset", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := Load(path)
			tc.assert(t, dir, cfg, err)
		})
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "atlas", "config.yaml"), path)
}

func TestDefaultPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "atlas", "config.yaml"), path)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *atlaserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config", validationErr.Field)
}
