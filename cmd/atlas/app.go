package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/country"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
	"github.com/alexisbeaulieu97/atlas/internal/viewstate"
)

// appContext is what every command needs after flags and config are merged.
type appContext struct {
	cfg    config.Config
	log    *logger.Logger
	source country.Source
	dark   bool
	ascii  bool

	closers []io.Closer
}

// newAppContext loads the config file and builds the logger. Interactive
// commands own the terminal, so their logs go to the configured log file
// or nowhere.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*appContext, error) {
	configPath := flags.configPath
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError("load configuration", "determining config path", err, "Set XDG_CONFIG_HOME or HOME, or pass --config.")
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, newCommandError("load configuration", configPath, err, "Fix the config file or pass --config with another path.")
	}

	app := &appContext{
		cfg:   cfg,
		dark:  flags.dark || cfg.DarkTheme(),
		ascii: flags.ascii || cfg.ASCII,
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	opts := logger.Options{Level: level, Component: "cli"}
	switch {
	case !interactive:
		opts.Writer = cmd.ErrOrStderr()
		opts.HumanReadable = true
	case cfg.LogFile != "":
		file, err := openLogFile(cfg.LogFile)
		if err != nil {
			return nil, newCommandError("open log file", cfg.LogFile, err, "Check the log_file setting and directory permissions.")
		}
		app.closers = append(app.closers, file)
		opts.Writer = file
	default:
		opts.Writer = io.Discard
	}

	log, err := logger.New(opts)
	if err != nil {
		app.close()
		return nil, newCommandError("create logger", "log_level "+level, err, "Use one of debug, info, warn or error.")
	}
	app.log = log.With("command", cmd.Name())

	dataPath := cfg.Dataset
	if flags.dataPath != "" {
		if err := validateDatasetPath(flags.dataPath); err != nil {
			app.close()
			return nil, newCommandError("open dataset", flags.dataPath, err, "Pass a .json, .yaml or .yml file to --data.")
		}
		dataPath = flags.dataPath
	}
	app.source = country.SourceFor(dataPath)

	app.log.WithFields(map[string]any{
		"config": configPath,
		"source": app.source.Name(),
		"dark":   app.dark,
	}).Debug("configuration loaded")

	return app, nil
}

// loadController reads the dataset synchronously and returns a controller
// holding it.
func (a *appContext) loadController(operation string) (*viewstate.Controller, error) {
	records, err := a.source.Load()
	if err != nil {
		a.log.With("source", a.source.Name()).Error(err, "loading countries failed")
		return nil, newCommandError(operation, "loading dataset "+a.source.Name(), err, "Run 'atlas validate <file>' to see every malformed record.")
	}

	controller := viewstate.NewController(a.dark)
	state := controller.Load(records)
	a.log.WithFields(map[string]any{
		"source": a.source.Name(),
		"count":  len(state.All),
	}).Debug("countries loaded")

	return controller, nil
}

func (a *appContext) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func containsFold(values []string, target string) (string, bool) {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return v, true
		}
	}
	return "", false
}
