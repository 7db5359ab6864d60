package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

func validateDatasetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("dataset file is required")
	}

	if _, err := country.FormatFromPath(path); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve dataset path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("dataset file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset path %s is a directory", abs)
	}

	return nil
}
