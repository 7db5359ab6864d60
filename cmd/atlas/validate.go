package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/country"
	"github.com/alexisbeaulieu97/atlas/internal/viewstate"
	atlaserrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <dataset>",
		Short: "Check a JSON or YAML dataset and report every malformed record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, flags *rootFlags, path string) error {
	if err := validateDatasetPath(path); err != nil {
		return newCommandError("validate dataset", path, err, "Pass an existing .json, .yaml or .yml file.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.close()

	records, err := country.LoadFile(path)
	if err != nil {
		app.log.With("path", path).Error(err, "dataset validation failed")
		suggestion := "Fix the listed records and run 'atlas validate' again."
		var datasetErr *atlaserrors.DatasetError
		if errors.As(err, &datasetErr) {
			suggestion = fmt.Sprintf("Fix the listed records (fields: %s) and run 'atlas validate' again.", strings.Join(datasetErr.Fields(), ", "))
		}
		return newCommandError("validate dataset", path, err, suggestion)
	}

	regions := viewstate.DistinctRegions(records)
	mark := "✓"
	if app.ascii || !supportsUnicode(cmd.OutOrStdout()) {
		mark = "OK"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d countries in %d regions\n", mark, path, len(records), len(regions))

	return nil
}
