package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/render"
)

type listOptions struct {
	search string
	region string
	format string
	width  int
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print countries matching a search and region",
		Example: `  atlas list --search fra
  atlas list --region Europe --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Case-insensitive name substring")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "Region to show (default: all regions)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Maximum table width (0 for unlimited)")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("list countries", "parsing --format", err, "Use --format table, json or yaml.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.close()

	controller, err := app.loadController("list countries")
	if err != nil {
		return err
	}

	if region := strings.TrimSpace(opts.region); region != "" {
		canonical, ok := containsFold(controller.Regions(), region)
		if !ok {
			return newCommandError(
				"list countries",
				fmt.Sprintf("region %q", region),
				fmt.Errorf("region not found in dataset"),
				fmt.Sprintf("Available regions: %s.", strings.Join(controller.Regions(), ", ")),
			)
		}
		controller.FilterByRegion(canonical)
	}
	state := controller.Search(opts.search)

	app.log.WithFields(map[string]any{
		"search":  state.SearchTerm,
		"region":  state.SelectedRegion,
		"visible": len(state.Visible),
		"format":  string(format),
	}).Debug("listing countries")

	out := cmd.OutOrStdout()
	return render.Write(out, format, state.Visible, render.Options{
		ASCII: app.ascii || !supportsUnicode(out),
		Dark:  app.dark,
		Width: opts.width,
	})
}
