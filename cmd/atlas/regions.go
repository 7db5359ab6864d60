package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atlas/internal/render"
)

type regionsOptions struct {
	counts bool
}

func newRegionsCmd(flags *rootFlags) *cobra.Command {
	opts := &regionsOptions{}

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regions of the dataset in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.counts, "counts", false, "Show the number of countries per region")

	return cmd
}

func runRegions(cmd *cobra.Command, flags *rootFlags, opts *regionsOptions) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.close()

	controller, err := app.loadController("list regions")
	if err != nil {
		return err
	}

	var counts map[string]int
	if opts.counts {
		counts = controller.Counts()
	}

	return render.Regions(cmd.OutOrStdout(), controller.Regions(), counts)
}
