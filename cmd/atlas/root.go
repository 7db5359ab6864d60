package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	dataPath   string
	dark       bool
	ascii      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Atlas browses the countries of the world from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the browser
			return runBrowse(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/atlas/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dataPath, "data", "", "Path to a JSON or YAML country dataset (default: built-in dataset)")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Start with the dark theme")
	cmd.PersistentFlags().BoolVar(&flags.ascii, "ascii", false, "Use ASCII borders and glyphs only")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRegionsCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
