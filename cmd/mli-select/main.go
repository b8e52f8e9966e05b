package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/mli-select/pkg/constants"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath   string
	logLevel     string
	outputFormat string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "mli-select",
		Short:         "Score MLI Select projects and price the resulting insured loans",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&g.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&g.outputFormat, "output-format", "", "type of output override: pretty, csv, json, yaml")

	root.AddCommand(
		newEvaluateCmd(g),
		newDrawsCmd(g),
		newScheduleCmd(g),
		newTermsCmd(g),
		newRentCapCmd(g),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
