package main

import (
	"fmt"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// tracers lists the trace keys of the packages of this module.
var tracers = []string{"extend.style", "extend.cssom", "extend.resolver", "extend.yaml"}

// NewRootCommand returns the root command, with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:   "stylex",
		Short: "Resolve extends of YAML style sheets",
		Long: `Stylex reads style sheets in YAML format, where rules may extend other
rules, inline style objects, or rules selected by external data.

Use 'stylex <command> --help' for detailed information about a command.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupTracing(level)
		},
	}
	root.PersistentFlags().StringVar(&level, "trace", "Error", "Trace level (Debug, Info, Error)")
	root.AddCommand(newResolveCommand())
	return root
}

// setupTracing directs all tracers of this module to the Go log package.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"tracelevel.root": level,
	}
	for _, key := range tracers {
		conf["tracelevel."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
