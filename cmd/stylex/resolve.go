package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/extend/cssom"
	"github.com/npillmayer/extend/extend"
	"github.com/npillmayer/extend/style"
	"github.com/npillmayer/extend/style/styledbg"
	"github.com/npillmayer/extend/style/yamladapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

type resolveOptions struct {
	data         map[string]string
	tree         bool
	noCycleGuard bool
}

func newResolveCommand() *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Print a style sheet with all extends resolved",
		Long: `Resolve reads a YAML style sheet and prints it with every extend resolved.
Rules are printed in the order of the input file.

Lazy extends ({$data: key}) take their value from --data.

Examples:
  stylex resolve sheet.yaml
  stylex resolve sheet.yaml --data theme=dark --tree`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], opts)
		},
	}
	addResolveFlags(cmd.Flags(), opts)
	return cmd
}

func addResolveFlags(fs *pflag.FlagSet, opts *resolveOptions) {
	fs.StringToStringVar(&opts.data, "data", nil, "External data for lazy extends (key=value)")
	fs.BoolVar(&opts.tree, "tree", false, "Print rules as a tree instead of YAML")
	fs.BoolVar(&opts.noCycleGuard, "no-cycleguard", false, "Do not guard against cyclic extend chains")
}

func runResolve(cmd *cobra.Command, path string, opts *resolveOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	rules, err := yamladapter.Decode(f)
	if err != nil {
		if len(rules) == 0 {
			return err
		}
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", e)
		}
	}
	sheet := buildSheet(rules, opts, cmd.ErrOrStderr())
	if len(opts.data) > 0 {
		data := make(style.Data, len(opts.data))
		for k, v := range opts.data {
			data[k] = v
		}
		sheet.Update(data)
	}
	if opts.tree {
		_, err = fmt.Fprint(cmd.OutOrStdout(), styledbg.Sheet(sheet))
		return err
	}
	out := make([]yamladapter.Rule, 0, len(rules))
	for _, r := range sheet.Rules() {
		out = append(out, yamladapter.Rule{Name: r.Key(), Style: r.Style()})
	}
	return yamladapter.Encode(cmd.OutOrStdout(), out)
}

// buildSheet adds all rules first, then processes them, so that rules may
// extend rules defined further down in the file.
func buildSheet(rules []yamladapter.Rule, opts *resolveOptions, warn io.Writer) *cssom.Sheet {
	conf := testconfig.Conf{extend.KeyCycleGuard: !opts.noCycleGuard}
	plugin := extend.New(
		extend.FromConfig(conf),
		extend.WithWarner(func(msg string) {
			fmt.Fprintf(warn, "warning: %s\n", msg)
		}),
	)
	sheet := cssom.NewSheet(plugin)
	for _, r := range rules {
		sheet.Add(r.Name, r.Style)
	}
	return sheet.Process()
}
