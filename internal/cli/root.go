// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Set     string // overrides the document's set when non-empty
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lvlalg CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvlalg",
		Short: "lvlalg - exact linear algebra over generic scalars",
		Long: `Row reduction, determinants, inverses and linear systems over
integers, exact rationals, reals and complex numbers.

Every command reads one YAML or JSON document ("-" for stdin):

  set: rational
  rows:
    - [1, 2]
    - [3, 4]`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fail(formatterFor(opts, cmd), &LoadError{
					Code:    ErrCodeFlag,
					Message: fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats),
				})
			}
			if opts.Set != "" && setRank(opts.Set) < 0 {
				return fail(formatterFor(opts, cmd), &LoadError{
					Code:    ErrCodeFlag,
					Message: fmt.Sprintf("invalid set %q: must be one of %v", opts.Set, ValidSets),
				})
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Set, "set", "", "scalar set (integer|rational|real|complex); inferred when empty")

	cmd.AddCommand(NewReduceCommand(opts))
	cmd.AddCommand(NewDetCommand(opts))
	cmd.AddCommand(NewInverseCommand(opts))
	cmd.AddCommand(NewTransposeCommand(opts))
	cmd.AddCommand(NewRankCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
