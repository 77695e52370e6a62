// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/echelon"
)

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		form   string
		ignore int
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "reduce <file>",
		Short: "Row-reduce a matrix",
		Long: `Row-reduce a matrix to the requested form using elementary row operations.

Forms, each one a prefix of the next:
  sorted    null rows at the bottom, rows ordered by pivot column
  echelon   row echelon form
  unit      echelon form with unit pivots
  reduced   reduced row echelon form (default)

--ignore n excludes the last n columns from pivot search, which is how an
augmented matrix [A|b] is reduced on its A part only. --trace prints the
operation log before the result.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := echelon.ParseForm(form)
			if err != nil {
				return fail(formatterFor(rootOpts, cmd), flagError("form", form))
			}
			req := Request{Command: CmdReduce, Form: f, Ignore: ignore, Trace: trace}
			return runRequest(rootOpts, req, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&form, "form", echelon.FormReduced.String(), "target form (sorted|echelon|unit|reduced)")
	cmd.Flags().IntVar(&ignore, "ignore", 0, "number of trailing columns excluded from pivot search")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the row operations applied")

	return cmd
}

// NewDetCommand creates the det command.
func NewDetCommand(rootOpts *RootOptions) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "det <file>",
		Short: "Compute the determinant of a square matrix",
		Long: `Compute the determinant of a square matrix.

Methods:
  cofactor     Laplace expansion, exact in every set (default)
  elimination  Gaussian elimination, needs a set with division
  lu           LU factorization in float64 via gonum`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(rootOpts, Request{Command: CmdDet, Method: method}, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&method, "method", MethodCofactor, "cofactor|elimination|lu")

	return cmd
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "inverse <file>",
		Short: "Invert a square matrix",
		Long: `Invert a square matrix over a set with division.

Methods:
  adjugate      adj(M) / det(M) (default)
  gauss-jordan  reduce [M|I] to [I|M⁻¹]
  lu            LU factorization in float64 via gonum`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(rootOpts, Request{Command: CmdInverse, Method: method}, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&method, "method", MethodAdjugate, "adjugate|gauss-jordan|lu")

	return cmd
}

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "transpose <file>",
		Short:         "Transpose a matrix",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(rootOpts, Request{Command: CmdTranspose}, args[0], cmd)
		},
	}
}

// NewRankCommand creates the rank command.
func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	var ignore int
	cmd := &cobra.Command{
		Use:           "rank <file>",
		Short:         "Compute the rank of a matrix",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(rootOpts, Request{Command: CmdRank, Ignore: ignore}, args[0], cmd)
		},
	}
	cmd.Flags().IntVar(&ignore, "ignore", 0, "number of trailing columns excluded from pivot search")

	return cmd
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve the linear system A·x = b",
		Long: `Solve A·x = b where the document's rows are A and its b list is the
right-hand side. Fails when the system is inconsistent or has free variables.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(rootOpts, Request{Command: CmdSolve}, args[0], cmd)
		},
	}
}

func formatterFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// runRequest loads path, executes req and writes the outcome.
func runRequest(opts *RootOptions, req Request, path string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)
	logger := newLogger(formatter.GetErrWriter(), opts.Verbose)

	doc, err := LoadDocument(path, cmd.InOrStdin())
	if err != nil {
		return fail(formatter, err)
	}
	in, err := doc.Resolve(opts.Set)
	if err != nil {
		return fail(formatter, err)
	}
	logger.Debug("document loaded", "path", path, "set", in.Set)

	res, err := Execute(req, in, logger)
	if err != nil {
		logger.Debug("command failed", "error", err)
		return fail(formatter, err)
	}

	return formatter.Success(res)
}

// fail reports err through the formatter and returns the matching ExitError.
func fail(formatter *OutputFormatter, err error) error {
	code, exit := errorCode(err)
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(code, loadErr.Message, nil)
		return WrapExitError(exit, loadErr.Error(), nil)
	}
	_ = formatter.Error(code, err.Error(), nil)

	return WrapExitError(exit, code, err)
}
