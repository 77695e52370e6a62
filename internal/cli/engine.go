// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/converters"
	"github.com/katalvlaran/lvlalg/echelon"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/scalar"
)

// Command names.
const (
	CmdReduce    = "reduce"
	CmdDet       = "det"
	CmdInverse   = "inverse"
	CmdTranspose = "transpose"
	CmdRank      = "rank"
	CmdSolve     = "solve"
)

// Method names for det and inverse.
const (
	MethodCofactor    = "cofactor"
	MethodElimination = "elimination"
	MethodAdjugate    = "adjugate"
	MethodGaussJordan = "gauss-jordan"
	MethodLU          = "lu"
)

// Request is one command invocation after flag parsing.
type Request struct {
	Command string
	Method  string       // det, inverse
	Form    echelon.Form // reduce
	Ignore  int          // reduce, rank
	Trace   bool         // reduce: include the operation log
}

// kit binds the per-set parser and the field-only kernels.
type kit[T algebra.Ring[T]] struct {
	parse     func(string) (T, error)
	eliminate func(*matrix.Dense[T]) (T, error) // nil for ring-only sets
}

// Execute runs req over in, dispatching on the resolved scalar set.
func Execute(req Request, in *Input, logger *slog.Logger) (*Result, error) {
	logger.Debug("executing", "command", req.Command, "set", in.Set, "rows", len(in.Rows), "method", req.Method)
	if req.Ignore < 0 {
		return nil, flagError("ignore", strconv.Itoa(req.Ignore))
	}
	if req.Method == MethodLU {
		return executeLU(req, in, logger)
	}

	switch in.Set {
	case scalar.SetInteger:
		return execute(req, in, logger, kit[scalar.Integer]{parse: scalar.ParseInteger})
	case scalar.SetRational:
		return execute(req, in, logger, kit[scalar.Fraction]{
			parse:     scalar.ParseFraction,
			eliminate: matrix.DeterminantByElimination[scalar.Fraction],
		})
	case scalar.SetReal:
		return execute(req, in, logger, kit[scalar.Real]{
			parse:     scalar.ParseReal,
			eliminate: matrix.DeterminantByElimination[scalar.Real],
		})
	case scalar.SetComplex:
		return execute(req, in, logger, kit[scalar.Complex]{
			parse:     scalar.ParseComplex,
			eliminate: matrix.DeterminantByElimination[scalar.Complex],
		})
	default:
		return nil, &LoadError{Code: ErrCodeInvalidSet, Message: fmt.Sprintf("unknown set %q", in.Set)}
	}
}

// parseMatrix parses the grid with parse, reporting the first bad entry.
func parseMatrix[T algebra.Ring[T]](rows [][]string, parse func(string) (T, error)) (*matrix.Dense[T], error) {
	grid := make([][]T, len(rows))
	for i, row := range rows {
		grid[i] = make([]T, len(row))
		for j, s := range row {
			v, err := parse(s)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			grid[i][j] = v
		}
	}

	return matrix.NewFromRows(grid)
}

func renderRows[T algebra.Ring[T]](m *matrix.Dense[T]) [][]string {
	grid := m.Indices()
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = fmt.Sprint(v)
		}
	}

	return out
}

func renderVector[T algebra.Ring[T]](v *matrix.Vector[T]) []string {
	values := v.Values()
	out := make([]string, len(values))
	for i, x := range values {
		out[i] = fmt.Sprint(x)
	}

	return out
}

func execute[T algebra.Ring[T]](req Request, in *Input, logger *slog.Logger, k kit[T]) (*Result, error) {
	m, err := parseMatrix(in.Rows, k.parse)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed matrix", "rows", m.Rows(), "cols", m.Cols())
	res := &Result{Command: req.Command, Set: in.Set}

	switch req.Command {
	case CmdTranspose:
		res.Rows = renderRows(m.Transpose())

	case CmdDet:
		var d T
		switch req.Method {
		case "", MethodCofactor:
			d, err = m.Determinant()
		case MethodElimination:
			if k.eliminate == nil {
				return nil, fmt.Errorf("%s: %w", in.Set, algebra.ErrFieldCapability)
			}
			d, err = k.eliminate(m)
		default:
			return nil, flagError("method", req.Method)
		}
		if err != nil {
			return nil, err
		}
		res.Value = fmt.Sprint(d)

	case CmdInverse:
		var inv *matrix.Dense[T]
		switch req.Method {
		case "", MethodAdjugate:
			inv, err = m.Inverse()
		case MethodGaussJordan:
			inv, err = echelon.InverseGaussJordan(m)
		default:
			return nil, flagError("method", req.Method)
		}
		if err != nil {
			return nil, err
		}
		res.Rows = renderRows(inv)

	case CmdReduce:
		red, err := echelon.NewReducer[T](echelon.WithIgnoredColumns(req.Ignore)).ReduceTo(m, req.Form)
		if err != nil {
			return nil, err
		}
		logger.Debug("reduced", "form", req.Form.String(), "operations", len(red.Operations))
		if req.Trace {
			res.Operations = make([]string, len(red.Operations))
			for i, op := range red.Operations {
				res.Operations[i] = op.String()
			}
		}
		res.Rows = renderRows(red.Matrix)

	case CmdRank:
		rank, err := echelon.Rank(m, echelon.WithIgnoredColumns(req.Ignore))
		if err != nil {
			return nil, err
		}
		res.Value = fmt.Sprint(rank)

	case CmdSolve:
		if len(in.B) == 0 {
			return nil, &LoadError{Code: ErrCodeShape, Message: "solve needs a right-hand side b"}
		}
		b := make([]T, len(in.B))
		for i, s := range in.B {
			if b[i], err = k.parse(s); err != nil {
				return nil, fmt.Errorf("b[%d]: %w", i+1, err)
			}
		}
		x, err := echelon.Solve(m, matrix.NewVector(b...))
		if err != nil {
			return nil, err
		}
		res.Vector = renderVector(x)

	default:
		return nil, fmt.Errorf("unknown command %q", req.Command)
	}

	return res, nil
}

// executeLU handles --method lu: entries are read as reals and handed to gonum.
func executeLU(req Request, in *Input, logger *slog.Logger) (*Result, error) {
	if in.Set == scalar.SetComplex {
		return nil, fmt.Errorf("method lu: %w", algebra.IncorrectSetError{Want: scalar.SetReal, Got: in.Set})
	}
	m, err := parseMatrix(in.Rows, scalar.ParseReal)
	if err != nil {
		return nil, err
	}
	logger.Debug("delegating to gonum", "rows", m.Rows(), "cols", m.Cols())
	res := &Result{Command: req.Command, Set: scalar.SetReal}

	switch req.Command {
	case CmdDet:
		d, err := converters.DeterminantLU(m)
		if err != nil {
			return nil, err
		}
		res.Value = d.String()
	case CmdInverse:
		inv, err := converters.InverseLU(m)
		if err != nil {
			return nil, err
		}
		res.Rows = renderRows(inv)
	default:
		return nil, flagError("method", req.Method)
	}

	return res, nil
}

// flagError reports an unusable flag value.
func flagError(flag, value string) error {
	return &LoadError{Code: ErrCodeFlag, Message: fmt.Sprintf("invalid --%s %q", flag, value)}
}

// errorCode maps an error to its CLI error code and exit code.
func errorCode(err error) (string, int) {
	var loadErr *LoadError
	switch {
	case errors.As(err, &loadErr):
		return loadErr.Code, ExitCommandError
	case errors.Is(err, matrix.ErrSingular):
		return ErrCodeSingular, ExitFailure
	case errors.Is(err, matrix.ErrIncompatibleOperation):
		return ErrCodeIncompatible, ExitFailure
	case errors.Is(err, algebra.ErrFieldCapability):
		return ErrCodeField, ExitFailure
	case errors.Is(err, echelon.ErrInconsistent):
		return ErrCodeInconsistent, ExitFailure
	case errors.Is(err, echelon.ErrUnderdetermined):
		return ErrCodeUnderdet, ExitFailure
	case errors.Is(err, algebra.ErrIncorrectSet), errors.Is(err, scalar.ErrSyntax):
		return classifyError(err), ExitCommandError
	case errors.Is(err, matrix.ErrInvalidArgument),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrDimensionMismatch):
		return ErrCodeShape, ExitCommandError
	default:
		return ErrCodeGeneric, ExitFailure
	}
}
