// SPDX-License-Identifier: MIT
// Package echelon - the row reducer.
//
// Reduction runs in four phases over a private working copy, each a fixed
// point loop with a strictly decreasing progress measure:
//
//  1. sort:         null rows sink below pivot rows, then pivot rows are
//     ordered by pivot column (selection by minimal pivot).
//  2. echelon:      for the first pivot shared by several rows, every row
//     below the leader is cleared at that column by Substitution; the
//     matrix is re-sorted after each round.
//  3. unit pivots:  each pivot row is scaled by the inverse of its pivot.
//  4. back-substitution: from the last pivot row upward, entries above each
//     pivot are cleared by Substitution.
//
// Every applied RowOperation is logged, so a Reduction can be replayed or
// expressed as a product of elementary matrices.

package echelon

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

const (
	ctxSorted  = "ToSortedForm"
	ctxEchelon = "ToEchelonForm"
	ctxUnit    = "ToUnitPivots"
	ctxReduced = "ToReducedEchelonForm"
	ctxReduce  = "Reduce"
)

// Reducer drives matrices to (reduced) row-echelon form with the three
// elementary row operations. A Reducer is immutable and safe for concurrent use.
type Reducer[T algebra.Ring[T]] struct {
	opts Options
}

// NewReducer resolves opts into a Reducer.
func NewReducer[T algebra.Ring[T]](opts ...Option) *Reducer[T] {
	return &Reducer[T]{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (r *Reducer[T]) Options() Options { return r.opts }

// Reduction is the outcome of a reduction: the final matrix and the ordered
// row operations that produced it from the input.
type Reduction[T algebra.Ring[T]] struct {
	Matrix     *matrix.Dense[T]
	Operations []RowOperation[T]
}

// Replay applies the logged operations to m in order.
func (red *Reduction[T]) Replay(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf("Reduction.Replay", err)
	}
	out := m.Clone()
	for k, op := range red.Operations {
		if err := op.check(out); err != nil {
			return nil, fmt.Errorf("Reduction.Replay: step %d: %w", k, err)
		}
		op.apply(out)
	}

	return out, nil
}

// Transform returns E = E_k ⋯ E_1 for the logged operations, so that
// E × input == Matrix. size is the row count of the reduced input.
func (red *Reduction[T]) Transform(size int) (*matrix.Dense[T], error) {
	id, err := matrix.NewIdentity[T](size)
	if err != nil {
		return nil, echelonErrorf("Reduction.Transform", err)
	}

	return red.Replay(id)
}

// run is the mutable state of a single reduction.
type run[T algebra.Ring[T]] struct {
	w      *matrix.Dense[T]
	ignore int
	budget int
	ops    []RowOperation[T]
}

func (r *Reducer[T]) start(tag string, m *matrix.Dense[T]) (*run[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf(tag, err)
	}
	if r.opts.ignoredColumns > m.Cols() {
		return nil, fmt.Errorf("%s: ignoring %d of %d columns: %w",
			tag, r.opts.ignoredColumns, m.Cols(), matrix.ErrInvalidArgument)
	}
	budget := r.opts.maxSteps
	if budget == 0 {
		budget = stepBudget(m.Rows(), m.Cols())
	}

	return &run[T]{w: m.Clone(), ignore: r.opts.ignoredColumns, budget: budget}, nil
}

// do validates op against the working copy, applies and logs it.
func (s *run[T]) do(op RowOperation[T], err error) error {
	if err != nil {
		return err
	}
	if len(s.ops) >= s.budget {
		return fmt.Errorf("after %d operations: %w", len(s.ops), ErrNoProgress)
	}
	if err = op.check(s.w); err != nil {
		return err
	}
	op.apply(s.w)
	s.ops = append(s.ops, op)

	return nil
}

func (s *run[T]) pivot(row int) int { return pivot(s.w, row, s.ignore) }

// sinkNullRows swaps the first misplaced null row with the last pivot row
// below it until IsNullRowsBelow holds.
func (s *run[T]) sinkNullRows() error {
	for !IsNullRowsBelow(s.w, s.ignore) {
		n := s.w.Rows()
		first := -1
		for i := 0; i < n && first < 0; i++ {
			if s.pivot(i) < 0 {
				first = i
			}
		}
		last := -1
		for i := n - 1; i > first && last < 0; i-- {
			if s.pivot(i) >= 0 {
				last = i
			}
		}
		if err := s.do(Switching[T](first, last)); err != nil {
			return err
		}
	}

	return nil
}

// sort brings the working copy into sorted form.
func (s *run[T]) sort() error {
	if err := s.sinkNullRows(); err != nil {
		return err
	}
	n := s.w.Rows() - AmountOfNullRows(s.w, s.ignore)
	for pos := 0; pos < n && !IsSorted(s.w, s.ignore); pos++ {
		best, bestPivot := pos, s.pivot(pos)
		for i := pos + 1; i < n; i++ {
			if p := s.pivot(i); p < bestPivot {
				best, bestPivot = i, p
			}
		}
		if best != pos {
			if err := s.do(Switching[T](pos, best)); err != nil {
				return err
			}
		}
	}

	return nil
}

// clear zeroes w[onto, col] using row from, whose entry at col is non-null.
func (s *run[T]) clear(from, onto, col int) error {
	ratio, err := algebra.Divide(at(s.w, onto, col), at(s.w, from, col))
	if err != nil {
		return err
	}
	if err = s.do(substitution(from, onto, ratio.Negative()), nil); err != nil {
		return err
	}
	// Approximate fields leave a residue within tolerance; store the exact null.
	return s.w.Set(onto, col, algebra.NullOf[T]())
}

// echelon brings the sorted working copy into echelon form.
func (s *run[T]) echelon() error {
	for {
		if err := s.sort(); err != nil {
			return err
		}
		if IsEchelon(s.w, s.ignore) {
			return nil
		}
		cleared, err := s.eliminateFirstShared()
		if err != nil {
			return err
		}
		if !cleared {
			return fmt.Errorf("%s: no elimination applies: %w", ctxEchelon, ErrNoProgress)
		}
	}
}

// eliminateFirstShared finds the first pivot column shared by several rows
// and clears it in every row below the leading one.
func (s *run[T]) eliminateFirstShared() (bool, error) {
	n := s.w.Rows()
	for from := 0; from < n; from++ {
		p := s.pivot(from)
		if p < 0 {
			return false, nil
		}
		cleared := false
		for to := from + 1; to < n; to++ {
			if s.pivot(to) != p {
				continue
			}
			if err := s.clear(from, to, p); err != nil {
				return false, err
			}
			cleared = true
		}
		if cleared {
			return true, nil
		}
	}

	return false, nil
}

// unitPivots scales every pivot row so that its pivot becomes Unit().
func (s *run[T]) unitPivots() error {
	if !algebra.IsField[T]() {
		var zero T
		return fmt.Errorf("%T: %w", zero, algebra.ErrFieldCapability)
	}
	for i := 0; i < s.w.Rows(); i++ {
		p := s.pivot(i)
		if p < 0 {
			continue
		}
		v := at(s.w, i, p)
		if v.IsUnit() {
			continue
		}
		inv, err := algebra.Invert(v)
		if err != nil {
			return err
		}
		if err = s.do(scaling(i, inv), nil); err != nil {
			return err
		}
		if err = s.w.Set(i, p, algebra.UnitOf[T]()); err != nil {
			return err
		}
	}

	return nil
}

// backSubstitute clears the entries above every pivot, last pivot first.
func (s *run[T]) backSubstitute() error {
	for !IsReducedEchelon(s.w, s.ignore) {
		before := len(s.ops)
		for i := s.w.Rows() - 1; i >= 0; i-- {
			p := s.pivot(i)
			if p < 0 {
				continue
			}
			for above := 0; above < i; above++ {
				if at(s.w, above, p).IsNull() {
					continue
				}
				if err := s.clear(i, above, p); err != nil {
					return err
				}
			}
		}
		if len(s.ops) == before {
			return fmt.Errorf("%s: no substitution applies: %w", ctxReduced, ErrNoProgress)
		}
	}

	return nil
}

// Form names how far a reduction proceeds.
type Form int

const (
	// FormSorted stops after the sort phase.
	FormSorted Form = iota
	// FormEchelon stops at row-echelon form.
	FormEchelon
	// FormUnitPivots stops once every pivot is Unit().
	FormUnitPivots
	// FormReduced runs back-substitution to reduced row-echelon form.
	FormReduced
)

// String returns "sorted", "echelon", "unit" or "reduced".
func (f Form) String() string {
	switch f {
	case FormSorted:
		return "sorted"
	case FormEchelon:
		return "echelon"
	case FormUnitPivots:
		return "unit"
	case FormReduced:
		return "reduced"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm is the inverse of Form.String.
// Errors: matrix.ErrInvalidArgument for an unknown name.
func ParseForm(s string) (Form, error) {
	for f := FormSorted; f <= FormReduced; f++ {
		if f.String() == s {
			return f, nil
		}
	}

	return 0, fmt.Errorf("ParseForm(%q): %w", s, matrix.ErrInvalidArgument)
}

// ReduceTo runs the phases up to and including form on a copy of m and
// returns the result with its operation log.
// Errors: matrix.ErrInvalidArgument for an unknown form, plus those of the phases.
func (r *Reducer[T]) ReduceTo(m *matrix.Dense[T], form Form) (*Reduction[T], error) {
	if form < FormSorted || form > FormReduced {
		return nil, fmt.Errorf("%s(%s): %w", ctxReduce, form, matrix.ErrInvalidArgument)
	}

	return r.reduce(ctxReduce, m, form)
}

func (r *Reducer[T]) reduce(tag string, m *matrix.Dense[T], until Form) (*Reduction[T], error) {
	s, err := r.start(tag, m)
	if err != nil {
		return nil, err
	}
	steps := []func() error{s.sort, s.echelon, s.unitPivots, s.backSubstitute}
	for f := FormSorted; f <= until; f++ {
		if err = steps[f](); err != nil {
			return nil, echelonErrorf(tag, err)
		}
	}

	return &Reduction[T]{Matrix: s.w, Operations: s.ops}, nil
}

// ToSortedForm returns a copy of m with null rows at the bottom and pivot
// rows ordered by non-decreasing pivot column.
func (r *Reducer[T]) ToSortedForm(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	red, err := r.reduce(ctxSorted, m, FormSorted)
	if err != nil {
		return nil, err
	}

	return red.Matrix, nil
}

// ToEchelonForm returns a row-echelon copy of m.
// Errors: algebra.ErrFieldCapability when an elimination ratio cannot be
// formed in T; ErrNoProgress; matrix.ErrInvalidArgument for an ignore
// count larger than Cols.
func (r *Reducer[T]) ToEchelonForm(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	red, err := r.reduce(ctxEchelon, m, FormEchelon)
	if err != nil {
		return nil, err
	}

	return red.Matrix, nil
}

// ToUnitPivots returns an echelon copy of m whose pivots are Unit().
// Errors: algebra.ErrFieldCapability for ring-only T.
func (r *Reducer[T]) ToUnitPivots(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	red, err := r.reduce(ctxUnit, m, FormUnitPivots)
	if err != nil {
		return nil, err
	}

	return red.Matrix, nil
}

// ToReducedEchelonForm returns the reduced row-echelon copy of m.
// Errors: algebra.ErrFieldCapability for ring-only T.
func (r *Reducer[T]) ToReducedEchelonForm(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	red, err := r.reduce(ctxReduced, m, FormReduced)
	if err != nil {
		return nil, err
	}

	return red.Matrix, nil
}

// Reduce is ToReducedEchelonForm with the operation log.
func (r *Reducer[T]) Reduce(m *matrix.Dense[T]) (*Reduction[T], error) {
	return r.reduce(ctxReduce, m, FormReduced)
}

// ToSortedForm is NewReducer(opts...).ToSortedForm(m).
func ToSortedForm[T algebra.Ring[T]](m *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return NewReducer[T](opts...).ToSortedForm(m)
}

// ToEchelonForm is NewReducer(opts...).ToEchelonForm(m).
func ToEchelonForm[T algebra.Ring[T]](m *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return NewReducer[T](opts...).ToEchelonForm(m)
}

// ToUnitPivots is NewReducer(opts...).ToUnitPivots(m).
func ToUnitPivots[T algebra.Ring[T]](m *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return NewReducer[T](opts...).ToUnitPivots(m)
}

// ToReducedEchelonForm is NewReducer(opts...).ToReducedEchelonForm(m).
func ToReducedEchelonForm[T algebra.Ring[T]](m *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	return NewReducer[T](opts...).ToReducedEchelonForm(m)
}

// Reduce is NewReducer(opts...).Reduce(m).
func Reduce[T algebra.Ring[T]](m *matrix.Dense[T], opts ...Option) (*Reduction[T], error) {
	return NewReducer[T](opts...).Reduce(m)
}
