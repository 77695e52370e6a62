// SPDX-License-Identifier: MIT

package scalar

import (
	"strconv"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Integer is an int64 scalar. It satisfies only the ring layer: there is no
// Inverse method, so algorithms that need division report
// algebra.ErrFieldCapability for Integer matrices.
type Integer int64

var (
	_ algebra.Ring[Integer] = Integer(0)
	_ algebra.Measurable    = Integer(0)
)

func (n Integer) Add(other Integer) Integer      { return n + other }
func (n Integer) Negative() Integer              { return -n }
func (n Integer) Multiply(other Integer) Integer { return n * other }
func (n Integer) Inner(other Integer) Integer    { return n * other }
func (n Integer) Null() Integer                  { return 0 }
func (n Integer) Unit() Integer                  { return 1 }
func (n Integer) IsNull() bool                   { return n == 0 }
func (n Integer) IsUnit() bool                   { return n == 1 }
func (n Integer) Equals(other Integer) bool      { return n == other }
func (n Integer) Float64() float64               { return float64(n) }
func (n Integer) String() string                 { return strconv.FormatInt(int64(n), 10) }
