// Package solve wraps the dense linear solver used for the assembled
// equilibrium/compatibility system.
package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// CondLimit is the 1-norm condition number above which a system is
// treated as singular. Being a condition number it is relative to the
// matrix magnitude, not an absolute pivot threshold.
const CondLimit = 1e12

// Dense solves the square system a·x = b by LU decomposition with
// partial pivoting. It returns beam.ErrSingularSystem instead of a
// NaN or arbitrary solution when the matrix is numerically singular.
func Dense(a *mat.Dense, b []float64) ([]float64, error) {
	n, m := a.Dims()
	if n != m || n != len(b) {
		return nil, fmt.Errorf("solve: system shape %dx%d with %d right-hand sides", n, m, len(b))
	}

	cond := mat.Cond(a, 1)
	if math.IsNaN(cond) || cond > CondLimit {
		return nil, fmt.Errorf("%w: condition number %.3g exceeds %.3g", beam.ErrSingularSystem, cond, CondLimit)
	}

	var lu mat.LU
	lu.Factorize(a)

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", beam.ErrSingularSystem, err)
	}

	out := make([]float64, n)
	for i := range out {
		v := x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite solution component %d", beam.ErrSingularSystem, i)
		}
		out[i] = v
	}
	return out, nil
}
