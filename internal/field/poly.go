// Package field reconstructs the continuous shear, moment, slope and
// deflection functions of a beam from a fully known set of external
// actions, using Macaulay singularity functions.
package field

import "math"

// Term is a single singularity term c·<x−a>^n with n >= 0. The term is
// zero for x < a and c·(x−a)^n for x >= a, so evaluation at exactly
// x == a yields the right-hand limit.
type Term struct {
	C float64
	A float64
	N int
}

// Poly is a sum of singularity terms.
type Poly []Term

// At evaluates the polynomial at x.
func (p Poly) At(x float64) float64 {
	v := 0.0
	for _, t := range p {
		if x < t.A {
			continue
		}
		switch t.N {
		case 0:
			v += t.C
		case 1:
			v += t.C * (x - t.A)
		case 2:
			v += t.C * (x - t.A) * (x - t.A)
		default:
			v += t.C * math.Pow(x-t.A, float64(t.N))
		}
	}
	return v
}

// Integrate returns the running integral from 0, term by term:
// c·<x−a>^n becomes c/(n+1)·<x−a>^(n+1). Offsets are never negative,
// so the lower integration bound contributes nothing.
func (p Poly) Integrate() Poly {
	out := make(Poly, len(p))
	for i, t := range p {
		out[i] = Term{C: t.C / float64(t.N+1), A: t.A, N: t.N + 1}
	}
	return out
}
