package analysis

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/field"
)

// Result exposes the solved reactions and the four field functions of
// an analysed beam. Immutable once returned.
type Result struct {
	length     float64
	supports   []beam.Support
	redundancy int
	reactions  []Reaction
	fields     *field.Fields
}

// Redundancy returns the degree of static indeterminacy.
func (r *Result) Redundancy() int { return r.redundancy }

// Supports returns the supports in canonical position order; Reaction
// values index into this slice.
func (r *Result) Supports() []beam.Support {
	out := make([]beam.Support, len(r.supports))
	copy(out, r.supports)
	return out
}

// Reactions returns one entry per restrained degree of freedom, in
// canonical order.
func (r *Result) Reactions() []Reaction {
	out := make([]Reaction, len(r.reactions))
	copy(out, r.reactions)
	return out
}

// ReactionMap groups the reaction components by support position, the
// shape the presentation layer consumes.
func (r *Result) ReactionMap() map[float64][]Reaction {
	out := make(map[float64][]Reaction, len(r.supports))
	for _, re := range r.reactions {
		out[re.Position] = append(out[re.Position], re)
	}
	return out
}

func (r *Result) checkX(x float64) error {
	if x < 0 || x > r.length {
		return fmt.Errorf("%w: x = %g outside span [0, %g]", beam.ErrInvalidPosition, x, r.length)
	}
	return nil
}

// ShearAt returns V(x). At a point-load station it reports the
// right-hand limit.
func (r *Result) ShearAt(x float64) (float64, error) {
	if err := r.checkX(x); err != nil {
		return 0, err
	}
	return r.fields.Shear(x), nil
}

// MomentAt returns M(x), positive sagging. At a torque station it
// reports the right-hand limit.
func (r *Result) MomentAt(x float64) (float64, error) {
	if err := r.checkX(x); err != nil {
		return 0, err
	}
	return r.fields.Moment(x), nil
}

// SlopeAt returns θ(x) in radians.
func (r *Result) SlopeAt(x float64) (float64, error) {
	if err := r.checkX(x); err != nil {
		return 0, err
	}
	return r.fields.Slope(x), nil
}

// DeflectionAt returns v(x), positive upward.
func (r *Result) DeflectionAt(x float64) (float64, error) {
	if err := r.checkX(x); err != nil {
		return 0, err
	}
	return r.fields.Deflection(x), nil
}

// Samples holds evenly spaced stations of all four fields.
type Samples struct {
	X          []float64
	Shear      []float64
	Moment     []float64
	Slope      []float64
	Deflection []float64
}

// Sample evaluates the fields at n evenly spaced stations from 0 to
// the span length inclusive, n >= 2.
func (r *Result) Sample(n int) (*Samples, error) {
	if n < 2 {
		return nil, fmt.Errorf("analysis: sample count %d, need at least 2", n)
	}
	s := &Samples{
		X:          make([]float64, n),
		Shear:      make([]float64, n),
		Moment:     make([]float64, n),
		Slope:      make([]float64, n),
		Deflection: make([]float64, n),
	}
	step := r.length / float64(n-1)
	for i := 0; i < n; i++ {
		x := float64(i) * step
		if i == n-1 {
			x = r.length
		}
		s.X[i] = x
		s.Shear[i] = r.fields.Shear(x)
		s.Moment[i] = r.fields.Moment(x)
		s.Slope[i] = r.fields.Slope(x)
		s.Deflection[i] = r.fields.Deflection(x)
	}
	return s, nil
}
