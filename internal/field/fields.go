package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// BoundaryKind selects which quantity a boundary condition pins to zero.
type BoundaryKind int

const (
	// ZeroDeflection enforces v(x) = 0.
	ZeroDeflection BoundaryKind = iota
	// ZeroSlope enforces θ(x) = 0.
	ZeroSlope
)

// Boundary is one of the two conditions that fix the integration
// constants of the slope and deflection fields.
type Boundary struct {
	Position float64
	Kind     BoundaryKind
}

// Fields holds the four reconstructed field functions of a beam whose
// external actions (applied loads plus solved reactions) are all
// known. Immutable once built.
type Fields struct {
	length  float64
	ei      float64
	shear   Poly
	moment  Poly
	slopeEI Poly // EI·θ(x)
	deflEI  Poly // EI·v(x)
}

// Build integrates the given actions along increasing x. Shear is the
// running sum of point forces and distributed-load integrals; moment
// is the integral of shear plus a −T step per point torque; slope and
// deflection follow by two further integrations whose constants are
// resolved from the two boundary conditions.
func Build(length, e, i float64, actions []beam.Load, bc [2]Boundary) (*Fields, error) {
	var shear, torque Poly
	for _, l := range actions {
		switch ld := l.(type) {
		case beam.PointForce:
			shear = append(shear, Term{C: ld.Magnitude, A: ld.Position, N: 0})
		case beam.DistributedLoad:
			shear = append(shear, Term{C: ld.Magnitude, A: ld.Start, N: 1})
			shear = append(shear, Term{C: -ld.Magnitude, A: ld.End, N: 1})
		case beam.PointTorque:
			// A counterclockwise torque at a drops the bending moment
			// by its magnitude for x >= a (left-segment equilibrium).
			torque = append(torque, Term{C: -ld.Magnitude, A: ld.Position, N: 0})
		default:
			panic(fmt.Sprintf("field: unhandled load variant %T", l))
		}
	}

	moment := append(shear.Integrate(), torque...)
	slope0 := moment.Integrate()
	defl0 := slope0.Integrate()

	c1, c2, err := constants(slope0, defl0, bc)
	if err != nil {
		return nil, err
	}

	f := &Fields{
		length:  length,
		ei:      e * i,
		shear:   shear,
		moment:  moment,
		slopeEI: append(slope0, Term{C: c1, A: 0, N: 0}),
		deflEI:  append(defl0, Term{C: c1, A: 0, N: 1}, Term{C: c2, A: 0, N: 0}),
	}
	return f, nil
}

// constants solves the 2×2 system for the integration constants C1 and
// C2 in EI·θ = ∫M + C1, EI·v = ∫∫M + C1·x + C2.
func constants(slope0, defl0 Poly, bc [2]Boundary) (float64, float64, error) {
	a := mat.NewDense(2, 2, nil)
	b := mat.NewVecDense(2, nil)
	for r, c := range bc {
		switch c.Kind {
		case ZeroDeflection:
			a.Set(r, 0, c.Position)
			a.Set(r, 1, 1)
			b.SetVec(r, -defl0.At(c.Position))
		case ZeroSlope:
			a.Set(r, 0, 1)
			a.Set(r, 1, 0)
			b.SetVec(r, -slope0.At(c.Position))
		default:
			panic(fmt.Sprintf("field: unhandled boundary kind %d", c.Kind))
		}
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return 0, 0, fmt.Errorf("%w: boundary conditions at %g and %g do not determine the deflection",
			beam.ErrSingularSystem, bc[0].Position, bc[1].Position)
	}
	c1, c2 := x.AtVec(0), x.AtVec(1)
	if math.IsNaN(c1) || math.IsNaN(c2) {
		return 0, 0, fmt.Errorf("%w: boundary conditions at %g and %g do not determine the deflection",
			beam.ErrSingularSystem, bc[0].Position, bc[1].Position)
	}
	return c1, c2, nil
}

// Length returns the span the fields are defined on.
func (f *Fields) Length() float64 { return f.length }

// Shear returns V(x), positive per the upward-positive convention.
func (f *Fields) Shear(x float64) float64 { return f.shear.At(x) }

// Moment returns M(x), positive sagging.
func (f *Fields) Moment(x float64) float64 { return f.moment.At(x) }

// Slope returns θ(x) in radians.
func (f *Fields) Slope(x float64) float64 { return f.slopeEI.At(x) / f.ei }

// Deflection returns v(x), positive upward.
func (f *Fields) Deflection(x float64) float64 { return f.deflEI.At(x) / f.ei }

// SlopeEI returns EI·θ(x). The compatibility assembly works in this
// scaled form so the equation system stays well conditioned for any EI.
func (f *Fields) SlopeEI(x float64) float64 { return f.slopeEI.At(x) }

// DeflectionEI returns EI·v(x).
func (f *Fields) DeflectionEI(x float64) float64 { return f.deflEI.At(x) }
