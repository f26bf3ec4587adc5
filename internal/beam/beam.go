// Package beam defines the entity model for 1D linear-elastic beam
// analysis: the beam itself, its supports and the applied loads.
//
// Sign conventions used throughout gobeam:
//   - the x axis runs along the span, y points up;
//   - forces are positive upward, torques positive counterclockwise;
//   - bending moments are positive sagging;
//   - at a discontinuity every field function reports the right-hand
//     limit (singularity terms switch on at x >= a).
package beam

import "fmt"

// Beam is a prismatic linear-elastic member spanning [0, Length].
// Supports and loads reference it by position; the struct owns
// validated copies of both collections.
type Beam struct {
	Length float64 // span (m)
	E      float64 // elastic modulus (Pa)
	I      float64 // second moment of area (m⁴)

	supports []Support
	loads    []Load
}

// New creates a beam, rejecting non-positive geometry or stiffness.
func New(length, e, i float64) (*Beam, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: span length must be positive, got %g", ErrInvalidGeometry, length)
	}
	if e <= 0 {
		return nil, fmt.Errorf("%w: elastic modulus must be positive, got %g", ErrInvalidGeometry, e)
	}
	if i <= 0 {
		return nil, fmt.Errorf("%w: second moment of area must be positive, got %g", ErrInvalidGeometry, i)
	}
	return &Beam{Length: length, E: e, I: i}, nil
}

// AddSupport validates the support position against the span and
// appends it. Input is rejected, never clamped.
func (b *Beam) AddSupport(s Support) error {
	if s.Position < 0 || s.Position > b.Length {
		return fmt.Errorf("%w: support at %g outside span [0, %g]", ErrInvalidPosition, s.Position, b.Length)
	}
	if !s.Ux && !s.Uy && !s.Rz {
		return fmt.Errorf("%w: support at %g restrains no degree of freedom", ErrInvalidPosition, s.Position)
	}
	b.supports = append(b.supports, s)
	return nil
}

// AddLoad validates the load position(s) against the span and appends
// it. A distributed load with start == end is rejected rather than
// treated as a zero-width point load.
func (b *Beam) AddLoad(l Load) error {
	switch ld := l.(type) {
	case PointForce:
		if ld.Position < 0 || ld.Position > b.Length {
			return fmt.Errorf("%w: point force at %g outside span [0, %g]", ErrInvalidPosition, ld.Position, b.Length)
		}
	case DistributedLoad:
		if ld.Start < 0 || ld.End > b.Length {
			return fmt.Errorf("%w: distributed load [%g, %g] outside span [0, %g]", ErrInvalidPosition, ld.Start, ld.End, b.Length)
		}
		if ld.Start >= ld.End {
			return fmt.Errorf("%w: distributed load extent [%g, %g] must satisfy start < end", ErrInvalidPosition, ld.Start, ld.End)
		}
	case PointTorque:
		if ld.Position < 0 || ld.Position > b.Length {
			return fmt.Errorf("%w: point torque at %g outside span [0, %g]", ErrInvalidPosition, ld.Position, b.Length)
		}
	default:
		panic(fmt.Sprintf("beam: unhandled load variant %T", l))
	}
	b.loads = append(b.loads, l)
	return nil
}

// Supports returns a copy of the support set in insertion order.
func (b *Beam) Supports() []Support {
	out := make([]Support, len(b.supports))
	copy(out, b.supports)
	return out
}

// Loads returns a copy of the load set in insertion order.
func (b *Beam) Loads() []Load {
	out := make([]Load, len(b.loads))
	copy(out, b.loads)
	return out
}
