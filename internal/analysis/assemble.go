package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/field"
	"github.com/alexiusacademia/gobeam/internal/solve"
)

// selectPrimary splits the degrees of freedom into a statically
// determinate primary set and the redundants. The rule is fixed so
// repeated solves pick the same redundants: the first Ux in canonical
// order is the axial primary; the first Uy plus the next bending DOF
// (Uy or Rz) in canonical order are the bending primaries; everything
// else is redundant. The final reactions do not depend on this choice,
// only the intermediate virtual-work steps do.
func selectPrimary(dofs []dof) (bend [2]int, redundant []int, err error) {
	axial := -1
	hasUy := false
	bendingCount := 0
	for i, d := range dofs {
		switch d.kind {
		case dofUx:
			if axial < 0 {
				axial = i
			}
		case dofUy:
			hasUy = true
			bendingCount++
		case dofRz:
			bendingCount++
		}
	}

	if axial < 0 {
		return bend, nil, fmt.Errorf("%w: no axial restraint; rigid-body translation along the span is unresisted", beam.ErrUnstableStructure)
	}
	if !hasUy {
		return bend, nil, fmt.Errorf("%w: no vertical restraint", beam.ErrUnstableStructure)
	}
	if bendingCount < 2 {
		return bend, nil, fmt.Errorf("%w: a single transverse restraint cannot prevent rotation", beam.ErrUnstableStructure)
	}

	b1 := -1
	for i, d := range dofs {
		if d.kind == dofUy {
			b1 = i
			break
		}
	}
	b2 := -1
	for i, d := range dofs {
		if i != b1 && d.kind != dofUx {
			b2 = i
			break
		}
	}
	bend = [2]int{b1, b2}

	for i := range dofs {
		if i == axial || i == b1 || i == b2 {
			continue
		}
		redundant = append(redundant, i)
	}
	return bend, redundant, nil
}

// boundaries maps the two primary bending DOFs onto the boundary
// conditions that fix the slope/deflection integration constants.
func boundaries(dofs []dof, bend [2]int) [2]field.Boundary {
	var bc [2]field.Boundary
	for i, idx := range bend {
		d := dofs[idx]
		kind := field.ZeroDeflection
		if d.kind == dofRz {
			kind = field.ZeroSlope
		}
		bc[i] = field.Boundary{Position: d.pos, Kind: kind}
	}
	return bc
}

// loadResultants sums the vertical force and the moment about x = 0 of
// a load case, counterclockwise positive.
func loadResultants(loads []beam.Load) (fy, m0 float64) {
	for _, l := range loads {
		switch ld := l.(type) {
		case beam.PointForce:
			fy += ld.Magnitude
			m0 += ld.Magnitude * ld.Position
		case beam.DistributedLoad:
			fy += ld.Magnitude * (ld.End - ld.Start)
			m0 += ld.Magnitude * (ld.End*ld.End - ld.Start*ld.Start) / 2
		case beam.PointTorque:
			m0 += ld.Magnitude
		default:
			panic(fmt.Sprintf("analysis: unhandled load variant %T", l))
		}
	}
	return fy, m0
}

// primaryCase analyses the primary determinate structure under the
// given case loads: the two primary bending reactions follow from
// vertical and moment equilibrium, then the fields are reconstructed
// with the primary boundary conditions. Used for the real-load case
// and once per unit redundant.
func primaryCase(b *beam.Beam, dofs []dof, bend [2]int, caseLoads []beam.Load) (*field.Fields, error) {
	a := mat.NewDense(2, 2, nil)
	for j, idx := range bend {
		d := dofs[idx]
		if d.kind == dofUy {
			a.Set(0, j, 1)
			a.Set(1, j, d.pos)
		} else {
			a.Set(1, j, 1)
		}
	}
	fy, m0 := loadResultants(caseLoads)
	r, err := solve.Dense(a, []float64{-fy, -m0})
	if err != nil {
		return nil, err
	}

	actions := make([]beam.Load, 0, len(caseLoads)+2)
	actions = append(actions, caseLoads...)
	for j, idx := range bend {
		d := dofs[idx]
		if d.kind == dofUy {
			actions = append(actions, beam.PointForce{Position: d.pos, Magnitude: r[j]})
		} else {
			actions = append(actions, beam.PointTorque{Position: d.pos, Magnitude: r[j]})
		}
	}
	return field.Build(b.Length, b.E, b.I, actions, boundaries(dofs, bend))
}

// unitLoad is the unit value of a redundant applied as an external
// action on the primary structure.
func unitLoad(d dof) beam.Load {
	if d.kind == dofUy {
		return beam.PointForce{Position: d.pos, Magnitude: 1}
	}
	return beam.PointTorque{Position: d.pos, Magnitude: 1}
}

// delta reads the EI-scaled displacement matching a redundant's
// restrained DOF: deflection for Uy, slope for Rz. Working in the
// EI-scaled form keeps the compatibility rows at the same order of
// magnitude as the equilibrium rows.
func delta(f *field.Fields, d dof) float64 {
	if d.kind == dofUy {
		return f.DeflectionEI(d.pos)
	}
	return f.SlopeEI(d.pos)
}
