// Package analysis solves a beam model for its support reactions and
// reconstructs the shear, moment, slope and deflection fields.
//
// Statically indeterminate models are handled by the force method: the
// restraint set is split into a determinate primary structure and
// redundants, one compatibility equation is written per redundant via
// the unit-load method, and the combined equilibrium/compatibility
// system is solved as a single dense linear system.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/field"
	"github.com/alexiusacademia/gobeam/internal/solve"
)

// Run analyses the model and returns the solved reactions and field
// functions. It is a pure function of the frozen model: it never
// mutates the beam and holds no state between calls, so independent
// models may be analysed concurrently.
func Run(b *beam.Beam) (*Result, error) {
	sups := sortSupports(b.Supports())
	dofs := enumerate(sups)
	n := len(dofs)

	redundancy := n - 3
	if redundancy < 0 {
		return nil, fmt.Errorf("%w: %d restraint(s), planar equilibrium needs 3", beam.ErrUnstableStructure, n)
	}
	bend, redundants, err := selectPrimary(dofs)
	if err != nil {
		return nil, err
	}

	loads := b.Loads()

	// Equilibrium rows: ΣFx, ΣFy, ΣM about x = 0.
	a := mat.NewDense(n, n, nil)
	rhs := make([]float64, n)
	for j, d := range dofs {
		switch d.kind {
		case dofUx:
			a.Set(0, j, 1)
		case dofUy:
			a.Set(1, j, 1)
			a.Set(2, j, d.pos)
		case dofRz:
			a.Set(2, j, 1)
		}
	}
	fy, m0 := loadResultants(loads)
	rhs[1], rhs[2] = -fy, -m0

	// One row per redundant.
	rowOf := make(map[int]int, len(redundants))
	row := 3
	needBase := false
	for _, rj := range redundants {
		rowOf[rj] = row
		row++
		if dofs[rj].kind != dofUx {
			needBase = true
		}
	}

	// Axial redundants: with no axial loading the unit-load equation
	// collapses to X = 0 (the axial flexibility cancels), so the row is
	// written directly in that form.
	for _, rj := range redundants {
		if dofs[rj].kind == dofUx {
			a.Set(rowOf[rj], rj, 1)
		}
	}

	// Bending redundants: compatibility via the unit-load method on the
	// primary structure.
	if needBase {
		base, err := primaryCase(b, dofs, bend, loads)
		if err != nil {
			return nil, err
		}
		for _, ri := range redundants {
			if dofs[ri].kind == dofUx {
				continue
			}
			rhs[rowOf[ri]] = -delta(base, dofs[ri])
		}
		for _, rj := range redundants {
			if dofs[rj].kind == dofUx {
				continue
			}
			fu, err := primaryCase(b, dofs, bend, []beam.Load{unitLoad(dofs[rj])})
			if err != nil {
				return nil, err
			}
			for _, ri := range redundants {
				if dofs[ri].kind == dofUx {
					continue
				}
				a.Set(rowOf[ri], rj, delta(fu, dofs[ri]))
			}
		}
	}

	x, err := solve.Dense(a, rhs)
	if err != nil {
		return nil, err
	}

	// Superpose: the complete action set (loads plus every solved
	// reaction) reconstructs the final fields. The constants still come
	// from the primary boundary conditions; the redundant support
	// conditions are satisfied automatically by the solved system.
	actions := make([]beam.Load, 0, len(loads)+n)
	actions = append(actions, loads...)
	reactions := make([]Reaction, n)
	for j, d := range dofs {
		reactions[j] = Reaction{
			Support:   d.support,
			Position:  d.pos,
			Component: d.kind.component(),
			Value:     x[j],
		}
		switch d.kind {
		case dofUy:
			actions = append(actions, beam.PointForce{Position: d.pos, Magnitude: x[j]})
		case dofRz:
			actions = append(actions, beam.PointTorque{Position: d.pos, Magnitude: x[j]})
		}
	}

	fields, err := field.Build(b.Length, b.E, b.I, actions, boundaries(dofs, bend))
	if err != nil {
		return nil, err
	}

	return &Result{
		length:     b.Length,
		supports:   sups,
		redundancy: redundancy,
		reactions:  reactions,
		fields:     fields,
	}, nil
}
