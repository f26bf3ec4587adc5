package analysis

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

type dofKind int

const (
	dofUx dofKind = iota
	dofUy
	dofRz
)

// dof is a single restrained degree of freedom, the unknown reaction
// component attached to it, in canonical order: supports sorted by
// position (stable on insertion order), Ux before Uy before Rz within
// a support.
type dof struct {
	support int // index into the sorted support slice
	kind    dofKind
	pos     float64
}

// Component identifies a reaction component reported to callers.
type Component int

const (
	// Fx is the axial reaction force.
	Fx Component = iota
	// Fy is the vertical reaction force, positive upward.
	Fy
	// Mz is the reaction moment, positive counterclockwise.
	Mz
)

func (c Component) String() string {
	switch c {
	case Fx:
		return "Fx"
	case Fy:
		return "Fy"
	case Mz:
		return "Mz"
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// Reaction is one solved reaction component of a support.
type Reaction struct {
	Support   int // index into Result.Supports()
	Position  float64
	Component Component
	Value     float64
}

func (k dofKind) component() Component {
	switch k {
	case dofUx:
		return Fx
	case dofUy:
		return Fy
	default:
		return Mz
	}
}

// sortSupports returns the supports in canonical position order.
func sortSupports(sups []beam.Support) []beam.Support {
	out := make([]beam.Support, len(sups))
	copy(out, sups)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// enumerate lists the restrained degrees of freedom in canonical order.
func enumerate(sups []beam.Support) []dof {
	var dofs []dof
	for i, s := range sups {
		if s.Ux {
			dofs = append(dofs, dof{support: i, kind: dofUx, pos: s.Position})
		}
		if s.Uy {
			dofs = append(dofs, dof{support: i, kind: dofUy, pos: s.Position})
		}
		if s.Rz {
			dofs = append(dofs, dof{support: i, kind: dofRz, pos: s.Position})
		}
	}
	return dofs
}
