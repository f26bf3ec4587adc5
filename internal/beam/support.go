package beam

// Support restrains up to three degrees of freedom of the beam at a
// single position: translation along x, translation along y and
// rotation about z.
type Support struct {
	Position float64
	Ux       bool // axial translation restrained
	Uy       bool // vertical translation restrained
	Rz       bool // rotation restrained
}

// Fixed returns a fully clamped support (1,1,1).
func Fixed(x float64) Support { return Support{Position: x, Ux: true, Uy: true, Rz: true} }

// Pin returns a pinned support (1,1,0).
func Pin(x float64) Support { return Support{Position: x, Ux: true, Uy: true} }

// Roller returns a roller support (0,1,0).
func Roller(x float64) Support { return Support{Position: x, Uy: true} }

// Restraints counts the restrained degrees of freedom.
func (s Support) Restraints() int {
	n := 0
	if s.Ux {
		n++
	}
	if s.Uy {
		n++
	}
	if s.Rz {
		n++
	}
	return n
}
