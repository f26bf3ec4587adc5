package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// DrawASCIIBeam creates an ASCII schematic of the beam with its
// supports and load positions.
func DrawASCIIBeam(length float64, supports []beam.Support, loads []beam.Load) string {
	var sb strings.Builder

	widthChars := 60
	col := func(x float64) int {
		c := int(x / length * float64(widthChars))
		if c < 0 {
			c = 0
		}
		if c > widthChars {
			c = widthChars
		}
		return c
	}

	// Load marker row
	marks := []rune(strings.Repeat(" ", widthChars+1))
	for _, l := range loads {
		switch ld := l.(type) {
		case beam.PointForce:
			if ld.Magnitude < 0 {
				marks[col(ld.Position)] = '↓'
			} else {
				marks[col(ld.Position)] = '↑'
			}
		case beam.DistributedLoad:
			for c := col(ld.Start); c <= col(ld.End); c++ {
				marks[c] = '▒'
			}
		case beam.PointTorque:
			marks[col(ld.Position)] = '↻'
		default:
			panic(fmt.Sprintf("diagram: unhandled load variant %T", l))
		}
	}
	sb.WriteString("  " + string(marks) + "\n")

	// Beam line
	sb.WriteString("  " + strings.Repeat("═", widthChars+1) + "\n")

	// Support row
	supRow := []rune(strings.Repeat(" ", widthChars+1))
	for _, s := range supports {
		c := col(s.Position)
		switch {
		case s.Ux && s.Uy && s.Rz:
			supRow[c] = '█'
		case s.Ux && s.Uy:
			supRow[c] = '▲'
		case s.Uy:
			supRow[c] = '○'
		default:
			supRow[c] = '◆'
		}
	}
	sb.WriteString("  " + string(supRow) + "\n")
	sb.WriteString(fmt.Sprintf("  0%*s\n", widthChars, fmt.Sprintf("%.3g m", length)))
	sb.WriteString("  █ fixed   ▲ pin   ○ roller\n")

	return sb.String()
}

// PlotField renders one sampled field as a terminal graph.
func PlotField(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}

// DrawASCIIFields renders the shear, moment and deflection diagrams of
// an analysed beam, one under the other.
func DrawASCIIFields(shear, moment, deflection []float64) string {
	var sb strings.Builder
	sb.WriteString(PlotField(shear, "shear V(x) [N]"))
	sb.WriteString("\n\n")
	sb.WriteString(PlotField(moment, "bending moment M(x) [N·m]"))
	sb.WriteString("\n\n")
	sb.WriteString(PlotField(deflection, "deflection v(x) [m]"))
	sb.WriteString("\n")
	return sb.String()
}
