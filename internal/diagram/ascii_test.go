package diagram

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func TestDrawASCIIBeam(t *testing.T) {
	out := DrawASCIIBeam(6,
		[]beam.Support{beam.Fixed(0), beam.Roller(6)},
		[]beam.Load{
			beam.PointForce{Position: 3, Magnitude: -10000},
			beam.DistributedLoad{Start: 1, End: 2, Magnitude: -2000},
			beam.PointTorque{Position: 4, Magnitude: 1500},
		},
	)
	for _, want := range []string{"█", "○", "↓", "▒", "↻"} {
		if !strings.Contains(out, want) {
			t.Errorf("schematic missing %q:\n%s", want, out)
		}
	}
}

func TestDrawASCIIFields(t *testing.T) {
	shear := []float64{5000, 5000, -5000, -5000}
	moment := []float64{0, 15000, 15000, 0}
	defl := []float64{0, -0.004, -0.004, 0}
	out := DrawASCIIFields(shear, moment, defl)
	for _, want := range []string{"shear V(x)", "bending moment M(x)", "deflection v(x)"} {
		if !strings.Contains(out, want) {
			t.Errorf("plot output missing %q caption", want)
		}
	}
}

func TestPlotFieldHandlesFlatSeries(t *testing.T) {
	out := PlotField([]float64{0, 0, 0, 0}, "V (N)")
	if out == "" {
		t.Error("expected non-empty plot for a flat series")
	}
}
