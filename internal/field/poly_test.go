package field

import (
	"math"
	"testing"
)

func TestPolyAt(t *testing.T) {
	tests := []struct {
		name string
		p    Poly
		x    float64
		want float64
	}{
		{"step before offset", Poly{{C: 2, A: 1, N: 0}}, 0.5, 0},
		{"step at offset is right limit", Poly{{C: 2, A: 1, N: 0}}, 1, 2},
		{"step after offset", Poly{{C: 2, A: 1, N: 0}}, 2, 2},
		{"ramp at offset", Poly{{C: 3, A: 1, N: 1}}, 1, 0},
		{"ramp after offset", Poly{{C: 3, A: 1, N: 1}}, 2, 3},
		{"quadratic", Poly{{C: 2, A: 1, N: 2}}, 3, 8},
		{"cubic", Poly{{C: 1, A: 0, N: 3}}, 2, 8},
		{"sum of terms", Poly{{C: 1, A: 0, N: 1}, {C: -1, A: 1, N: 1}}, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.At(tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("At(%g) = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}

func TestPolyIntegrate(t *testing.T) {
	p := Poly{{C: 2, A: 1, N: 0}, {C: 6, A: 0, N: 2}}
	q := p.Integrate()

	// 2<x-1>^0 -> 2<x-1>^1, 6<x>^2 -> 2<x>^3
	if got := q.At(3); math.Abs(got-(2*2+2*27)) > 1e-12 {
		t.Errorf("integral at 3 = %g, want %g", got, 58.0)
	}
	if got := q.At(0.5); math.Abs(got-2*0.125) > 1e-12 {
		t.Errorf("integral at 0.5 = %g, want %g", got, 0.25)
	}
}
