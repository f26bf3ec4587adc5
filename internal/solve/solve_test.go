package solve

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

func TestDenseSolvesWellConditionedSystem(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	x, err := Dense(a, []float64{5, 10})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	want := []float64{1, 3}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Errorf("x[%d] = %g, want %g", i, x[i], want[i])
		}
	}
}

func TestDenseRejectsSingularMatrix(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	_, err := Dense(a, []float64{1, 2})
	if !errors.Is(err, beam.ErrSingularSystem) {
		t.Errorf("expected ErrSingularSystem, got %v", err)
	}
}

func TestDenseRejectsNearSingularMatrix(t *testing.T) {
	// Rows differ by one part in 1e14, far beyond the condition limit.
	a := mat.NewDense(2, 2, []float64{1, 1, 1, 1 + 1e-14})
	_, err := Dense(a, []float64{1, 1})
	if !errors.Is(err, beam.ErrSingularSystem) {
		t.Errorf("expected ErrSingularSystem, got %v", err)
	}
}

func TestDenseRejectsBadShape(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	if _, err := Dense(a, []float64{1}); err == nil {
		t.Error("expected shape error, got nil")
	}
}

func TestDenseIsDeterministic(t *testing.T) {
	data := []float64{4, -2, 1, 3, 6, -4, 2, 1, 8}
	rhs := []float64{5, -2, 9}

	first, err := Dense(mat.NewDense(3, 3, append([]float64{}, data...)), append([]float64{}, rhs...))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	for run := 0; run < 5; run++ {
		again, err := Dense(mat.NewDense(3, 3, append([]float64{}, data...)), append([]float64{}, rhs...))
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("run %d component %d differs: %g vs %g", run, i, again[i], first[i])
			}
		}
	}
}
