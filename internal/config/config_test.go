package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

func TestLoadParsesDefinition(t *testing.T) {
	src := `
beam:
  length: 8
  modulus: 200e9
  inertia: 4.5e-5
supports:
  - position: 0
    type: pin
  - position: 4
    type: roller
  - position: 8
    type: roller
loads:
  - kind: udl
    magnitude: -2000
    position: 0
    end: 8
  - kind: torque
    magnitude: 1500
    position: 6
`
	path := filepath.Join(t.TempDir(), "beam.yaml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Beam.Length != 8 || cfg.Beam.Inertia != 4.5e-5 {
		t.Errorf("beam section mismatch: %+v", cfg.Beam)
	}
	if len(cfg.Supports) != 3 || cfg.Supports[1].Type != "roller" {
		t.Errorf("supports mismatch: %+v", cfg.Supports)
	}
	if len(cfg.Loads) != 2 || cfg.Loads[0].End == nil || *cfg.Loads[0].End != 8 {
		t.Errorf("loads mismatch: %+v", cfg.Loads)
	}

	b, err := cfg.Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	if got := len(b.Supports()); got != 3 {
		t.Errorf("model has %d supports, want 3", got)
	}
	if got := len(b.Loads()); got != 2 {
		t.Errorf("model has %d loads, want 2", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.yaml")
	orig := Default()
	if err := Save(path, orig); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Beam != orig.Beam {
		t.Errorf("beam section changed: %+v vs %+v", got.Beam, orig.Beam)
	}
	if len(got.Supports) != len(orig.Supports) || len(got.Loads) != len(orig.Loads) {
		t.Errorf("entry counts changed: %+v", got)
	}
}

func TestModelRejectsUnknownNames(t *testing.T) {
	cfg := Default()
	cfg.Supports[0].Type = "clamped"
	if _, err := cfg.Model(); err == nil {
		t.Error("expected error for unknown support type")
	}

	cfg = Default()
	cfg.Loads[0].Kind = "moment"
	if _, err := cfg.Model(); err == nil {
		t.Error("expected error for unknown load kind")
	}
}

// A udl with no end position collapses to a zero-width extent, which
// the entity model rejects rather than silently treating as a point
// load.
func TestModelRejectsUDLWithoutEnd(t *testing.T) {
	cfg := Default()
	cfg.Loads = []LoadConfig{{Kind: "udl", Magnitude: -2000, Position: 1}}
	_, err := cfg.Model()
	if !errors.Is(err, beam.ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestParseSupportType(t *testing.T) {
	tests := []struct {
		name       string
		ux, uy, rz bool
		wantErr    bool
	}{
		{name: "fixed", ux: true, uy: true, rz: true},
		{name: "PIN", ux: true, uy: true},
		{name: "Roller", uy: true},
		{name: "hinge", wantErr: true},
	}
	for _, tt := range tests {
		s, err := ParseSupportType(tt.name, 2)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.name, err)
			continue
		}
		if s.Ux != tt.ux || s.Uy != tt.uy || s.Rz != tt.rz || s.Position != 2 {
			t.Errorf("%q: got %+v", tt.name, s)
		}
	}
}

// The seeded default definition must build and solve cleanly.
func TestDefaultSolves(t *testing.T) {
	b, err := Default().Model()
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	res, err := analysis.Run(b)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Redundancy() != 3 {
		t.Errorf("redundancy = %d, want 3", res.Redundancy())
	}
}
