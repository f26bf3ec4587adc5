package beam

import (
	"errors"
	"testing"
)

func TestNewRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name    string
		length  float64
		e       float64
		i       float64
	}{
		{"zero length", 0, 200e9, 9.05e-6},
		{"negative length", -1, 200e9, 9.05e-6},
		{"zero modulus", 6, 0, 9.05e-6},
		{"negative modulus", 6, -200e9, 9.05e-6},
		{"zero inertia", 6, 200e9, 0},
		{"negative inertia", 6, 200e9, -9.05e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.length, tt.e, tt.i)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestNewAcceptsValidGeometry(t *testing.T) {
	b, err := New(6, 200e9, 9.05e-6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Length != 6 || b.E != 200e9 || b.I != 9.05e-6 {
		t.Errorf("beam fields not set: %+v", b)
	}
}

func TestAddSupportValidation(t *testing.T) {
	b, _ := New(6, 200e9, 9.05e-6)

	tests := []struct {
		name    string
		support Support
		wantErr bool
	}{
		{"at left end", Pin(0), false},
		{"at right end", Roller(6), false},
		{"interior", Fixed(3), false},
		{"before span", Pin(-0.1), true},
		{"past span", Roller(6.1), true},
		{"no restraint", Support{Position: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.AddSupport(tt.support)
			if tt.wantErr && !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("expected ErrInvalidPosition, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddLoadValidation(t *testing.T) {
	b, _ := New(6, 200e9, 9.05e-6)

	tests := []struct {
		name    string
		load    Load
		wantErr bool
	}{
		{"point inside", PointForce{Position: 3, Magnitude: -10000}, false},
		{"point at end", PointForce{Position: 6, Magnitude: 500}, false},
		{"point outside", PointForce{Position: 6.5, Magnitude: 500}, true},
		{"udl full span", DistributedLoad{Start: 0, End: 6, Magnitude: -5000}, false},
		{"udl partial", DistributedLoad{Start: 1, End: 4, Magnitude: 2000}, false},
		{"udl reversed extent", DistributedLoad{Start: 4, End: 1, Magnitude: 2000}, true},
		{"udl zero width", DistributedLoad{Start: 2, End: 2, Magnitude: 2000}, true},
		{"udl past end", DistributedLoad{Start: 5, End: 7, Magnitude: 2000}, true},
		{"udl before start", DistributedLoad{Start: -1, End: 2, Magnitude: 2000}, true},
		{"torque inside", PointTorque{Position: 2, Magnitude: 1000}, false},
		{"torque outside", PointTorque{Position: -2, Magnitude: 1000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.AddLoad(tt.load)
			if tt.wantErr && !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("expected ErrInvalidPosition, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	b, _ := New(6, 200e9, 9.05e-6)
	if err := b.AddSupport(Pin(0)); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSupport(Roller(6)); err != nil {
		t.Fatal(err)
	}

	sups := b.Supports()
	sups[0].Position = 99

	if got := b.Supports()[0].Position; got != 0 {
		t.Errorf("mutating the returned slice leaked into the model: position %g", got)
	}
}

func TestSupportConstructors(t *testing.T) {
	if s := Fixed(1); !s.Ux || !s.Uy || !s.Rz || s.Restraints() != 3 {
		t.Errorf("Fixed restraints wrong: %+v", s)
	}
	if s := Pin(1); !s.Ux || !s.Uy || s.Rz || s.Restraints() != 2 {
		t.Errorf("Pin restraints wrong: %+v", s)
	}
	if s := Roller(1); s.Ux || !s.Uy || s.Rz || s.Restraints() != 1 {
		t.Errorf("Roller restraints wrong: %+v", s)
	}
}
