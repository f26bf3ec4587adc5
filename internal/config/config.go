// Package config reads and writes beam definitions as YAML files for
// the CLI. It is a thin presentation-layer mapping; all validation
// lives in the entity model.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

const (
	DefaultLength  = 6.0
	DefaultModulus = 200e9
	DefaultInertia = 9.05e-6
)

type Config struct {
	Beam     BeamConfig      `yaml:"beam"`
	Supports []SupportConfig `yaml:"supports"`
	Loads    []LoadConfig    `yaml:"loads"`
}

type BeamConfig struct {
	Length  float64 `yaml:"length"`  // m
	Modulus float64 `yaml:"modulus"` // Pa
	Inertia float64 `yaml:"inertia"` // m⁴
}

type SupportConfig struct {
	Position float64 `yaml:"position"`
	Type     string  `yaml:"type"` // fixed | pin | roller
}

type LoadConfig struct {
	Kind      string   `yaml:"kind"` // point | udl | torque
	Magnitude float64  `yaml:"magnitude"`
	Position  float64  `yaml:"position"`
	End       *float64 `yaml:"end,omitempty"` // udl only
}

// Default is a fixed-fixed span with a midspan point load, the same
// starting model the interactive form seeds.
func Default() *Config {
	return &Config{
		Beam: BeamConfig{Length: DefaultLength, Modulus: DefaultModulus, Inertia: DefaultInertia},
		Supports: []SupportConfig{
			{Position: 0, Type: "fixed"},
			{Position: DefaultLength, Type: "fixed"},
		},
		Loads: []LoadConfig{
			{Kind: "point", Magnitude: -10000, Position: DefaultLength / 2},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Model builds the entity model from the definition. A udl without an
// end position degenerates to a zero-width extent, which the model
// rejects; the error is surfaced unchanged.
func (c *Config) Model() (*beam.Beam, error) {
	b, err := beam.New(c.Beam.Length, c.Beam.Modulus, c.Beam.Inertia)
	if err != nil {
		return nil, err
	}
	for _, s := range c.Supports {
		sup, err := ParseSupportType(s.Type, s.Position)
		if err != nil {
			return nil, err
		}
		if err := b.AddSupport(sup); err != nil {
			return nil, err
		}
	}
	for _, l := range c.Loads {
		var ld beam.Load
		switch strings.ToLower(l.Kind) {
		case "point":
			ld = beam.PointForce{Position: l.Position, Magnitude: l.Magnitude}
		case "udl":
			end := l.Position
			if l.End != nil {
				end = *l.End
			}
			ld = beam.DistributedLoad{Start: l.Position, End: end, Magnitude: l.Magnitude}
		case "torque":
			ld = beam.PointTorque{Position: l.Position, Magnitude: l.Magnitude}
		default:
			return nil, fmt.Errorf("config: unknown load kind %q (want point, udl or torque)", l.Kind)
		}
		if err := b.AddLoad(ld); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ParseSupportType maps a support type name onto its restraint tuple:
// fixed = (1,1,1), pin = (1,1,0), roller = (0,1,0).
func ParseSupportType(name string, position float64) (beam.Support, error) {
	switch strings.ToLower(name) {
	case "fixed":
		return beam.Fixed(position), nil
	case "pin":
		return beam.Pin(position), nil
	case "roller":
		return beam.Roller(position), nil
	}
	return beam.Support{}, fmt.Errorf("config: unknown support type %q (want fixed, pin or roller)", name)
}
