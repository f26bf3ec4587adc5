package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/spf13/cobra"
)

// Model definition flags shared by the analyze, diagram, export and
// report commands. Only one command runs per invocation, so binding
// them all to the same variables is safe.
var (
	modelConfigFile string
	modelLength     float64
	modelModulus    float64
	modelInertia    float64
	modelSupports   []string
	modelPoints     []string
	modelUDLs       []string
	modelTorques    []string
	modelSamples    int
)

func addModelFlags(c *cobra.Command) {
	c.Flags().StringVar(&modelConfigFile, "config", "", "beam definition file (yaml); overrides the model flags")
	c.Flags().Float64VarP(&modelLength, "length", "l", config.DefaultLength, "span length (m)")
	c.Flags().Float64Var(&modelModulus, "modulus", config.DefaultModulus, "elastic modulus E (Pa)")
	c.Flags().Float64Var(&modelInertia, "inertia", config.DefaultInertia, "second moment of area I (m⁴)")
	c.Flags().StringArrayVarP(&modelSupports, "support", "s", nil, `support "pos:type" with type fixed|pin|roller (repeatable)`)
	c.Flags().StringArrayVarP(&modelPoints, "point", "p", nil, `point force "pos:magnitude" in N, upward positive (repeatable)`)
	c.Flags().StringArrayVarP(&modelUDLs, "udl", "u", nil, `distributed load "start:end:intensity" in N/m (repeatable)`)
	c.Flags().StringArrayVarP(&modelTorques, "torque", "t", nil, `point torque "pos:magnitude" in N·m, counterclockwise positive (repeatable)`)
	c.Flags().IntVarP(&modelSamples, "samples", "n", 121, "number of evenly spaced field samples")
}

// buildModel assembles the beam model from the config file if given,
// from the model flags otherwise. With neither a config file nor any
// support/load flags it falls back to the default fixed-fixed span
// with a midspan point load.
func buildModel() (*beam.Beam, error) {
	if modelConfigFile != "" {
		cfg, err := config.Load(modelConfigFile)
		if err != nil {
			return nil, err
		}
		return cfg.Model()
	}

	if len(modelSupports) == 0 && len(modelPoints) == 0 && len(modelUDLs) == 0 && len(modelTorques) == 0 {
		return config.Default().Model()
	}
	if len(modelSupports) == 0 {
		return nil, fmt.Errorf("no supports given; add at least one --support \"pos:type\"")
	}

	b, err := beam.New(modelLength, modelModulus, modelInertia)
	if err != nil {
		return nil, err
	}
	for _, arg := range modelSupports {
		pos, rest, err := splitPosValue(arg, "support")
		if err != nil {
			return nil, err
		}
		sup, err := config.ParseSupportType(rest, pos)
		if err != nil {
			return nil, err
		}
		if err := b.AddSupport(sup); err != nil {
			return nil, err
		}
	}
	for _, arg := range modelPoints {
		pos, mag, err := splitPosMag(arg, "point force")
		if err != nil {
			return nil, err
		}
		if err := b.AddLoad(beam.PointForce{Position: pos, Magnitude: mag}); err != nil {
			return nil, err
		}
	}
	for _, arg := range modelUDLs {
		parts := strings.Split(arg, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed udl %q, want \"start:end:intensity\"", arg)
		}
		start, err0 := strconv.ParseFloat(parts[0], 64)
		end, err1 := strconv.ParseFloat(parts[1], 64)
		mag, err2 := strconv.ParseFloat(parts[2], 64)
		if err0 != nil || err1 != nil || err2 != nil {
			return nil, fmt.Errorf("malformed udl %q, want \"start:end:intensity\"", arg)
		}
		if err := b.AddLoad(beam.DistributedLoad{Start: start, End: end, Magnitude: mag}); err != nil {
			return nil, err
		}
	}
	for _, arg := range modelTorques {
		pos, mag, err := splitPosMag(arg, "torque")
		if err != nil {
			return nil, err
		}
		if err := b.AddLoad(beam.PointTorque{Position: pos, Magnitude: mag}); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func splitPosValue(arg, what string) (float64, string, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("malformed %s %q, want \"pos:value\"", what, arg)
	}
	pos, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, "", fmt.Errorf("malformed %s position in %q", what, arg)
	}
	return pos, parts[1], nil
}

func splitPosMag(arg, what string) (float64, float64, error) {
	pos, rest, err := splitPosValue(arg, what)
	if err != nil {
		return 0, 0, err
	}
	mag, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed %s magnitude in %q", what, arg)
	}
	return pos, mag, nil
}
