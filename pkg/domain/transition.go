package domain

import (
	"fmt"
	"math"
)

// NutrientSplit is the fixed N:P:K ratio of the blended fertilizer.
type NutrientSplit struct {
	N float64 `json:"N" yaml:"N" mapstructure:"N"`
	P float64 `json:"P" yaml:"P" mapstructure:"P"`
	K float64 `json:"K" yaml:"K" mapstructure:"K"`
}

// Physics parametrises how actions change the state.
type Physics struct {
	// IrrigationEfficiency is the fraction of applied water that reaches the root zone,
	// per irrigation system.
	IrrigationEfficiency map[IrrigationSystem]float64 `json:"irrigation_efficiency" yaml:"irrigation_efficiency" mapstructure:"irrigation_efficiency"`

	// MoistureGain converts effective water into soil moisture.
	MoistureGain float64 `json:"moisture_gain" yaml:"moisture_gain" mapstructure:"moisture_gain"`

	NutrientSplit NutrientSplit `json:"nutrient_split" yaml:"nutrient_split" mapstructure:"nutrient_split"`

	// NutrientGain converts fertilizer into nutrient level.
	NutrientGain float64 `json:"nutrient_gain" yaml:"nutrient_gain" mapstructure:"nutrient_gain"`
}

// DefaultPhysics returns the reference agronomic model.
func DefaultPhysics() Physics {
	return Physics{
		IrrigationEfficiency: map[IrrigationSystem]float64{
			IrrigationDrip:      0.90,
			IrrigationSprinkler: 0.75,
			IrrigationFlood:     0.60,
		},
		MoistureGain:  1.0,
		NutrientSplit: NutrientSplit{N: 0.50, P: 0.25, K: 0.25},
		NutrientGain:  1.0,
	}
}

// Clone copies the efficiency table so the caller cannot alias it.
func (p Physics) Clone() Physics {
	eff := make(map[IrrigationSystem]float64, len(p.IrrigationEfficiency))
	for k, v := range p.IrrigationEfficiency {
		eff[k] = v
	}
	p.IrrigationEfficiency = eff
	return p
}

// Efficiency returns the efficiency of the given system.
func (p Physics) Efficiency(sys IrrigationSystem) (float64, bool) {
	e, ok := p.IrrigationEfficiency[sys]
	return e, ok
}

// Validate collects every problem with the model parameters.
func (p Physics) Validate() []Issue {
	var issues []Issue
	if len(p.IrrigationEfficiency) == 0 {
		issues = append(issues, Issue{Field: "physics.irrigation_efficiency", Reason: "required"})
	}
	for sys, e := range p.IrrigationEfficiency {
		if math.IsNaN(e) || e <= 0 || e > 1 {
			issues = append(issues, Issue{
				Field:  fmt.Sprintf("physics.irrigation_efficiency.%s", sys),
				Reason: "must be in (0, 1]",
			})
		}
	}
	for _, g := range []struct {
		key string
		v   float64
	}{{"moisture_gain", p.MoistureGain}, {"nutrient_gain", p.NutrientGain}} {
		if math.IsNaN(g.v) || math.IsInf(g.v, 0) || g.v < 0 {
			issues = append(issues, Issue{Field: "physics." + g.key, Reason: "must be a non-negative number"})
		}
	}
	s := p.NutrientSplit
	ratiosOK := true
	for _, r := range []struct {
		key string
		v   float64
	}{{"N", s.N}, {"P", s.P}, {"K", s.K}} {
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) || r.v < 0 {
			issues = append(issues, Issue{Field: "physics.nutrient_split." + r.key, Reason: "must be a non-negative number"})
			ratiosOK = false
		}
	}
	if sum := s.N + s.P + s.K; ratiosOK && math.Abs(sum-1) > 1e-9 {
		issues = append(issues, Issue{Field: "physics.nutrient_split", Reason: fmt.Sprintf("ratios must sum to 1 (got %g)", sum)})
	}
	return issues
}
