package domain

import (
	"fmt"
	"math"
)

// Action is one irrigation/fertilization decision.
// Amounts are expressed in the same units as the state's usage accumulators.
type Action struct {
	WaterAmount      float64 `json:"water_amount" yaml:"water_amount" mapstructure:"water_amount"`
	FertilizerAmount float64 `json:"fertilizer_amount" yaml:"fertilizer_amount" mapstructure:"fertilizer_amount"`
}

// Validate checks hard physical bounds: amounts must be finite and non-negative.
func (a Action) Validate() error {
	if err := checkAmount(a.WaterAmount); err != "" {
		return &InvalidActionError{Action: a, Reason: "water_amount " + err}
	}
	if err := checkAmount(a.FertilizerAmount); err != "" {
		return &InvalidActionError{Action: a, Reason: "fertilizer_amount " + err}
	}
	return nil
}

// IsNoop reports whether the action applies nothing.
func (a Action) IsNoop() bool {
	return a.WaterAmount == 0 && a.FertilizerAmount == 0
}

func (a Action) String() string {
	return fmt.Sprintf("water=%.3f fertilizer=%.3f", a.WaterAmount, a.FertilizerAmount)
}

func checkAmount(x float64) string {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return "must be finite"
	case x < 0:
		return "must not be negative"
	}
	return ""
}
