package domain

import "math"

// Priorities are the relative cost weights of the resources spent by a plan.
// They need not sum to 1; the cost model normalises them.
type Priorities struct {
	Water               float64 `json:"water_priority" yaml:"water_priority" mapstructure:"water_priority"`
	Fertilizer          float64 `json:"fertilizer_priority" yaml:"fertilizer_priority" mapstructure:"fertilizer_priority"`
	IrrigationFrequency float64 `json:"irrigation_frequency_priority" yaml:"irrigation_frequency_priority" mapstructure:"irrigation_frequency_priority"`
}

// Sum returns the total weight.
func (p Priorities) Sum() float64 {
	return p.Water + p.Fertilizer + p.IrrigationFrequency
}

// Validate collects every problem with the weights.
func (p Priorities) Validate() []Issue {
	var issues []Issue
	check := func(key string, w float64) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			issues = append(issues, Issue{Field: "priorities." + key, Reason: "must be finite"})
		} else if w < 0 {
			issues = append(issues, Issue{Field: "priorities." + key, Reason: "must not be negative"})
		}
	}
	check(KeyWaterPriority, p.Water)
	check(KeyFertilizerPriority, p.Fertilizer)
	check(KeyIrrigationFrequencyPriority, p.IrrigationFrequency)
	if len(issues) == 0 && p.Sum() <= 0 {
		issues = append(issues, Issue{Field: "priorities", Reason: "at least one weight must be positive"})
	}
	return issues
}
