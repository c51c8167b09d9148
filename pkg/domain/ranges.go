package domain

import (
	"fmt"
	"math"
)

// Range is an inclusive interval [Low, High].
type Range struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Contains reports whether x lies inside the interval, bounds included.
func (r Range) Contains(x float64) bool {
	return x >= r.Low && x <= r.High
}

// Deviation is the distance from x to the interval, zero inside it.
func (r Range) Deviation(x float64) float64 {
	switch {
	case x < r.Low:
		return r.Low - x
	case x > r.High:
		return x - r.High
	}
	return 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Low, r.High)
}

// OptimalRanges maps each tracked variable to its target interval.
type OptimalRanges map[Variable]Range

// Clone returns a copy safe to hand to callers.
func (o OptimalRanges) Clone() OptimalRanges {
	out := make(OptimalRanges, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Merge returns a copy of o with every entry of override applied on top.
func (o OptimalRanges) Merge(override OptimalRanges) OptimalRanges {
	out := o.Clone()
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Ordered returns the configured variables in the canonical Variables order.
func (o OptimalRanges) Ordered() []Variable {
	vars := make([]Variable, 0, len(o))
	for _, v := range Variables {
		if _, ok := o[v]; ok {
			vars = append(vars, v)
		}
	}
	return vars
}

// Validate collects every problem with the ranges.
func (o OptimalRanges) Validate() []Issue {
	var issues []Issue
	for _, v := range RequiredVariables {
		if _, ok := o[v]; !ok {
			issues = append(issues, Issue{Field: "optimal_ranges." + string(v), Reason: "required"})
		}
	}
	for v, r := range o {
		field := "optimal_ranges." + string(v)
		if !v.IsKnown() {
			issues = append(issues, Issue{Field: field, Reason: "unknown variable"})
			continue
		}
		if math.IsNaN(r.Low) || math.IsNaN(r.High) {
			issues = append(issues, Issue{Field: field, Reason: "bounds must be numbers"})
			continue
		}
		if r.Low > r.High {
			issues = append(issues, Issue{Field: field, Reason: fmt.Sprintf("low %g is greater than high %g", r.Low, r.High)})
		}
	}
	return issues
}
