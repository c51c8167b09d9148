package runtime

import "github.com/aretw0/furrow/pkg/domain"

// HeuristicModel estimates the remaining distance to the optimal ranges.
//
// The estimate is the weighted sum of each variable's deviation outside its range.
// It is zero exactly when GoalTest holds, but it is not admissible in general: range
// deviation and resource cost are measured in different units.
type HeuristicModel struct {
	ranges  domain.OptimalRanges
	order   []domain.Variable
	weights map[domain.Variable]float64
}

// NewHeuristicModel creates a model. Missing weights default to 1.
func NewHeuristicModel(ranges domain.OptimalRanges, weights map[domain.Variable]float64) *HeuristicModel {
	w := make(map[domain.Variable]float64, len(ranges))
	for _, v := range ranges.Ordered() {
		w[v] = 1
		if custom, ok := weights[v]; ok {
			w[v] = custom
		}
	}
	return &HeuristicModel{ranges: ranges.Clone(), order: ranges.Ordered(), weights: w}
}

// Estimate returns h(state).
func (m *HeuristicModel) Estimate(state domain.FarmState) float64 {
	var h float64
	for _, v := range m.order {
		x, ok := state.Value(v)
		if !ok {
			continue
		}
		h += m.weights[v] * m.ranges[v].Deviation(x)
	}
	return h
}

// Deviations returns the per-variable deviation, unweighted, for reporting.
func (m *HeuristicModel) Deviations(state domain.FarmState) map[domain.Variable]float64 {
	out := make(map[domain.Variable]float64, len(m.order))
	for _, v := range m.order {
		if x, ok := state.Value(v); ok {
			out[v] = m.ranges[v].Deviation(x)
		} else {
			out[v] = 0
		}
	}
	return out
}
