package runtime

import "github.com/aretw0/furrow/pkg/domain"

// CostModel prices the resources accumulated in a state.
type CostModel struct {
	priorities domain.Priorities
	total      float64
}

// NewCostModel creates a cost model. Priorities must have a positive sum.
func NewCostModel(p domain.Priorities) *CostModel {
	return &CostModel{priorities: p, total: p.Sum()}
}

// Cost is the priority-weighted usage, normalised by the sum of the weights.
// The irrigation frequency term counts applied irrigation events.
func (m *CostModel) Cost(state domain.FarmState) float64 {
	if m.total <= 0 {
		return 0
	}
	p := m.priorities
	raw := p.Water*state.WaterUsed +
		p.Fertilizer*state.FertilizerUsed +
		p.IrrigationFrequency*float64(state.IrrigationEvents)
	return raw / m.total
}
