package runtime

import "github.com/aretw0/furrow/pkg/domain"

// epsilon absorbs float noise in physical pre-checks.
const epsilon = 1e-9

// TransitionModel encodes the agronomic effect of an action.
type TransitionModel struct {
	physics domain.Physics
}

// NewTransitionModel creates a model with the given parameters.
func NewTransitionModel(physics domain.Physics) *TransitionModel {
	return &TransitionModel{physics: physics.Clone()}
}

// Apply returns the successor of state under action. It never fails: fractional
// fields are clamped into [0,1]. Sign validation is the caller's concern.
func (m *TransitionModel) Apply(state domain.FarmState, action domain.Action) domain.FarmState {
	next := state.Clone()

	effective := m.effectiveWater(state, action.WaterAmount)
	next.SoilMoisture = domain.Clamp01(state.SoilMoisture + effective)
	if retained := next.SoilMoisture - state.SoilMoisture; retained > 0 {
		next.WaterRetained += retained
	}

	n, p, k := m.nutrientGain(action.FertilizerAmount)
	next.N = domain.Clamp01(state.N + n)
	next.P = domain.Clamp01(state.P + p)
	next.K = domain.Clamp01(state.K + k)

	next.WaterUsed += action.WaterAmount
	next.FertilizerUsed += action.FertilizerAmount
	if action.WaterAmount > 0 {
		next.IrrigationEvents++
	}
	return next
}

// Accepts reports whether action respects the physical limits of state before any
// clamping: water within the remaining budget and no nutrient pushed above 1.
func (m *TransitionModel) Accepts(state domain.FarmState, action domain.Action) bool {
	if action.Validate() != nil {
		return false
	}
	// The tolerance applies only while some budget remains.
	if remaining := state.RemainingWater(); action.WaterAmount > 0 &&
		(remaining <= 0 || action.WaterAmount > remaining+epsilon) {
		return false
	}
	n, p, k := m.nutrientGain(action.FertilizerAmount)
	return state.N+n <= 1+epsilon &&
		state.P+p <= 1+epsilon &&
		state.K+k <= 1+epsilon
}

// effectiveWater is the moisture added by water after efficiency and availability scaling.
func (m *TransitionModel) effectiveWater(state domain.FarmState, water float64) float64 {
	eff, _ := m.physics.Efficiency(state.IrrigationSystem)
	return water * eff * state.WaterAvailability * m.physics.MoistureGain
}

func (m *TransitionModel) nutrientGain(fertilizer float64) (n, p, k float64) {
	split := m.physics.NutrientSplit
	gain := fertilizer * m.physics.NutrientGain
	return gain * split.N, gain * split.P, gain * split.K
}
