package domain

import "math"

// Delta is the change of one numeric field between two states.
type Delta struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Change returns To - From.
func (d Delta) Change() float64 {
	return d.To - d.From
}

// StateDiff holds the fields that differ between two farm states.
// Environment fields are exogenous and never appear here.
type StateDiff struct {
	Fields map[string]Delta `json:"fields,omitempty"`
}

// diffTolerance hides float noise below display precision.
const diffTolerance = 1e-12

// Diff calculates the difference between oldState and newState.
// Returns nil when nothing changed.
func Diff(oldState, newState FarmState) *StateDiff {
	fields := make(map[string]Delta)
	add := func(key string, from, to float64) {
		if math.Abs(to-from) > diffTolerance {
			fields[key] = Delta{From: from, To: to}
		}
	}

	add(string(VarSoilMoisture), oldState.SoilMoisture, newState.SoilMoisture)
	add(string(VarN), oldState.N, newState.N)
	add(string(VarP), oldState.P, newState.P)
	add(string(VarK), oldState.K, newState.K)
	add("water_used", oldState.WaterUsed, newState.WaterUsed)
	add("fertilizer_used", oldState.FertilizerUsed, newState.FertilizerUsed)
	add("water_retained", oldState.WaterRetained, newState.WaterRetained)
	add("irrigation_events", float64(oldState.IrrigationEvents), float64(newState.IrrigationEvents))

	if len(fields) == 0 {
		return nil
	}
	return &StateDiff{Fields: fields}
}

// IsEmpty checks if the diff contains any change.
func (d *StateDiff) IsEmpty() bool {
	return d == nil || len(d.Fields) == 0
}
