package domain

import "math"

// IrrigationSystem identifies the delivery method used to apply water.
type IrrigationSystem string

const (
	IrrigationDrip      IrrigationSystem = "drip"
	IrrigationSprinkler IrrigationSystem = "sprinkler"
	IrrigationFlood     IrrigationSystem = "flood"
)

// Environment is the exogenous part of the farm state.
// It does not change while a plan is being searched.
type Environment struct {
	// SoilType is an opaque identifier of the soil class (e.g. "2").
	SoilType string `json:"soil_type" yaml:"soil_type" mapstructure:"soil_type"`

	// Temperature in degrees Celsius.
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// Humidity as a percentage.
	Humidity float64 `json:"humidity" yaml:"humidity" mapstructure:"humidity"`

	// RainfallForecast in millimetres.
	RainfallForecast float64 `json:"rainfall_forecast" yaml:"rainfall_forecast" mapstructure:"rainfall_forecast"`

	// GrowthStage is the ordinal crop stage, starting at 1.
	GrowthStage int `json:"growth_stage" yaml:"growth_stage" mapstructure:"growth_stage"`

	// WaterAvailability is the water ceiling for the episode, in [0,1].
	WaterAvailability float64 `json:"water_availability" yaml:"water_availability" mapstructure:"water_availability"`

	IrrigationSystem IrrigationSystem `json:"irrigation_system" yaml:"irrigation_system" mapstructure:"irrigation_system"`
}

// FarmState represents one point in the search space.
// It holds no reference types, so assigning it copies it entirely.
type FarmState struct {
	SoilMoisture float64 `json:"soil_moisture" yaml:"soil_moisture" mapstructure:"soil_moisture"`
	N            float64 `json:"N" yaml:"N" mapstructure:"N"`
	P            float64 `json:"P" yaml:"P" mapstructure:"P"`
	K            float64 `json:"K" yaml:"K" mapstructure:"K"`

	Environment `yaml:",inline" mapstructure:",squash"`

	// Accumulators. They never decrease.
	WaterUsed        float64 `json:"water_used" yaml:"water_used" mapstructure:"water_used"`
	FertilizerUsed   float64 `json:"fertilizer_used" yaml:"fertilizer_used" mapstructure:"fertilizer_used"`
	WaterRetained    float64 `json:"water_retained" yaml:"water_retained" mapstructure:"water_retained"`
	IrrigationEvents int     `json:"irrigation_events" yaml:"irrigation_events" mapstructure:"irrigation_events"`
}

// Clone returns an independent copy of the state.
func (s FarmState) Clone() FarmState {
	return s
}

// RemainingWater is the part of the water ceiling not yet spent.
func (s FarmState) RemainingWater() float64 {
	return math.Max(0, s.WaterAvailability-s.WaterUsed)
}

// WUE returns the water-use efficiency (retained / used).
// The second result is false while no water has been applied.
func (s FarmState) WUE() (float64, bool) {
	if s.WaterUsed <= 0 {
		return 0, false
	}
	return s.WaterRetained / s.WaterUsed, true
}

// Value reads a tracked variable by name.
// The second result is false for unknown names and for an undefined WUE.
func (s FarmState) Value(v Variable) (float64, bool) {
	switch v {
	case VarSoilMoisture:
		return s.SoilMoisture, true
	case VarN:
		return s.N, true
	case VarP:
		return s.P, true
	case VarK:
		return s.K, true
	case VarWUE:
		return s.WUE()
	}
	return 0, false
}

// InBounds reports whether every fractional field lies in [0,1].
func (s FarmState) InBounds() bool {
	for _, f := range []float64{s.SoilMoisture, s.N, s.P, s.K, s.WaterAvailability} {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return false
		}
	}
	return true
}

// Clamp01 bounds x to [0,1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// Validate collects every missing or out-of-bounds field of the state.
// Irrigation systems are checked against the physics table by the caller.
func (s FarmState) Validate() []Issue {
	var issues []Issue
	fraction := func(field string, x float64) {
		if math.IsNaN(x) || x < 0 || x > 1 {
			issues = append(issues, Issue{Field: field, Reason: "must be in [0, 1]"})
		}
	}
	fraction("initial.soil_moisture", s.SoilMoisture)
	fraction("initial.N", s.N)
	fraction("initial.P", s.P)
	fraction("initial.K", s.K)
	fraction("environment.water_availability", s.WaterAvailability)

	finite := func(field string, x float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			issues = append(issues, Issue{Field: field, Reason: "must be finite"})
		}
	}
	finite("environment.temperature", s.Temperature)
	finite("environment.humidity", s.Humidity)
	finite("environment.rainfall_forecast", s.RainfallForecast)

	if s.SoilType == "" {
		issues = append(issues, Issue{Field: "environment.soil_type", Reason: "required"})
	}
	if s.IrrigationSystem == "" {
		issues = append(issues, Issue{Field: "environment.irrigation_system", Reason: "required"})
	}
	if s.GrowthStage < 1 {
		issues = append(issues, Issue{Field: "environment.growth_stage", Reason: "must be >= 1"})
	}
	if s.RainfallForecast < 0 {
		issues = append(issues, Issue{Field: "environment.rainfall_forecast", Reason: "must not be negative"})
	}

	for _, acc := range []struct {
		field string
		v     float64
	}{
		{"initial.water_used", s.WaterUsed},
		{"initial.fertilizer_used", s.FertilizerUsed},
		{"initial.water_retained", s.WaterRetained},
		{"initial.irrigation_events", float64(s.IrrigationEvents)},
	} {
		if math.IsNaN(acc.v) || acc.v < 0 {
			issues = append(issues, Issue{Field: acc.field, Reason: "must not be negative"})
		}
	}
	return issues
}
