package domain

// Variable names a tracked quantity that can carry an optimal range.
// The names double as the keys used in scenario files and JSON payloads.
type Variable string

const (
	VarSoilMoisture Variable = "soil_moisture"
	VarN            Variable = "N"
	VarP            Variable = "P"
	VarK            Variable = "K"
	// VarWUE is the derived water-use efficiency (retained / used water).
	VarWUE Variable = "WUE"
)

// Variables lists every known variable in evaluation order.
var Variables = []Variable{VarSoilMoisture, VarN, VarP, VarK, VarWUE}

// RequiredVariables must be present in every OptimalRanges.
var RequiredVariables = []Variable{VarSoilMoisture, VarN, VarP, VarK}

// Priority keys, as they appear in scenario files.
const (
	KeyWaterPriority               = "water_priority"
	KeyFertilizerPriority          = "fertilizer_priority"
	KeyIrrigationFrequencyPriority = "irrigation_frequency_priority"
)

// IsKnown reports whether v is one of Variables.
func (v Variable) IsKnown() bool {
	for _, k := range Variables {
		if k == v {
			return true
		}
	}
	return false
}
