package config

import (
	"github.com/aretw0/furrow/pkg/domain"
)

// Default returns the reference scenario: a drip-irrigated field at growth stage 2
// that starts slightly dry and low on nitrogen, with half of the water ceiling
// available and three candidate actions.
func Default() *Scenario {
	return &Scenario{
		Environment: domain.Environment{
			SoilType:          "2",
			Temperature:       28,
			Humidity:          45,
			RainfallForecast:  6,
			GrowthStage:       2,
			WaterAvailability: 0.5,
			IrrigationSystem:  domain.IrrigationDrip,
		},
		Initial: InitialState{
			SoilMoisture: 0.25,
			N:            0.15,
			P:            0.10,
			K:            0.12,
		},
		OptimalRanges: RangeSpec{
			string(domain.VarSoilMoisture): {0.3, 0.7},
			string(domain.VarN):            {0.2, 0.6},
			string(domain.VarP):            {0.1, 0.4},
			string(domain.VarK):            {0.1, 0.5},
			string(domain.VarWUE):          {0.3, 0.6},
		},
		Priorities: domain.Priorities{
			Water:               0.4,
			Fertilizer:          0.4,
			IrrigationFrequency: 0.2,
		},
		Actions: []domain.Action{
			{WaterAmount: 0.5, FertilizerAmount: 0.2},
			{WaterAmount: 1.0, FertilizerAmount: 0.3},
			{WaterAmount: 0.2, FertilizerAmount: 0.1},
		},
		Physics: domain.DefaultPhysics(),
	}
}
