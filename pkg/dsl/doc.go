/*
Package dsl provides a fluent Go builder for Furrow scenarios.

It is the programmatic counterpart of scenario files: useful for generated
scenarios, unit tests and IDE autocompletion.

Example usage:

	problem, err := dsl.New().
		Environment(domain.Environment{
			SoilType: "2", GrowthStage: 2,
			WaterAvailability: 0.5, IrrigationSystem: domain.IrrigationDrip,
		}).
		Initial(0.25, 0.15, 0.10, 0.12).
		Range(domain.VarSoilMoisture, 0.3, 0.7).
		Range(domain.VarN, 0.2, 0.6).
		Range(domain.VarP, 0.1, 0.4).
		Range(domain.VarK, 0.1, 0.5).
		Priorities(0.4, 0.4, 0.2).
		Action(0.2, 0.1).
		Build()
*/
package dsl
