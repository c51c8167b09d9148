/*
Package furrow is a deterministic state-space planner for farm irrigation and fertilization.

It models a farm as an evolving state (soil moisture, N/P/K levels, environment and
resource usage) and searches for a sequence of irrigation/fertilization actions that
brings every tracked variable into its agronomic optimal range while keeping the
weighted resource cost low.

# Concept

A Problem bundles everything a best-first search needs: the initial state, the
optimal ranges (the goal), the cost priorities and a catalog of candidate actions.
It exposes the operations of the search core (Heuristic, Cost, GetActions,
GetValidActions, ApplyAction, ExpandNode and GoalTest) as pure functions, so any
search loop can drive it. Plan runs the bundled A* loop.

# Key Features

  - Deterministic: the same problem always yields the same children and plan.
  - Fail fast: all configuration is required up front; New reports every issue at once.
  - Pluggable: catalogs implement ports.ActionCatalog; the transition model is
    parametrised by domain.Physics.

# Usage

	initial := domain.FarmState{
		SoilMoisture: 0.25, N: 0.15, P: 0.10, K: 0.12,
		Environment: domain.Environment{
			SoilType: "2", Temperature: 28, Humidity: 45, RainfallForecast: 6,
			GrowthStage: 2, WaterAvailability: 0.5, IrrigationSystem: domain.IrrigationDrip,
		},
	}
	ranges := domain.OptimalRanges{
		domain.VarSoilMoisture: {Low: 0.3, High: 0.7},
		domain.VarN:            {Low: 0.2, High: 0.6},
		domain.VarP:            {Low: 0.1, High: 0.4},
		domain.VarK:            {Low: 0.1, High: 0.5},
	}
	problem, err := furrow.New(initial, ranges,
		domain.Priorities{Water: 0.4, Fertilizer: 0.4, IrrigationFrequency: 0.2},
		catalog.NewFixed(domain.Action{WaterAmount: 0.5, FertilizerAmount: 0.2}),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := problem.Plan(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, step := range res.Plan {
		log.Println(step.Action)
	}
*/
package furrow
