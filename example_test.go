package furrow_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/pkg/catalog"
	"github.com/aretw0/furrow/pkg/domain"
)

// ExampleNew demonstrates building a problem and stepping through the core
// operations by hand, the way a custom search loop would.
func ExampleNew() {
	problem, err := furrow.New(demoState(), demoRanges(), demoPriorities(), catalog.NewFixed(demoActions()...))
	if err != nil {
		log.Fatal(err)
	}

	root := problem.Root()
	fmt.Printf("h=%.2f goal=%v\n", root.F, problem.GoalTest(root.State))

	for _, child := range problem.ExpandNode(root) {
		fmt.Printf("%s -> goal=%v\n", *child.Action, problem.GoalTest(child.State))
	}

	// Output:
	// h=0.10 goal=false
	// water=0.500 fertilizer=0.200 -> goal=true
	// water=0.200 fertilizer=0.100 -> goal=true
}

// ExampleProblem_Plan runs the bundled A* search.
func ExampleProblem_Plan() {
	problem, err := furrow.New(demoState(), demoRanges(), demoPriorities(), catalog.NewFixed(demoActions()...))
	if err != nil {
		log.Fatal(err)
	}

	res, err := problem.Plan(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for i, step := range res.Plan {
		fmt.Printf("%d. %s (moisture %.3f)\n", i+1, step.Action, step.State.SoilMoisture)
	}

	// Output:
	// 1. water=0.200 fertilizer=0.100 (moisture 0.340)
}

func demoState() domain.FarmState {
	return domain.FarmState{
		SoilMoisture: 0.25,
		N:            0.15,
		P:            0.10,
		K:            0.12,
		Environment: domain.Environment{
			SoilType:          "2",
			Temperature:       28,
			Humidity:          45,
			RainfallForecast:  6,
			GrowthStage:       2,
			WaterAvailability: 0.5,
			IrrigationSystem:  domain.IrrigationDrip,
		},
	}
}

func demoRanges() domain.OptimalRanges {
	return domain.OptimalRanges{
		domain.VarSoilMoisture: {Low: 0.3, High: 0.7},
		domain.VarN:            {Low: 0.2, High: 0.6},
		domain.VarP:            {Low: 0.1, High: 0.4},
		domain.VarK:            {Low: 0.1, High: 0.5},
		domain.VarWUE:          {Low: 0.3, High: 0.6},
	}
}

func demoPriorities() domain.Priorities {
	return domain.Priorities{Water: 0.4, Fertilizer: 0.4, IrrigationFrequency: 0.2}
}

func demoActions() []domain.Action {
	return []domain.Action{
		{WaterAmount: 0.5, FertilizerAmount: 0.2},
		{WaterAmount: 1.0, FertilizerAmount: 0.3},
		{WaterAmount: 0.2, FertilizerAmount: 0.1},
	}
}
