package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoState() FarmState {
	return FarmState{
		SoilMoisture: 0.25,
		N:            0.15,
		P:            0.10,
		K:            0.12,
		Environment: Environment{
			SoilType:          "2",
			Temperature:       28,
			Humidity:          45,
			RainfallForecast:  6,
			GrowthStage:       2,
			WaterAvailability: 0.5,
			IrrigationSystem:  IrrigationDrip,
		},
	}
}

func TestFarmState_CloneIsIndependent(t *testing.T) {
	s := demoState()
	c := s.Clone()
	c.SoilMoisture = 0.9
	c.WaterUsed = 1

	assert.Equal(t, 0.25, s.SoilMoisture)
	assert.Equal(t, 0.0, s.WaterUsed)
}

func TestFarmState_WUE(t *testing.T) {
	s := demoState()
	_, ok := s.WUE()
	assert.False(t, ok, "WUE is undefined before any water is used")

	s.WaterUsed = 0.5
	s.WaterRetained = 0.2
	wue, ok := s.WUE()
	require.True(t, ok)
	assert.InDelta(t, 0.4, wue, 1e-12)

	v, ok := s.Value(VarWUE)
	require.True(t, ok)
	assert.InDelta(t, 0.4, v, 1e-12)
}

func TestFarmState_Value(t *testing.T) {
	s := demoState()
	for v, want := range map[Variable]float64{
		VarSoilMoisture: 0.25,
		VarN:            0.15,
		VarP:            0.10,
		VarK:            0.12,
	} {
		got, ok := s.Value(v)
		assert.True(t, ok, v)
		assert.Equal(t, want, got, v)
	}
	_, ok := s.Value("pH")
	assert.False(t, ok)
}

func TestFarmState_RemainingWater(t *testing.T) {
	s := demoState()
	assert.Equal(t, 0.5, s.RemainingWater())
	s.WaterUsed = 0.7
	assert.Equal(t, 0.0, s.RemainingWater())
}

func TestFarmState_Validate(t *testing.T) {
	assert.Empty(t, demoState().Validate())

	s := demoState()
	s.SoilMoisture = 1.2
	s.SoilType = ""
	s.GrowthStage = 0
	s.WaterUsed = -1
	issues := s.Validate()

	fields := make([]string, 0, len(issues))
	for _, i := range issues {
		fields = append(fields, i.Field)
	}
	assert.ElementsMatch(t, []string{
		"initial.soil_moisture",
		"environment.soil_type",
		"environment.growth_stage",
		"initial.water_used",
	}, fields)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.1))
	assert.Equal(t, 1.0, Clamp01(1.3))
	assert.Equal(t, 0.4, Clamp01(0.4))
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
}

func TestAction_Validate(t *testing.T) {
	assert.NoError(t, Action{WaterAmount: 0.5, FertilizerAmount: 0.2}.Validate())
	assert.NoError(t, Action{}.Validate())

	err := Action{WaterAmount: -0.1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAction))

	var actErr *InvalidActionError
	require.ErrorAs(t, err, &actErr)
	assert.Contains(t, actErr.Reason, "water_amount")

	err = Action{FertilizerAmount: math.Inf(1)}.Validate()
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestOptimalRanges_Validate(t *testing.T) {
	ok := OptimalRanges{
		VarSoilMoisture: {0.3, 0.7},
		VarN:            {0.2, 0.6},
		VarP:            {0.1, 0.4},
		VarK:            {0.1, 0.5},
		VarWUE:          {0.3, 0.6},
	}
	assert.Empty(t, ok.Validate())

	bad := OptimalRanges{
		VarSoilMoisture: {0.7, 0.3},
		VarN:            {0.2, 0.6},
		VarP:            {0.1, 0.4},
		"pH":            {5, 7},
	}
	issues := bad.Validate()
	assert.Len(t, issues, 3) // K missing, soil_moisture inverted, pH unknown
}

func TestRange_Deviation(t *testing.T) {
	r := Range{Low: 0.3, High: 0.7}
	assert.Equal(t, 0.0, r.Deviation(0.3))
	assert.Equal(t, 0.0, r.Deviation(0.7))
	assert.InDelta(t, 0.05, r.Deviation(0.25), 1e-12)
	assert.InDelta(t, 0.1, r.Deviation(0.8), 1e-12)
	assert.True(t, r.Contains(0.5))
	assert.False(t, r.Contains(0.71))
}

func TestPriorities_Validate(t *testing.T) {
	assert.Empty(t, Priorities{Water: 0.4, Fertilizer: 0.4, IrrigationFrequency: 0.2}.Validate())
	assert.Len(t, Priorities{}.Validate(), 1)
	assert.Len(t, Priorities{Water: -1, Fertilizer: 1}.Validate(), 1)
}

func TestConfigurationError(t *testing.T) {
	assert.NoError(t, NewConfigurationError())

	err := NewConfigurationError(Issue{Field: "a", Reason: "required"}, Issue{Field: "b", Reason: "required"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "2 configuration errors")
	assert.Len(t, ConfigurationIssues(err), 2)
}

func TestPhysics_Validate(t *testing.T) {
	assert.Empty(t, DefaultPhysics().Validate())

	p := DefaultPhysics()
	p.NutrientSplit = NutrientSplit{N: 0.5, P: 0.5, K: 0.5}
	p.IrrigationEfficiency[IrrigationFlood] = 0
	assert.Len(t, p.Validate(), 2)

	tests := []struct {
		name  string
		split NutrientSplit
		field string
	}{
		{"NaN ratio", NutrientSplit{N: math.NaN(), P: 0.5, K: 0.5}, "physics.nutrient_split.N"},
		{"infinite ratio", NutrientSplit{N: 0.5, P: math.Inf(1), K: 0.5}, "physics.nutrient_split.P"},
		{"negative ratio", NutrientSplit{N: 0.5, P: 0.6, K: -0.1}, "physics.nutrient_split.K"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPhysics()
			p.NutrientSplit = tt.split
			issues := p.Validate()
			require.Len(t, issues, 1)
			assert.Equal(t, tt.field, issues[0].Field)
		})
	}
}

func TestSearchNode_PathAndCopy(t *testing.T) {
	root := NewRootNode(demoState())
	act := Action{WaterAmount: 0.2}
	child := &SearchNode{State: root.State, G: 1.5, F: 2, Parent: root, Action: &act, Depth: 1}

	path := child.Path()
	require.Len(t, path, 2)
	assert.Same(t, root, path[0])
	assert.Equal(t, []Action{act}, child.Actions())

	cp := child.Copy()
	assert.Equal(t, 1.5, cp.G)
	assert.Zero(t, cp.F)
	assert.Nil(t, cp.Parent)
	cp.State.SoilMoisture = 0.99
	assert.Equal(t, 0.25, child.State.SoilMoisture)
}
