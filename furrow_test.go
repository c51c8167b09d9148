package furrow_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/pkg/catalog"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
	"github.com/aretw0/furrow/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoProblem(t *testing.T, opts ...furrow.Option) *furrow.Problem {
	t.Helper()
	p, err := furrow.New(demoState(), demoRanges(), demoPriorities(), catalog.NewFixed(demoActions()...), opts...)
	require.NoError(t, err)
	return p
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.FarmState, domain.OptimalRanges, *domain.Priorities)
		noCatalog  bool
		wantFields []string
	}{
		{
			name:       "missing catalog",
			noCatalog:  true,
			wantFields: []string{"actions"},
		},
		{
			name: "missing range",
			mutate: func(_ *domain.FarmState, r domain.OptimalRanges, _ *domain.Priorities) {
				delete(r, domain.VarN)
			},
			wantFields: []string{"optimal_ranges.N"},
		},
		{
			name: "missing environment",
			mutate: func(s *domain.FarmState, _ domain.OptimalRanges, _ *domain.Priorities) {
				s.SoilType = ""
				s.IrrigationSystem = ""
			},
			wantFields: []string{"environment.soil_type", "environment.irrigation_system"},
		},
		{
			name: "unknown irrigation system",
			mutate: func(s *domain.FarmState, _ domain.OptimalRanges, _ *domain.Priorities) {
				s.IrrigationSystem = "pivot"
			},
			wantFields: []string{"environment.irrigation_system"},
		},
		{
			name: "zero priorities",
			mutate: func(_ *domain.FarmState, _ domain.OptimalRanges, p *domain.Priorities) {
				*p = domain.Priorities{}
			},
			wantFields: []string{"priorities"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ranges, prio := demoState(), demoRanges(), demoPriorities()
			if tt.mutate != nil {
				tt.mutate(&state, ranges, &prio)
			}
			var cat ports.ActionCatalog
			if !tt.noCatalog {
				cat = catalog.NewFixed(demoActions()...)
			}

			_, err := furrow.New(state, ranges, prio, cat)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)

			var fields []string
			for _, issue := range domain.ConfigurationIssues(err) {
				fields = append(fields, issue.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestNew_HeuristicWeightsValidated(t *testing.T) {
	_, err := furrow.New(demoState(), demoRanges(), demoPriorities(), catalog.NewFixed(demoActions()...),
		furrow.WithHeuristicWeights(map[domain.Variable]float64{domain.VarN: 0}))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNew_RangesAreCopied(t *testing.T) {
	ranges := demoRanges()
	p, err := furrow.New(demoState(), ranges, demoPriorities(), catalog.NewFixed(demoActions()...))
	require.NoError(t, err)

	ranges[domain.VarSoilMoisture] = domain.Range{Low: 0, High: 1}
	assert.Equal(t, domain.Range{Low: 0.3, High: 0.7}, p.Ranges()[domain.VarSoilMoisture])
}

func TestProblem_EndToEnd_ApplyAction(t *testing.T) {
	p := newDemoProblem(t)
	root := p.Root()

	next, err := p.ApplyAction(root.State, domain.Action{WaterAmount: 0.5, FertilizerAmount: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 0.5, next.WaterUsed)
	assert.Equal(t, 0.2, next.FertilizerUsed)
	assert.Greater(t, next.SoilMoisture, 0.25)
	assert.LessOrEqual(t, next.SoilMoisture, 1.0)
	assert.Equal(t, 0.25, root.State.SoilMoisture)
}

func TestProblem_EndToEnd_GoalAndHeuristic(t *testing.T) {
	p := newDemoProblem(t)
	s := demoState()
	s.SoilMoisture = 0.5
	s.N = 0.3

	assert.True(t, p.GoalTest(s))
	assert.Zero(t, p.Heuristic(s))

	assert.False(t, p.GoalTest(demoState()))
	assert.Greater(t, p.Heuristic(demoState()), 0.0)
}

func TestProblem_InitialOperations(t *testing.T) {
	p := newDemoProblem(t)
	root := p.Root()

	assert.Zero(t, root.G)
	assert.InDelta(t, 0.10, root.F, 1e-12)
	assert.Zero(t, p.Cost(root.State))
	assert.Len(t, p.GetActions(), 3)
	assert.Len(t, p.GetValidActions(root.State), 2)

	children := p.ExpandNode(root)
	assert.Len(t, children, 2)
	for _, c := range children {
		assert.GreaterOrEqual(t, c.G, root.G)
	}
}

func TestProblem_StageRanges(t *testing.T) {
	p := newDemoProblem(t, furrow.WithStageRanges(map[int]domain.OptimalRanges{
		2: {domain.VarN: {Low: 0.1, High: 0.2}},
		3: {domain.VarN: {Low: 0.9, High: 1.0}},
	}))
	assert.Equal(t, domain.Range{Low: 0.1, High: 0.2}, p.Ranges()[domain.VarN])
	assert.Equal(t, domain.Range{Low: 0.3, High: 0.7}, p.Ranges()[domain.VarSoilMoisture])
}

func TestProblem_Plan(t *testing.T) {
	var expanded, done int
	hooks := domain.SearchHooks{
		OnExpand: func(context.Context, *domain.ExpandEvent) { expanded++ },
		OnDone: func(_ context.Context, e *domain.SearchEvent) {
			done++
			assert.Equal(t, "goal", e.Outcome)
		},
	}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := newDemoProblem(t, furrow.WithSearchHooks(hooks), furrow.WithLogger(logger))
	res, err := p.Plan(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Plan, 1)
	assert.Equal(t, domain.Action{WaterAmount: 0.2, FertilizerAmount: 0.1}, res.Plan[0].Action)
	assert.True(t, p.GoalTest(res.Plan[0].State))
	assert.Equal(t, 1, expanded)
	assert.Equal(t, 1, done)
	assert.Contains(t, logs.String(), "search finished")
}

func TestProblem_Plan_NoWater(t *testing.T) {
	s := demoState()
	s.WaterAvailability = 0
	p, err := furrow.New(s, demoRanges(), demoPriorities(), catalog.NewFixed(demoActions()...))
	require.NoError(t, err)

	assert.Empty(t, p.GetValidActions(s))
	_, err = p.Plan(context.Background(), search.WithMaxExpansions(10))
	assert.ErrorIs(t, err, domain.ErrNoPlan)
}
