package dsl

import (
	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/pkg/catalog"
	"github.com/aretw0/furrow/pkg/config"
	"github.com/aretw0/furrow/pkg/domain"
)

// Builder accumulates a scenario. Methods return the builder for chaining;
// validation happens once, in Build.
type Builder struct {
	sc *config.Scenario
}

// New creates a builder with the default physics and nothing else set.
func New() *Builder {
	return &Builder{sc: &config.Scenario{
		OptimalRanges: config.RangeSpec{},
		Physics:       domain.DefaultPhysics(),
	}}
}

// From starts a builder from a copy of an existing scenario.
func From(sc *config.Scenario) *Builder {
	cp := *sc
	cp.OptimalRanges = config.RangeSpec{}
	for k, v := range sc.OptimalRanges {
		cp.OptimalRanges[k] = append([]float64(nil), v...)
	}
	cp.Actions = append([]domain.Action(nil), sc.Actions...)
	cp.Physics = sc.Physics.Clone()
	return &Builder{sc: &cp}
}

// Environment sets the exogenous conditions.
func (b *Builder) Environment(env domain.Environment) *Builder {
	b.sc.Environment = env
	return b
}

// Initial sets the starting soil moisture and nutrient levels.
func (b *Builder) Initial(moisture, n, p, k float64) *Builder {
	b.sc.Initial.SoilMoisture = moisture
	b.sc.Initial.N = n
	b.sc.Initial.P = p
	b.sc.Initial.K = k
	return b
}

// Used sets the resource accumulators of the initial state.
func (b *Builder) Used(water, fertilizer float64) *Builder {
	b.sc.Initial.WaterUsed = water
	b.sc.Initial.FertilizerUsed = fertilizer
	return b
}

// Range sets the optimal interval of v.
func (b *Builder) Range(v domain.Variable, low, high float64) *Builder {
	b.sc.OptimalRanges[string(v)] = []float64{low, high}
	return b
}

// StageRange overrides the interval of v at the given growth stage.
func (b *Builder) StageRange(stage int, v domain.Variable, low, high float64) *Builder {
	if b.sc.StageRanges == nil {
		b.sc.StageRanges = make(map[int]config.RangeSpec)
	}
	if b.sc.StageRanges[stage] == nil {
		b.sc.StageRanges[stage] = config.RangeSpec{}
	}
	b.sc.StageRanges[stage][string(v)] = []float64{low, high}
	return b
}

// Priorities sets the cost weights.
func (b *Builder) Priorities(water, fertilizer, frequency float64) *Builder {
	b.sc.Priorities = domain.Priorities{Water: water, Fertilizer: fertilizer, IrrigationFrequency: frequency}
	return b
}

// Action appends a candidate action.
func (b *Builder) Action(water, fertilizer float64) *Builder {
	b.sc.Actions = append(b.sc.Actions, domain.Action{WaterAmount: water, FertilizerAmount: fertilizer})
	return b
}

// Grid replaces explicit actions with a generated grid.
func (b *Builder) Grid(cfg catalog.GridConfig) *Builder {
	b.sc.Actions = nil
	b.sc.Grid = &cfg
	return b
}

// Physics replaces the transition parameters.
func (b *Builder) Physics(p domain.Physics) *Builder {
	b.sc.Physics = p.Clone()
	return b
}

// Weight scales the heuristic contribution of v.
func (b *Builder) Weight(v domain.Variable, w float64) *Builder {
	if b.sc.HeuristicWeights == nil {
		b.sc.HeuristicWeights = make(map[string]float64)
	}
	b.sc.HeuristicWeights[string(v)] = w
	return b
}

// Limits bounds the search.
func (b *Builder) Limits(maxExpansions, maxDepth int) *Builder {
	b.sc.Search = config.SearchConfig{MaxExpansions: maxExpansions, MaxDepth: maxDepth}
	return b
}

// Scenario returns the accumulated scenario.
func (b *Builder) Scenario() *config.Scenario {
	return b.sc
}

// Build validates the scenario and constructs the planning problem.
func (b *Builder) Build(opts ...furrow.Option) (*furrow.Problem, error) {
	return b.sc.Build(opts...)
}
