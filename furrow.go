package furrow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aretw0/furrow/internal/runtime"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
	"github.com/aretw0/furrow/pkg/search"
)

// Problem is the high-level entry point of the Furrow library.
// It composes the action catalog and the transition, cost, heuristic and goal models
// behind the operations a search loop needs. It is read-only after New returns.
type Problem struct {
	runtime    *runtime.Engine
	initial    domain.FarmState
	ranges     domain.OptimalRanges
	priorities domain.Priorities
	physics    domain.Physics
	catalog    ports.ActionCatalog

	heuristicWeights map[domain.Variable]float64
	stageRanges      map[int]domain.OptimalRanges
	hooks            domain.SearchHooks
	logger           *slog.Logger
}

var _ ports.SearchProblem = (*Problem)(nil)

// Option defines a functional option for configuring the Problem.
type Option func(*Problem)

// WithLogger sets a custom structured logger for the problem and its searches.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Problem) {
		p.logger = logger
	}
}

// WithPhysics replaces the default transition parameters.
func WithPhysics(physics domain.Physics) Option {
	return func(p *Problem) {
		p.physics = physics.Clone()
	}
}

// WithHeuristicWeights scales the deviation of individual variables.
// Unlisted variables keep weight 1.
func WithHeuristicWeights(weights map[domain.Variable]float64) Option {
	return func(p *Problem) {
		p.heuristicWeights = make(map[domain.Variable]float64, len(weights))
		for k, v := range weights {
			p.heuristicWeights[k] = v
		}
	}
}

// WithStageRanges overrides ranges for specific growth stages. The override matching
// the initial state's growth stage is merged over the base ranges.
func WithStageRanges(stages map[int]domain.OptimalRanges) Option {
	return func(p *Problem) {
		p.stageRanges = make(map[int]domain.OptimalRanges, len(stages))
		for k, v := range stages {
			p.stageRanges[k] = v.Clone()
		}
	}
}

// WithSearchHooks registers observability callbacks used by Plan.
func WithSearchHooks(hooks domain.SearchHooks) Option {
	return func(p *Problem) {
		p.hooks = hooks
	}
}

// New builds a planning problem. Every argument is required; all configuration
// problems are reported together in a *domain.ConfigurationError.
func New(initial domain.FarmState, ranges domain.OptimalRanges, priorities domain.Priorities, catalog ports.ActionCatalog, opts ...Option) (*Problem, error) {
	p := &Problem{
		initial:    initial.Clone(),
		priorities: priorities,
		catalog:    catalog,
		physics:    domain.DefaultPhysics(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.ranges = ranges.Clone()
	if override, ok := p.stageRanges[initial.GrowthStage]; ok {
		p.ranges = p.ranges.Merge(override)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if p.logger == nil {
		p.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	p.runtime = runtime.NewEngine(runtime.Config{
		Ranges:           p.ranges,
		Priorities:       p.priorities,
		Physics:          p.physics,
		HeuristicWeights: p.heuristicWeights,
		Catalog:          p.catalog,
	}, runtime.WithLogger(p.logger))

	return p, nil
}

func (p *Problem) validate() error {
	var issues []domain.Issue
	issues = append(issues, p.initial.Validate()...)
	issues = append(issues, p.ranges.Validate()...)
	issues = append(issues, p.priorities.Validate()...)
	issues = append(issues, p.physics.Validate()...)

	if p.initial.IrrigationSystem != "" {
		if _, ok := p.physics.Efficiency(p.initial.IrrigationSystem); !ok {
			issues = append(issues, domain.Issue{
				Field:  "environment.irrigation_system",
				Reason: fmt.Sprintf("unknown system %q", p.initial.IrrigationSystem),
			})
		}
	}
	for v, w := range p.heuristicWeights {
		if _, ok := p.ranges[v]; !ok {
			issues = append(issues, domain.Issue{Field: "heuristic_weights." + string(v), Reason: "no optimal range for this variable"})
		} else if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			issues = append(issues, domain.Issue{Field: "heuristic_weights." + string(v), Reason: "must be positive"})
		}
	}
	if p.catalog == nil {
		issues = append(issues, domain.Issue{Field: "actions", Reason: "an action catalog is required"})
	}
	return domain.NewConfigurationError(issues...)
}

// Heuristic estimates the remaining distance from state to the optimal ranges.
func (p *Problem) Heuristic(state domain.FarmState) float64 {
	return p.runtime.Heuristic(state)
}

// Deviations returns each configured variable's distance to its range.
func (p *Problem) Deviations(state domain.FarmState) map[domain.Variable]float64 {
	return p.runtime.Deviations(state)
}

// Cost is the priority-weighted resource cost accumulated in state.
func (p *Problem) Cost(state domain.FarmState) float64 {
	return p.runtime.Cost(state)
}

// GetActions returns every candidate action of the catalog.
func (p *Problem) GetActions() []domain.Action {
	return p.runtime.GetActions()
}

// GetValidActions returns the candidates that respect the physical limits of state.
// The result is empty, never an error, when nothing is valid.
func (p *Problem) GetValidActions(state domain.FarmState) []domain.Action {
	return p.runtime.GetValidActions(state)
}

// ApplyAction returns the successor of state under action.
// It fails with *domain.InvalidActionError only for negative or non-finite amounts.
func (p *Problem) ApplyAction(state domain.FarmState, action domain.Action) (domain.FarmState, error) {
	return p.runtime.ApplyAction(state, action)
}

// ExpandNode produces one child per valid action of node.State.
func (p *Problem) ExpandNode(node *domain.SearchNode) []*domain.SearchNode {
	return p.runtime.ExpandNode(node)
}

// GoalTest reports whether state satisfies every optimal range.
func (p *Problem) GoalTest(state domain.FarmState) bool {
	return p.runtime.GoalTest(state)
}

// Root returns a fresh node for the initial state, with G = 0 and F = H.
func (p *Problem) Root() *domain.SearchNode {
	root := domain.NewRootNode(p.initial)
	root.F = p.Heuristic(root.State)
	return root
}

// Initial returns a copy of the initial state.
func (p *Problem) Initial() domain.FarmState {
	return p.initial.Clone()
}

// Ranges returns the effective optimal ranges, stage overrides included.
func (p *Problem) Ranges() domain.OptimalRanges {
	return p.ranges.Clone()
}

// Priorities returns the configured cost weights.
func (p *Problem) Priorities() domain.Priorities {
	return p.priorities
}

// Physics returns the transition parameters.
func (p *Problem) Physics() domain.Physics {
	return p.physics.Clone()
}

// Plan runs an A* search from the initial state.
// Hooks and logger configured on the problem are applied before opts.
func (p *Problem) Plan(ctx context.Context, opts ...search.Option) (*search.Result, error) {
	base := []search.Option{
		search.WithHooks(p.hooks),
		search.WithLogger(p.logger),
	}
	return search.AStar(ctx, p, append(base, opts...)...)
}
