package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
)

// Config holds everything an Engine needs. It must be validated by the caller.
type Config struct {
	Ranges           domain.OptimalRanges
	Priorities       domain.Priorities
	Physics          domain.Physics
	HeuristicWeights map[domain.Variable]float64
	Catalog          ports.ActionCatalog
}

// Engine composes the transition, cost, heuristic and goal models.
// It is read-only after construction and safe for concurrent use.
type Engine struct {
	catalog    ports.ActionCatalog
	transition *TransitionModel
	cost       *CostModel
	heuristic  *HeuristicModel
	goal       *GoalTest
	expander   *Expander
	logger     *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine from a validated configuration.
func NewEngine(cfg Config, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:    cfg.Catalog,
		transition: NewTransitionModel(cfg.Physics),
		cost:       NewCostModel(cfg.Priorities),
		heuristic:  NewHeuristicModel(cfg.Ranges, cfg.HeuristicWeights),
		goal:       NewGoalTest(cfg.Ranges),
		logger:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	e.expander = &Expander{transition: e.transition, cost: e.cost, heuristic: e.heuristic}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Heuristic returns h(state).
func (e *Engine) Heuristic(state domain.FarmState) float64 {
	return e.heuristic.Estimate(state)
}

// Deviations returns each variable's distance to its range.
func (e *Engine) Deviations(state domain.FarmState) map[domain.Variable]float64 {
	return e.heuristic.Deviations(state)
}

// Cost returns g(state).
func (e *Engine) Cost(state domain.FarmState) float64 {
	return e.cost.Cost(state)
}

// GetActions returns the full catalog.
func (e *Engine) GetActions() []domain.Action {
	return e.catalog.Actions()
}

// GetValidActions filters the catalog against the physical limits of state.
// It returns an empty, non-nil slice when nothing is valid.
func (e *Engine) GetValidActions(state domain.FarmState) []domain.Action {
	all := e.catalog.Actions()
	valid := make([]domain.Action, 0, len(all))
	for _, a := range all {
		if e.transition.Accepts(state, a) {
			valid = append(valid, a)
		}
	}
	return valid
}

// ApplyAction validates the action's sign and applies it.
// Negative or non-finite amounts fail with *domain.InvalidActionError.
func (e *Engine) ApplyAction(state domain.FarmState, action domain.Action) (domain.FarmState, error) {
	if err := action.Validate(); err != nil {
		return domain.FarmState{}, err
	}
	return e.transition.Apply(state, action), nil
}

// ExpandNode produces one child per valid action of node.State.
func (e *Engine) ExpandNode(node *domain.SearchNode) []*domain.SearchNode {
	actions := e.GetValidActions(node.State)
	children := e.expander.Expand(node, actions)
	e.logger.Debug("node expanded",
		"depth", node.Depth,
		"g", node.G,
		"f", node.F,
		"children", len(children),
	)
	return children
}

// GoalTest reports whether state satisfies every optimal range.
func (e *Engine) GoalTest(state domain.FarmState) bool {
	return e.goal.Satisfied(state)
}
