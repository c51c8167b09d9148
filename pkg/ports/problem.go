package ports

import "github.com/aretw0/furrow/pkg/domain"

// SearchProblem is the contract between the planning core and a search loop.
// All methods are pure with respect to the problem's configuration.
type SearchProblem interface {
	// Heuristic estimates the remaining distance from state to the optimal ranges.
	Heuristic(state domain.FarmState) float64

	// Cost is the weighted resource cost accumulated in state.
	Cost(state domain.FarmState) float64

	// GetActions returns every candidate action of the catalog.
	GetActions() []domain.Action

	// GetValidActions returns the candidates that respect the physical limits of state.
	GetValidActions(state domain.FarmState) []domain.Action

	// ApplyAction returns the successor of state under action.
	ApplyAction(state domain.FarmState, action domain.Action) (domain.FarmState, error)

	// ExpandNode produces one child per valid action, in GetValidActions order.
	ExpandNode(node *domain.SearchNode) []*domain.SearchNode

	// GoalTest reports whether state satisfies every optimal range.
	GoalTest(state domain.FarmState) bool

	// Root returns a fresh node for the initial state.
	Root() *domain.SearchNode
}
