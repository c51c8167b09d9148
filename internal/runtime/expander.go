package runtime

import "github.com/aretw0/furrow/pkg/domain"

// Expander turns a node into its children.
type Expander struct {
	transition *TransitionModel
	cost       *CostModel
	heuristic  *HeuristicModel
}

// Expand applies every valid action to node.State, in the given order.
// Child G grows by the cost delta between parent and child, so G stays
// consistent with CostModel for any root G. The parent is not mutated.
func (x *Expander) Expand(node *domain.SearchNode, actions []domain.Action) []*domain.SearchNode {
	children := make([]*domain.SearchNode, 0, len(actions))
	parentCost := x.cost.Cost(node.State)
	for i := range actions {
		action := actions[i]
		succ := x.transition.Apply(node.State, action)
		g := node.G + (x.cost.Cost(succ) - parentCost)
		children = append(children, &domain.SearchNode{
			State:  succ,
			G:      g,
			F:      g + x.heuristic.Estimate(succ),
			Action: &action,
			Parent: node,
			Depth:  node.Depth + 1,
		})
	}
	return children
}
