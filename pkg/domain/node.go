package domain

// SearchNode wraps a state with its accumulated cost G and priority F = G + H.
// Nodes are owned by the search that created them. Parent links exist only to
// rebuild the action sequence once a goal is found.
type SearchNode struct {
	State FarmState `json:"state"`
	G     float64   `json:"g"`
	F     float64   `json:"f"`

	// Action is the action that produced this node from Parent (nil at the root).
	Action *Action     `json:"action,omitempty"`
	Parent *SearchNode `json:"-"`
	Depth  int         `json:"depth"`
}

// NewRootNode creates a node for the initial state with G = 0.
func NewRootNode(state FarmState) *SearchNode {
	return &SearchNode{State: state.Clone()}
}

// Copy returns a detached node with a copied state and the same G.
// F is left for the caller to recompute.
func (n *SearchNode) Copy() *SearchNode {
	return &SearchNode{
		State: n.State.Clone(),
		G:     n.G,
	}
}

// Path returns the nodes from the root to n, inclusive.
func (n *SearchNode) Path() []*SearchNode {
	var path []*SearchNode
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Actions returns the action sequence that leads from the root to n.
func (n *SearchNode) Actions() []Action {
	var actions []Action
	for _, node := range n.Path() {
		if node.Action != nil {
			actions = append(actions, *node.Action)
		}
	}
	return actions
}
