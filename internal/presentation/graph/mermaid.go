package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/furrow/pkg/domain"
)

// Overlay marks nodes to highlight on the graph.
type Overlay struct {
	PathNodes []*domain.SearchNode
	Goal      *domain.SearchNode
}

// GenerateMermaid produces a Mermaid flowchart from search nodes.
// Node IDs follow the order of nodes. Edges are drawn only when the parent is also
// in nodes, labelled with the action that produced the child.
// Shapes:
// - Root: ((Circle))
// - Goal state: ([Stadium])
// - Default: [Rectangle]
func GenerateMermaid(nodes []*domain.SearchNode, isGoal func(domain.FarmState) bool, overlay *Overlay) string {
	ids := make(map[*domain.SearchNode]string, len(nodes))
	for i, n := range nodes {
		ids[n] = fmt.Sprintf("n%d", i)
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		id := ids[node]

		opener, closer := "[", "]"
		switch {
		case node.Parent == nil || node.Action == nil:
			opener, closer = "((", "))"
		case isGoal != nil && isGoal(node.State):
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, nodeLabel(node), closer))

		parentID, ok := ids[node.Parent]
		if !ok || node.Action == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", parentID, node.Action, id))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef path fill:#e8f5e9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef goal fill:#aed581,stroke:#33691e,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, n := range overlay.PathNodes {
			id, ok := ids[n]
			if !ok || seen[id] || n == overlay.Goal {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s path;\n", id))
		}
		if id, ok := ids[overlay.Goal]; ok {
			sb.WriteString(fmt.Sprintf("    class %s goal;\n", id))
		}
	}

	return sb.String()
}

func nodeLabel(n *domain.SearchNode) string {
	s := n.State
	return fmt.Sprintf("moisture %.3f <br/> N %.3f P %.3f K %.3f <br/> g=%.3f f=%.3f",
		s.SoilMoisture, s.N, s.P, s.K, n.G, n.F)
}
