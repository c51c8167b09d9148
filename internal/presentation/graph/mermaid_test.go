package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/furrow/internal/presentation/graph"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func chain() (root, mid, goal, sibling *domain.SearchNode) {
	water := domain.Action{WaterAmount: 0.1}
	feed := domain.Action{WaterAmount: 0.2, FertilizerAmount: 0.1}

	root = &domain.SearchNode{State: domain.FarmState{SoilMoisture: 0.1}}
	mid = &domain.SearchNode{State: domain.FarmState{SoilMoisture: 0.2}, Parent: root, Action: &water, Depth: 1}
	goal = &domain.SearchNode{State: domain.FarmState{SoilMoisture: 0.4}, Parent: mid, Action: &feed, Depth: 2}
	sibling = &domain.SearchNode{State: domain.FarmState{SoilMoisture: 0.3}, Parent: root, Action: &feed, Depth: 1}
	return
}

func isGoal(s domain.FarmState) bool { return s.SoilMoisture >= 0.4 }

func TestGenerateMermaid(t *testing.T) {
	root, mid, goal, sibling := chain()

	tests := []struct {
		name        string
		nodes       []*domain.SearchNode
		overlay     *graph.Overlay
		contains    []string
		notContains []string
	}{
		{
			name:  "Shapes",
			nodes: []*domain.SearchNode{root, mid, goal},
			contains: []string{
				`n0(("moisture 0.100`,
				`n1["moisture 0.200`,
				`n2(["moisture 0.400`,
			},
		},
		{
			name:  "Edges carry actions",
			nodes: []*domain.SearchNode{root, mid, goal, sibling},
			contains: []string{
				`n0 -- "water=0.100 fertilizer=0.000" --> n1`,
				`n1 -- "water=0.200 fertilizer=0.100" --> n2`,
				`n0 -- "water=0.200 fertilizer=0.100" --> n3`,
			},
		},
		{
			name:        "Orphans have no edge",
			nodes:       []*domain.SearchNode{mid, goal},
			contains:    []string{`n0 -- "water=0.200 fertilizer=0.100" --> n1`},
			notContains: []string{"--> n0"},
		},
		{
			name:    "Overlay",
			nodes:   []*domain.SearchNode{root, mid, goal, sibling},
			overlay: &graph.Overlay{PathNodes: goal.Path(), Goal: goal},
			contains: []string{
				"class n0 path;",
				"class n1 path;",
				"class n2 goal;",
			},
			notContains: []string{"class n3", "class n2 path;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.nodes, isGoal, tt.overlay)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}
