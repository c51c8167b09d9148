package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/furrow/pkg/config"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEvaluate_DefaultScenario(t *testing.T) {
	s := NewServer()

	resp, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	require.NoError(t, err)

	assert.InDelta(t, 0.10, resp.Heuristic, 1e-9)
	assert.False(t, resp.Goal)
	assert.Len(t, resp.ValidActions, 2)
}

func TestHandleExpand(t *testing.T) {
	s := NewServer()

	resp, err := s.handleExpand(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Children, 2)
	assert.Equal(t, domain.Action{WaterAmount: 0.5, FertilizerAmount: 0.2}, resp.Children[0].Action)
}

func TestHandlePlan_InlineScenario(t *testing.T) {
	var outcome string
	s := NewServer(WithSearchHooks(domain.SearchHooks{
		OnDone: func(_ context.Context, e *domain.SearchEvent) { outcome = e.Outcome },
	}))

	doc, err := config.Default().YAML()
	require.NoError(t, err)

	resp, err := s.handlePlan(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"scenario":       string(doc),
		"max_expansions": float64(50),
	})
	require.NoError(t, err)
	require.Len(t, resp.Steps, 1)
	assert.Equal(t, "goal", outcome)
}

func TestHandlePlan_Errors(t *testing.T) {
	s := NewServer()

	_, err := s.handlePlan(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"scenario": `{"environment": {}}`,
	})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	sc := config.Default()
	sc.Environment.WaterAvailability = 0
	doc, err := sc.YAML()
	require.NoError(t, err)

	_, err = s.handlePlan(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"scenario": string(doc),
	})
	assert.ErrorIs(t, err, domain.ErrNoPlan)
}
