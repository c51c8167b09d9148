// Package dto holds the wire representations shared by the HTTP, MCP and CLI adapters.
package dto

import (
	"time"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/search"
)

// Evaluation is the result of the core operations on the initial state.
type Evaluation struct {
	State        domain.FarmState            `json:"state" jsonschema_description:"The initial farm state"`
	Heuristic    float64                     `json:"heuristic" jsonschema_description:"Weighted distance to the optimal ranges"`
	Cost         float64                     `json:"cost" jsonschema_description:"Priority-weighted resource cost spent so far"`
	Goal         bool                        `json:"goal" jsonschema_description:"Whether every variable is inside its optimal range"`
	Deviations   map[domain.Variable]float64 `json:"deviations" jsonschema_description:"Per-variable distance to its range"`
	Actions      []domain.Action             `json:"actions" jsonschema_description:"Every candidate action"`
	ValidActions []domain.Action             `json:"valid_actions" jsonschema_description:"Candidates that respect the physical limits"`
}

// NewEvaluation evaluates the initial state of p.
func NewEvaluation(p *furrow.Problem) Evaluation {
	s := p.Initial()
	return Evaluation{
		State:        s,
		Heuristic:    p.Heuristic(s),
		Cost:         p.Cost(s),
		Goal:         p.GoalTest(s),
		Deviations:   p.Deviations(s),
		Actions:      p.GetActions(),
		ValidActions: p.GetValidActions(s),
	}
}

// Child is one expanded node.
type Child struct {
	Action    domain.Action    `json:"action"`
	State     domain.FarmState `json:"state"`
	G         float64          `json:"g" jsonschema_description:"Accumulated cost"`
	F         float64          `json:"f" jsonschema_description:"Search priority, g plus heuristic"`
	Heuristic float64          `json:"heuristic"`
	Goal      bool             `json:"goal"`
}

// ExpandResponse lists the children of the root node.
type ExpandResponse struct {
	Children []Child `json:"children" jsonschema_description:"One child per valid action"`
}

// NewChildren describes nodes produced by p.ExpandNode.
func NewChildren(p *furrow.Problem, nodes []*domain.SearchNode) []Child {
	out := make([]Child, 0, len(nodes))
	for _, n := range nodes {
		c := Child{
			State:     n.State,
			G:         n.G,
			F:         n.F,
			Heuristic: p.Heuristic(n.State),
			Goal:      p.GoalTest(n.State),
		}
		if n.Action != nil {
			c.Action = *n.Action
		}
		out = append(out, c)
	}
	return out
}

// PlanResponse is a found plan.
type PlanResponse struct {
	Steps      []search.Step `json:"steps" jsonschema_description:"Actions in execution order with the state each produces"`
	Cost       float64       `json:"cost"`
	Expanded   int           `json:"expanded"`
	Generated  int           `json:"generated"`
	DurationMS float64       `json:"duration_ms"`
}

// NewPlanResponse converts a search result.
func NewPlanResponse(res *search.Result) PlanResponse {
	steps := res.Plan
	if steps == nil {
		steps = []search.Step{}
	}
	return PlanResponse{
		Steps:      steps,
		Cost:       res.Cost,
		Expanded:   res.Expanded,
		Generated:  res.Generated,
		DurationMS: durationMillis(res.Duration),
	}
}

// IssueResponse is one configuration problem.
type IssueResponse struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error  string          `json:"error"`
	Issues []IssueResponse `json:"issues,omitempty"`
}

// durationMillis reports d in fractional milliseconds.
func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
