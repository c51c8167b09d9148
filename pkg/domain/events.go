package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeExpand  EventType = "node_expand"
	EventGoalReached EventType = "goal_reached"
	EventSearchDone  EventType = "search_done"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ExpandEvent is emitted after a node has been expanded.
type ExpandEvent struct {
	EventBase
	Depth    int     `json:"depth"`
	G        float64 `json:"g"`
	F        float64 `json:"f"`
	Children int     `json:"children"`
}

// GoalEvent is emitted when a goal node is popped from the frontier.
type GoalEvent struct {
	EventBase
	Node  *SearchNode `json:"-"`
	Depth int         `json:"depth"`
	Cost  float64     `json:"cost"`
}

// SearchEvent summarises a finished search.
type SearchEvent struct {
	EventBase
	Outcome   string        `json:"outcome"` // "goal", "no_plan", "limit", "canceled"
	Expanded  int           `json:"expanded"`
	Generated int           `json:"generated"`
	PlanCost  float64       `json:"plan_cost,omitempty"`
	PlanSteps int           `json:"plan_steps,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// SearchHooks defines callbacks for search observability.
// Nil callbacks are skipped.
type SearchHooks struct {
	OnExpand func(context.Context, *ExpandEvent)
	OnGoal   func(context.Context, *GoalEvent)
	OnDone   func(context.Context, *SearchEvent)
}

// Combine returns hooks that call h first and then other.
func (h SearchHooks) Combine(other SearchHooks) SearchHooks {
	return SearchHooks{
		OnExpand: func(ctx context.Context, e *ExpandEvent) {
			if h.OnExpand != nil {
				h.OnExpand(ctx, e)
			}
			if other.OnExpand != nil {
				other.OnExpand(ctx, e)
			}
		},
		OnGoal: func(ctx context.Context, e *GoalEvent) {
			if h.OnGoal != nil {
				h.OnGoal(ctx, e)
			}
			if other.OnGoal != nil {
				other.OnGoal(ctx, e)
			}
		},
		OnDone: func(ctx context.Context, e *SearchEvent) {
			if h.OnDone != nil {
				h.OnDone(ctx, e)
			}
			if other.OnDone != nil {
				other.OnDone(ctx, e)
			}
		},
	}
}
