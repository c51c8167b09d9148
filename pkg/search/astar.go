package search

import (
	"container/heap"
	"context"
	"time"

	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
)

// Step is one action of a plan together with the state it produces.
type Step struct {
	Action domain.Action     `json:"action"`
	State  domain.FarmState  `json:"state"`
	G      float64           `json:"g"`
	F      float64           `json:"f"`
	Diff   *domain.StateDiff `json:"diff,omitempty"`
}

// Result describes a finished search.
// On failure it still reports the counters of the run.
type Result struct {
	Goal      *domain.SearchNode `json:"-"`
	Plan      []Step             `json:"plan"`
	Cost      float64            `json:"cost"`
	Expanded  int                `json:"expanded"`
	Generated int                `json:"generated"`
	Duration  time.Duration      `json:"duration"`
}

// AStar runs a best-first search from problem.Root() until a goal is popped.
//
// Errors: domain.ErrNoPlan when the frontier empties, domain.ErrExpansionLimit when
// the budget is spent, or the context's error when ctx is done.
func AStar(ctx context.Context, problem ports.SearchProblem, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	start := time.Now()
	res := &Result{}

	root := problem.Root()
	open := &frontier{}
	heap.Init(open)
	bestG := map[fingerprint]float64{fingerprintOf(root.State): root.G}
	seq := 0
	heap.Push(open, &item{node: root, seq: seq})

	finish := func(outcome string, err error) (*Result, error) {
		res.Duration = time.Since(start)
		event := &domain.SearchEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSearchDone},
			Outcome:   outcome,
			Expanded:  res.Expanded,
			Generated: res.Generated,
			PlanCost:  res.Cost,
			PlanSteps: len(res.Plan),
			Duration:  res.Duration,
		}
		if o.hooks.OnDone != nil {
			o.hooks.OnDone(ctx, event)
		}
		o.logger.Debug("search finished",
			"outcome", outcome,
			"expanded", res.Expanded,
			"generated", res.Generated,
			"steps", len(res.Plan),
			"duration", res.Duration,
		)
		return res, err
	}

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return finish("canceled", err)
		}

		current := heap.Pop(open).(*item).node

		// Skip entries superseded by a cheaper path to the same state.
		if g, ok := bestG[fingerprintOf(current.State)]; ok && current.G > g {
			continue
		}

		if problem.GoalTest(current.State) {
			res.Goal = current
			res.Cost = current.G
			res.Plan = buildPlan(current)
			if o.hooks.OnGoal != nil {
				o.hooks.OnGoal(ctx, &domain.GoalEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGoalReached},
					Node:      current,
					Depth:     current.Depth,
					Cost:      current.G,
				})
			}
			return finish("goal", nil)
		}

		if o.maxDepth > 0 && current.Depth >= o.maxDepth {
			continue
		}
		if res.Expanded >= o.maxExpansions {
			return finish("limit", domain.ErrExpansionLimit)
		}

		children := problem.ExpandNode(current)
		res.Expanded++
		if o.hooks.OnExpand != nil {
			o.hooks.OnExpand(ctx, &domain.ExpandEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeExpand},
				Depth:     current.Depth,
				G:         current.G,
				F:         current.F,
				Children:  len(children),
			})
		}

		for _, child := range children {
			key := fingerprintOf(child.State)
			if g, ok := bestG[key]; ok && child.G >= g {
				continue
			}
			bestG[key] = child.G
			seq++
			heap.Push(open, &item{node: child, seq: seq})
			res.Generated++
		}
	}

	return finish("no_plan", domain.ErrNoPlan)
}

// buildPlan walks the parent links from goal back to the root.
func buildPlan(goal *domain.SearchNode) []Step {
	path := goal.Path()
	plan := make([]Step, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		n := path[i]
		plan = append(plan, Step{
			Action: *n.Action,
			State:  n.State,
			G:      n.G,
			F:      n.F,
			Diff:   domain.Diff(path[i-1].State, n.State),
		})
	}
	return plan
}
