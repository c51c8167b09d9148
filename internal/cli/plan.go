package cli

import (
	"context"
	"errors"
	"io"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/internal/dto"
	"github.com/aretw0/furrow/internal/presentation/graph"
	"github.com/aretw0/furrow/internal/presentation/tui"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/observability"
	"github.com/aretw0/furrow/pkg/search"
)

// PlanOptions configures the plan command.
type PlanOptions struct {
	ScenarioPath  string
	JSON          bool
	Mermaid       bool
	MaxExpansions int
	MaxDepth      int
	Debug         bool
	Out           io.Writer
}

// RunPlan searches for a plan and prints it.
// A search that ends without a plan is reported as an error.
func RunPlan(ctx context.Context, opts PlanOptions) error {
	out := stdout(opts.Out)
	logger := createLogger(opts.Debug)

	sc, err := loadScenario(logger, opts.ScenarioPath)
	if err != nil {
		return err
	}
	problem, err := sc.Build(
		furrow.WithLogger(logger),
		furrow.WithSearchHooks(observability.LogHooks(logger)),
	)
	if err != nil {
		return err
	}

	searchOpts := sc.SearchOptions()
	if opts.MaxExpansions > 0 {
		searchOpts = append(searchOpts, search.WithMaxExpansions(opts.MaxExpansions))
	}
	if opts.MaxDepth > 0 {
		searchOpts = append(searchOpts, search.WithMaxDepth(opts.MaxDepth))
	}

	res, err := problem.Plan(ctx, searchOpts...)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPlan), errors.Is(err, domain.ErrExpansionLimit):
			printSystemMessage(out, "No plan found after %d expansions.", res.Expanded)
		case errors.Is(err, context.Canceled):
			if sig := interruptedBy(ctx); sig != nil {
				printSystemMessage(out, "Interrupted by %s after %d expansions.", sig, res.Expanded)
			}
		}
		return err
	}

	switch {
	case opts.JSON:
		return writeJSON(out, dto.NewPlanResponse(res))
	case opts.Mermaid:
		path := res.Goal.Path()
		_, err := io.WriteString(out, graph.GenerateMermaid(path, problem.GoalTest, &graph.Overlay{PathNodes: path, Goal: res.Goal}))
		return err
	}
	return writeMarkdown(out, tui.PlanMarkdown(problem.Initial(), problem.Ranges(), res))
}
