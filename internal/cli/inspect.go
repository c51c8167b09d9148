package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/internal/dto"
	"github.com/aretw0/furrow/internal/presentation/graph"
	"github.com/aretw0/furrow/internal/presentation/tui"
	"github.com/aretw0/furrow/pkg/domain"
)

// InspectOptions configures the inspect command.
type InspectOptions struct {
	ScenarioPath string
	JSON         bool
	Mermaid      bool
	Debug        bool
	Out          io.Writer
}

// InspectReport is the JSON form of the inspect output.
type InspectReport struct {
	Evaluation dto.Evaluation `json:"evaluation"`
	Children   []dto.Child    `json:"children"`
}

// RunInspect runs every core operation once on the initial state and prints the result.
func RunInspect(opts InspectOptions) error {
	out := stdout(opts.Out)
	logger := createLogger(opts.Debug)

	sc, err := loadScenario(logger, opts.ScenarioPath)
	if err != nil {
		return err
	}
	problem, err := sc.Build(furrow.WithLogger(logger))
	if err != nil {
		return err
	}

	root := problem.Root()
	nodes := problem.ExpandNode(root)
	report := InspectReport{
		Evaluation: dto.NewEvaluation(problem),
		Children:   dto.NewChildren(problem, nodes),
	}

	// Exercise ApplyAction directly on the first candidate, as a caller stepping by hand would.
	if actions := problem.GetActions(); len(actions) > 0 {
		next, err := problem.ApplyAction(root.State, actions[0])
		if err != nil {
			return fmt.Errorf("apply %s: %w", actions[0], err)
		}
		logger.Debug("applied first action", "action", actions[0].String(), "diff", domain.Diff(root.State, next))
	}

	switch {
	case opts.JSON:
		return writeJSON(out, report)
	case opts.Mermaid:
		_, err := io.WriteString(out, graph.GenerateMermaid(append([]*domain.SearchNode{root}, nodes...), problem.GoalTest, nil))
		return err
	}
	return writeMarkdown(out, tui.InspectMarkdown(report.Evaluation, problem.Ranges(), report.Children))
}
