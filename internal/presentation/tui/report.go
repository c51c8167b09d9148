package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/furrow/internal/dto"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/search"
)

// InspectMarkdown reports the core operations on the initial state and its children.
func InspectMarkdown(eval dto.Evaluation, ranges domain.OptimalRanges, children []dto.Child) string {
	var sb strings.Builder
	sb.WriteString("# Initial state\n\n")
	writeStateTable(&sb, eval.State, ranges)

	fmt.Fprintf(&sb, "\n- **Heuristic:** %.4f\n", eval.Heuristic)
	fmt.Fprintf(&sb, "- **Cost:** %.4f\n", eval.Cost)
	fmt.Fprintf(&sb, "- **Goal reached:** %v\n", eval.Goal)
	fmt.Fprintf(&sb, "- **Remaining water:** %.3f\n", eval.State.RemainingWater())

	sb.WriteString("\n## Actions\n\n")
	sb.WriteString("| # | Water | Fertilizer | Valid |\n|---|---|---|---|\n")
	valid := make(map[domain.Action]bool, len(eval.ValidActions))
	for _, a := range eval.ValidActions {
		valid[a] = true
	}
	for i, a := range eval.Actions {
		fmt.Fprintf(&sb, "| %d | %.3f | %.3f | %s |\n", i+1, a.WaterAmount, a.FertilizerAmount, yesNo(valid[a]))
	}

	sb.WriteString("\n## Expansion\n\n")
	if len(children) == 0 {
		sb.WriteString("_No valid action applies to the initial state._\n")
		return sb.String()
	}
	sb.WriteString("| Action | Moisture | N | P | K | g | h | f | Goal |\n|---|---|---|---|---|---|---|---|---|\n")
	for _, c := range children {
		s := c.State
		fmt.Fprintf(&sb, "| %s | %.3f | %.3f | %.3f | %.3f | %.3f | %.3f | %.3f | %s |\n",
			c.Action, s.SoilMoisture, s.N, s.P, s.K, c.G, c.Heuristic, c.F, yesNo(c.Goal))
	}
	return sb.String()
}

// PlanMarkdown reports a search result.
func PlanMarkdown(initial domain.FarmState, ranges domain.OptimalRanges, res *search.Result) string {
	var sb strings.Builder
	sb.WriteString("# Irrigation plan\n\n")

	if len(res.Plan) == 0 {
		sb.WriteString("The initial state is already within every optimal range. Nothing to do.\n")
	} else {
		sb.WriteString("| Step | Water | Fertilizer | Moisture | N | P | K | Cost |\n|---|---|---|---|---|---|---|---|\n")
		for i, step := range res.Plan {
			s := step.State
			fmt.Fprintf(&sb, "| %d | %.3f | %.3f | %.3f | %.3f | %.3f | %.3f | %.4f |\n",
				i+1, step.Action.WaterAmount, step.Action.FertilizerAmount,
				s.SoilMoisture, s.N, s.P, s.K, step.G)
		}
	}

	final := initial
	if n := len(res.Plan); n > 0 {
		final = res.Plan[n-1].State
	}
	sb.WriteString("\n## Final state\n\n")
	writeStateTable(&sb, final, ranges)

	fmt.Fprintf(&sb, "\n- **Total cost:** %.4f\n", res.Cost)
	fmt.Fprintf(&sb, "- **Water used:** %.3f of %.3f\n", final.WaterUsed, final.WaterAvailability)
	fmt.Fprintf(&sb, "- **Fertilizer used:** %.3f\n", final.FertilizerUsed)
	fmt.Fprintf(&sb, "- **Search:** %d expanded, %d generated in %s\n", res.Expanded, res.Generated, res.Duration)
	return sb.String()
}

func writeStateTable(sb *strings.Builder, s domain.FarmState, ranges domain.OptimalRanges) {
	sb.WriteString("| Variable | Value | Range | Status |\n|---|---|---|---|\n")
	for _, v := range domain.Variables {
		x, defined := s.Value(v)
		r, ranged := ranges[v]
		switch {
		case !ranged && !defined:
			continue
		case !defined:
			fmt.Fprintf(sb, "| %s | n/a | %s | ok |\n", v, r)
		case !ranged:
			fmt.Fprintf(sb, "| %s | %.3f | - | - |\n", v, x)
		default:
			status := "ok"
			if d := r.Deviation(x); d > 0 {
				status = fmt.Sprintf("off by %.3f", d)
			}
			fmt.Fprintf(sb, "| %s | %.3f | %s | %s |\n", v, x, r, status)
		}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
