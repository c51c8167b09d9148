package catalog

import (
	"fmt"
	"math"

	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
)

// maxGridPoints bounds the size of a generated grid.
const maxGridPoints = 10_000

// GridConfig describes a rectangular grid of candidate amounts.
type GridConfig struct {
	WaterStep      float64 `json:"water_step" yaml:"water_step" mapstructure:"water_step"`
	FertilizerStep float64 `json:"fertilizer_step" yaml:"fertilizer_step" mapstructure:"fertilizer_step"`
	MaxWater       float64 `json:"max_water" yaml:"max_water" mapstructure:"max_water"`
	MaxFertilizer  float64 `json:"max_fertilizer" yaml:"max_fertilizer" mapstructure:"max_fertilizer"`
}

// Grid generates every (water, fertilizer) pair on the grid, water-major,
// excluding the all-zero action.
type Grid struct {
	actions []domain.Action
}

var _ ports.ActionCatalog = (*Grid)(nil)

// NewGrid validates cfg and precomputes the grid.
// A zero step with a zero maximum collapses that axis to the single value 0.
func NewGrid(cfg GridConfig) (*Grid, error) {
	var issues []domain.Issue
	axis := func(name string, step, max float64) {
		switch {
		case math.IsNaN(max) || math.IsInf(max, 0) || max < 0:
			issues = append(issues, domain.Issue{Field: "grid.max_" + name, Reason: "must be a non-negative number"})
		case math.IsNaN(step) || math.IsInf(step, 0) || step < 0:
			issues = append(issues, domain.Issue{Field: "grid." + name + "_step", Reason: "must be a non-negative number"})
		case step == 0 && max > 0:
			issues = append(issues, domain.Issue{Field: "grid." + name + "_step", Reason: "must be positive when max is positive"})
		}
	}
	axis("water", cfg.WaterStep, cfg.MaxWater)
	axis("fertilizer", cfg.FertilizerStep, cfg.MaxFertilizer)
	if err := domain.NewConfigurationError(issues...); err != nil {
		return nil, err
	}

	// Counts are checked as floats so huge grids fail before anything is allocated.
	nw := axisPoints(cfg.WaterStep, cfg.MaxWater)
	nf := axisPoints(cfg.FertilizerStep, cfg.MaxFertilizer)
	if n := nw * nf; math.IsNaN(n) || n > maxGridPoints {
		return nil, domain.NewConfigurationError(domain.Issue{
			Field:  "grid",
			Reason: fmt.Sprintf("%g points exceed the limit of %d", n, maxGridPoints),
		})
	}
	waters := steps(cfg.WaterStep, int(nw))
	ferts := steps(cfg.FertilizerStep, int(nf))

	actions := make([]domain.Action, 0, len(waters)*len(ferts))
	for _, w := range waters {
		for _, f := range ferts {
			a := domain.Action{WaterAmount: w, FertilizerAmount: f}
			if a.IsNoop() {
				continue
			}
			actions = append(actions, a)
		}
	}
	return &Grid{actions: actions}, nil
}

// Actions returns a copy of the generated grid.
func (g *Grid) Actions() []domain.Action {
	return append([]domain.Action(nil), g.actions...)
}

// axisPoints counts the values 0, step, 2*step, ... up to max inclusive.
// The result may be +Inf for degenerate inputs.
func axisPoints(step, max float64) float64 {
	if step == 0 {
		return 1
	}
	return math.Floor(max/step+1e-9) + 1
}

// steps returns the first n multiples of step, starting at 0.
// Values are computed by multiplication and rounded to avoid drift.
func steps(step float64, n int) []float64 {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, math.Round(float64(i)*step*1e9)/1e9)
	}
	return out
}
