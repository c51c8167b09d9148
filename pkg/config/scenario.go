package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/pkg/catalog"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
	"github.com/aretw0/furrow/pkg/search"
	"gopkg.in/yaml.v3"
)

// InitialState holds the controllable part of the starting FarmState.
// Accumulators are optional and default to zero.
type InitialState struct {
	SoilMoisture     float64 `json:"soil_moisture" yaml:"soil_moisture" mapstructure:"soil_moisture"`
	N                float64 `json:"N" yaml:"N" mapstructure:"N"`
	P                float64 `json:"P" yaml:"P" mapstructure:"P"`
	K                float64 `json:"K" yaml:"K" mapstructure:"K"`
	WaterUsed        float64 `json:"water_used,omitempty" yaml:"water_used,omitempty" mapstructure:"water_used"`
	FertilizerUsed   float64 `json:"fertilizer_used,omitempty" yaml:"fertilizer_used,omitempty" mapstructure:"fertilizer_used"`
	WaterRetained    float64 `json:"water_retained,omitempty" yaml:"water_retained,omitempty" mapstructure:"water_retained"`
	IrrigationEvents int     `json:"irrigation_events,omitempty" yaml:"irrigation_events,omitempty" mapstructure:"irrigation_events"`
}

// SearchConfig bounds the A* driver.
type SearchConfig struct {
	MaxExpansions int `json:"max_expansions,omitempty" yaml:"max_expansions,omitempty" mapstructure:"max_expansions"`
	MaxDepth      int `json:"max_depth,omitempty" yaml:"max_depth,omitempty" mapstructure:"max_depth"`
}

// RangeSpec maps a variable name to a [low, high] pair.
type RangeSpec map[string][]float64

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Environment      domain.Environment  `json:"environment" yaml:"environment" mapstructure:"environment"`
	Initial          InitialState        `json:"initial" yaml:"initial" mapstructure:"initial"`
	OptimalRanges    RangeSpec           `json:"optimal_ranges" yaml:"optimal_ranges" mapstructure:"optimal_ranges"`
	StageRanges      map[int]RangeSpec   `json:"stage_ranges,omitempty" yaml:"stage_ranges,omitempty" mapstructure:"stage_ranges"`
	Priorities       domain.Priorities   `json:"priorities" yaml:"priorities" mapstructure:"priorities"`
	Actions          []domain.Action     `json:"actions,omitempty" yaml:"actions,omitempty" mapstructure:"actions"`
	Grid             *catalog.GridConfig `json:"grid,omitempty" yaml:"grid,omitempty" mapstructure:"grid"`
	Physics          domain.Physics      `json:"physics" yaml:"physics" mapstructure:"physics"`
	HeuristicWeights map[string]float64  `json:"heuristic_weights,omitempty" yaml:"heuristic_weights,omitempty" mapstructure:"heuristic_weights"`
	Search           SearchConfig        `json:"search,omitempty" yaml:"search,omitempty" mapstructure:"search"`
}

// State assembles the initial FarmState.
func (s *Scenario) State() domain.FarmState {
	return domain.FarmState{
		SoilMoisture:     s.Initial.SoilMoisture,
		N:                s.Initial.N,
		P:                s.Initial.P,
		K:                s.Initial.K,
		Environment:      s.Environment,
		WaterUsed:        s.Initial.WaterUsed,
		FertilizerUsed:   s.Initial.FertilizerUsed,
		WaterRetained:    s.Initial.WaterRetained,
		IrrigationEvents: s.Initial.IrrigationEvents,
	}
}

// Catalog builds the action catalog. An explicit action list wins over a grid.
func (s *Scenario) Catalog() (ports.ActionCatalog, error) {
	if len(s.Actions) > 0 {
		var issues []domain.Issue
		for i, a := range s.Actions {
			if err := a.Validate(); err != nil {
				issues = append(issues, domain.Issue{Field: "actions[" + strconv.Itoa(i) + "]", Reason: err.Error()})
			}
		}
		if err := domain.NewConfigurationError(issues...); err != nil {
			return nil, err
		}
		return catalog.NewFixed(s.Actions...), nil
	}
	if s.Grid != nil {
		return catalog.NewGrid(*s.Grid)
	}
	return nil, domain.NewConfigurationError(domain.Issue{Field: "actions", Reason: "one of actions or grid is required"})
}

// Build validates the scenario and constructs the planning problem.
// Every problem found, here or in furrow.New, is reported in one ConfigurationError.
func (s *Scenario) Build(opts ...furrow.Option) (*furrow.Problem, error) {
	var issues []domain.Issue

	ranges, rangeIssues := s.OptimalRanges.toDomain("optimal_ranges")
	issues = append(issues, rangeIssues...)

	var stages map[int]domain.OptimalRanges
	if len(s.StageRanges) > 0 {
		stages = make(map[int]domain.OptimalRanges, len(s.StageRanges))
		for stage, spec := range s.StageRanges {
			r, stageIssues := spec.toDomain("stage_ranges." + strconv.Itoa(stage))
			issues = append(issues, stageIssues...)
			stages[stage] = r
		}
	}

	cat, err := s.Catalog()
	if err != nil {
		issues = append(issues, domain.ConfigurationIssues(err)...)
		// Placeholder so the remaining checks still run.
		cat = catalog.NewFixed()
	}

	base := []furrow.Option{furrow.WithPhysics(s.Physics)}
	if len(s.HeuristicWeights) > 0 {
		weights := make(map[domain.Variable]float64, len(s.HeuristicWeights))
		for k, v := range s.HeuristicWeights {
			weights[domain.Variable(k)] = v
		}
		base = append(base, furrow.WithHeuristicWeights(weights))
	}
	if stages != nil {
		base = append(base, furrow.WithStageRanges(stages))
	}
	if s.Search.MaxExpansions < 0 {
		issues = append(issues, domain.Issue{Field: "search.max_expansions", Reason: "must not be negative"})
	}
	if s.Search.MaxDepth < 0 {
		issues = append(issues, domain.Issue{Field: "search.max_depth", Reason: "must not be negative"})
	}

	problem, err := furrow.New(s.State(), ranges, s.Priorities, cat, append(base, opts...)...)
	if err != nil {
		issues = append(issues, domain.ConfigurationIssues(err)...)
	}
	if err := domain.NewConfigurationError(dedupe(issues)...); err != nil {
		return nil, err
	}
	return problem, nil
}

// SearchOptions translates the search section into driver options.
func (s *Scenario) SearchOptions() []search.Option {
	var opts []search.Option
	if s.Search.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(s.Search.MaxExpansions))
	}
	if s.Search.MaxDepth > 0 {
		opts = append(opts, search.WithMaxDepth(s.Search.MaxDepth))
	}
	return opts
}

// YAML encodes the scenario in the file format Load reads.
func (s *Scenario) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scenario: %w", err)
	}
	return data, nil
}

func (r RangeSpec) toDomain(prefix string) (domain.OptimalRanges, []domain.Issue) {
	var issues []domain.Issue
	out := make(domain.OptimalRanges, len(r))
	for name, bounds := range r {
		if len(bounds) != 2 {
			issues = append(issues, domain.Issue{
				Field:  prefix + "." + name,
				Reason: fmt.Sprintf("expected [low, high], got %d values", len(bounds)),
			})
			continue
		}
		out[domain.Variable(name)] = domain.Range{Low: bounds[0], High: bounds[1]}
	}
	return out, issues
}

// dedupe drops repeated issues and sorts them by field for stable output.
func dedupe(issues []domain.Issue) []domain.Issue {
	seen := make(map[domain.Issue]bool, len(issues))
	out := issues[:0]
	for _, issue := range issues {
		if seen[issue] {
			continue
		}
		seen[issue] = true
		out = append(out, issue)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
