package observability

import (
	"context"

	"github.com/aretw0/furrow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by search hooks.
type Metrics struct {
	Searches   *prometheus.CounterVec
	Expansions prometheus.Counter
	Generated  prometheus.Counter
	Branching  prometheus.Histogram
	Duration   prometheus.Histogram
	PlanSteps  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "furrow_searches_total",
				Help: "Total number of finished searches by outcome",
			},
			[]string{"outcome"},
		),
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "furrow_node_expansions_total",
			Help: "Total number of expanded search nodes",
		}),
		Generated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "furrow_nodes_generated_total",
			Help: "Total number of child nodes produced by expansions",
		}),
		Branching: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "furrow_expansion_children",
			Help:    "Number of valid children per expansion",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "furrow_search_duration_seconds",
			Help: "Duration of searches",
		}),
		PlanSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "furrow_plan_steps",
			Help:    "Length of the plans found",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Searches, m.Expansions, m.Generated, m.Branching, m.Duration, m.PlanSteps)
	}
	return m
}

// Hooks returns search hooks that record into m.
func (m *Metrics) Hooks() domain.SearchHooks {
	return domain.SearchHooks{
		OnExpand: func(_ context.Context, e *domain.ExpandEvent) {
			m.Expansions.Inc()
			m.Generated.Add(float64(e.Children))
			m.Branching.Observe(float64(e.Children))
		},
		OnDone: func(_ context.Context, e *domain.SearchEvent) {
			m.Searches.WithLabelValues(e.Outcome).Inc()
			m.Duration.Observe(e.Duration.Seconds())
			if e.Outcome == "goal" {
				m.PlanSteps.Observe(float64(e.PlanSteps))
			}
		},
	}
}
