package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/furrow/pkg/domain"
)

// LogHooks returns search hooks that write each event to logger.
// Expansions are logged at debug level, goals and outcomes at info.
func LogHooks(logger *slog.Logger) domain.SearchHooks {
	return domain.SearchHooks{
		OnExpand: func(ctx context.Context, e *domain.ExpandEvent) {
			logger.DebugContext(ctx, "node_expand",
				"depth", e.Depth,
				"g", e.G,
				"f", e.F,
				"children", e.Children,
			)
		},
		OnGoal: func(ctx context.Context, e *domain.GoalEvent) {
			logger.InfoContext(ctx, string(e.Type), "depth", e.Depth, "cost", e.Cost)
		},
		OnDone: func(ctx context.Context, e *domain.SearchEvent) {
			logger.InfoContext(ctx, "search_done",
				"outcome", e.Outcome,
				"expanded", e.Expanded,
				"generated", e.Generated,
				"duration", e.Duration,
			)
		},
	}
}
