package ports

import "github.com/aretw0/furrow/pkg/domain"

// ActionCatalog supplies the candidate actions of a planning episode.
// Implementations must be deterministic: the same catalog always returns the
// same actions in the same order.
type ActionCatalog interface {
	// Actions returns the full candidate set. Callers may modify the returned slice.
	Actions() []domain.Action
}
