package catalog

import (
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/ports"
)

// Fixed is a catalog backed by an explicit list of actions.
type Fixed struct {
	actions []domain.Action
}

var _ ports.ActionCatalog = (*Fixed)(nil)

// NewFixed creates a catalog from the given actions, preserving their order.
func NewFixed(actions ...domain.Action) *Fixed {
	return &Fixed{actions: append([]domain.Action(nil), actions...)}
}

// Actions returns a copy of the configured list.
func (f *Fixed) Actions() []domain.Action {
	return append([]domain.Action(nil), f.actions...)
}

// Len returns the number of configured actions.
func (f *Fixed) Len() int {
	return len(f.actions)
}
