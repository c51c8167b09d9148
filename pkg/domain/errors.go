package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration matches any *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidAction matches any *InvalidActionError via errors.Is.
	ErrInvalidAction = errors.New("invalid action")

	// ErrNoPlan is returned when the search frontier is exhausted without reaching a goal.
	ErrNoPlan = errors.New("no plan reaches the optimal ranges")

	// ErrExpansionLimit is returned when the search gives up after its expansion budget.
	ErrExpansionLimit = errors.New("expansion limit reached")
)

// Issue is a single configuration failure.
type Issue struct {
	Field  string // Dotted path, e.g. "priorities.water_priority"
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Reason)
}

// ConfigurationError reports missing or invalid construction parameters.
// It is fatal and never retried.
type ConfigurationError struct {
	Issues []Issue
}

// NewConfigurationError builds an error from the given issues, or returns nil if there are none.
func NewConfigurationError(issues ...Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &ConfigurationError{Issues: issues}
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("configuration error: %s", e.Issues[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d configuration errors:\n", len(e.Issues))
	for i, issue := range e.Issues {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, issue)
	}
	return sb.String()
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidActionError reports an action that violates a hard physical bound.
type InvalidActionError struct {
	Action Action
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action (%s): %s", e.Action, e.Reason)
}

func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}

// ConfigurationIssues returns the issues carried by err, if it is a configuration error.
func ConfigurationIssues(err error) []Issue {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Issues
	}
	return nil
}
