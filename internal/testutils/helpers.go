package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/pkg/config"
	"github.com/stretchr/testify/require"
)

// DemoProblem builds the demo scenario after applying mutate (which may be nil).
// It fails the test immediately on error.
func DemoProblem(t *testing.T, mutate func(*config.Scenario), opts ...furrow.Option) *furrow.Problem {
	t.Helper()

	sc := config.Default()
	if mutate != nil {
		mutate(sc)
	}
	p, err := sc.Build(opts...)
	require.NoError(t, err, "Failed to build demo scenario")
	return p
}

// WriteScenario encodes sc as YAML into a temporary directory and returns the file path.
func WriteScenario(t *testing.T, sc *config.Scenario) string {
	t.Helper()

	data, err := sc.YAML()
	require.NoError(t, err, "Failed to encode scenario")

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644), "Failed to write scenario")
	return path
}
