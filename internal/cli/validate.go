package cli

import (
	"io"

	"github.com/aretw0/furrow/internal/logging"
)

// RunValidate loads and builds the scenario at path, reporting every configuration issue.
func RunValidate(path string, out io.Writer) error {
	out = stdout(out)
	sc, err := loadScenario(logging.NewNop(), path)
	if err != nil {
		return err
	}
	problem, err := sc.Build()
	if err != nil {
		return err
	}

	name := path
	if name == "" {
		name = "demo scenario"
	}
	printSystemMessage(out, "%s is valid: %d actions, %d valid from the initial state.",
		name, len(problem.GetActions()), len(problem.GetValidActions(problem.Initial())))
	return nil
}
