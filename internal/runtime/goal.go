package runtime

import "github.com/aretw0/furrow/pkg/domain"

// GoalTest decides whether a state lies inside every optimal range.
type GoalTest struct {
	ranges domain.OptimalRanges
}

// NewGoalTest creates a goal test over the given ranges.
func NewGoalTest(ranges domain.OptimalRanges) *GoalTest {
	return &GoalTest{ranges: ranges.Clone()}
}

// Satisfied reports whether every configured variable is within its inclusive range.
// An undefined WUE (no water used yet) does not violate its range.
func (g *GoalTest) Satisfied(state domain.FarmState) bool {
	for v, r := range g.ranges {
		x, ok := state.Value(v)
		if !ok {
			continue
		}
		if !r.Contains(x) {
			return false
		}
	}
	return true
}
