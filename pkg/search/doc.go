/*
Package search drives a ports.SearchProblem with a best-first (A*) loop.

The frontier is a min-heap on F = G + H with ties broken by insertion order, so a
search over the same problem always returns the same plan. States that differ only
by float noise share a fingerprint; a state is re-opened only when it is reached with
a strictly lower G.

	res, err := search.AStar(ctx, problem, search.WithMaxExpansions(500))
	if errors.Is(err, domain.ErrNoPlan) {
		// nothing in the catalog reaches the optimal ranges
	}
	for _, step := range res.Plan {
		fmt.Println(step.Action)
	}
*/
package search
