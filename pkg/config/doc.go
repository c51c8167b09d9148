// Package config loads planning scenarios from YAML or JSON files.
//
// A scenario bundles everything furrow.New needs: the environment, the initial
// soil and nutrient levels, the optimal ranges, the cost priorities and an action
// catalog (either an explicit list or a grid). Optional sections tune the physics,
// the heuristic weights and the search budget.
package config
