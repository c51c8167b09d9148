/*
Package domain contains the core domain models of the Furrow planner.

It defines the entities of the farm state space: the state itself, the actions that
move between states, the optimal ranges that define a goal and the weights that
price a plan. This package is kept pure and free of external dependencies like I/O,
following Hexagonal Architecture principles.

# Key Entities

  - FarmState: a snapshot of soil, nutrients, environment and resource usage.
  - Action: an irrigation/fertilization decision.
  - OptimalRanges: the inclusive target interval of each tracked variable.
  - Priorities: relative weights of water, fertilizer and irrigation frequency.
  - Physics: the parameters of the transition model.
  - SearchNode: a state with its accumulated cost (G) and priority (F).
*/
package domain
