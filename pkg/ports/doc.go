/*
Package ports defines the interfaces (Ports) of the Furrow planner's Hexagonal Architecture.

It contains the contracts that decouple the search core from the strategies and
drivers around it:

  - ActionCatalog: supplies the candidate actions (driven port).
  - SearchProblem: the operations a best-first search loop consumes (driving port).

Any type satisfying these interfaces can be plugged in, e.g. a fixed action list, a
generated grid, or a facade wrapping a different transition model.
*/
package ports
