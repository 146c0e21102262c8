// Package gridgraph treats a rectangular grid of integer values as an
// implicit graph whose neighbours are computed rather than stored.
//
// What:
//
//   - Grid wraps a rectangular [][]int; Values[y][x] is the value at Point{x, y}.
//   - A fixed compass move set: Conn4 = N, E, S, W; Conn8 adds NE, SE, SW, NW.
//     East is (+1, 0) and North is (0, +1).
//   - Grid.Moves(p) filters that set to in-bounds targets, in fixed order.
//   - ToGraph materialises passable cells as a *core.Graph with locations.
//
// Complexity:
//
//   - NewGrid: O(W×H), Moves/Neighbors: O(d), ToGraph: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Value called outside the grid.
//   - ErrUnknownMove: ParseMove got a name outside the compass set.
package gridgraph
