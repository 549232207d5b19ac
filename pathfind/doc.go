// Package pathfind answers shortest-path and reachability queries over a
// tilemap.Map, treating walkable cells as traversable and everything else
// as impassable.
//
// What:
//
//   - ShortestPath runs an unweighted breadth-first search from one cell to
//     another and returns the discovered cell sequence as a Path.
//   - Connectivity is configurable (Conn4 orthogonal, Conn8 with diagonals)
//     via functional options; Conn4 is the default.
//
// Why:
//
//   - Region discovery in the cave generator asks only "is there a path?",
//     so the traversal rule lives here, in one place: change it and region
//     semantics follow without touching the generator.
//   - Game movement and AI can reuse the same query for actual paths.
//
// Complexity: O(W×H×d) time and O(W×H) memory per query, d = 4 or 8.
//
// Errors (sentinel):
//
//   - ErrNilMap:          the provided map pointer is nil.
//   - ErrCellOutOfBounds: an endpoint lies outside the map.
//   - ErrCellUnwalkable:  an endpoint is not a walkable cell.
//   - ErrNoPath:          no walkable path connects the endpoints.
package pathfind
