// Package tilemap provides the dense 2D grid of cells that every map
// creation strategy produces and every query layer consumes.
//
// What:
//
//   - Map owns a fixed width×height grid; each cell carries two independent
//     booleans: Transparent (light/vision passes) and Walkable (an actor may
//     occupy it).
//   - Cells returned by queries are immutable value snapshots; mutation goes
//     through Map.SetCellProperties only.
//   - Query forms: all cells (row-major), Chebyshev/Euclidean neighborhoods,
//     Conn4/Conn8 adjacency, and straight lines between two points.
//   - Parse/String round-trip maps through a four-symbol text form.
//
// Why:
//
//   - Cave synthesis: double-buffered cellular-automata steps need cheap,
//     independent clones (Clone).
//   - Connectivity repair: tunnel carving needs deterministic line stepping
//     (CellsAlongLine).
//   - Test fixtures: Parse builds exact maps from readable string literals.
//
// Complexity:
//
//   - New/Clone/AllCells/String/Parse: O(W×H) time and memory.
//   - CellsInSquare/CellsInCircle:     O(r²) time.
//   - CellsAlongLine:                  O(max(|Δx|,|Δy|)) time.
//   - CellAt/SetCellProperties/InBounds/Neighbors: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height not positive.
//   - ErrOutOfBounds: coordinates outside [0,W)×[0,H).
//   - ErrEmptyMapRepresentation: Parse input has no rows or no columns.
//   - ErrRaggedMapRepresentation: Parse rows differ in length.
//   - ErrUnknownSymbol: Parse met a rune outside the symbol set.
package tilemap
