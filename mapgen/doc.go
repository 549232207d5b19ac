// Package mapgen provides pluggable map creation strategies producing
// tilemap.Map grids for tile-based games.
//
// What:
//
//   - Strategy is the single entry point every generator implements:
//     CreateMap() (*tilemap.Map, error).
//   - CaveStrategy synthesizes organic caves with cellular automata, then
//     repairs connectivity so the result is one traversable region.
//   - RandomRoomsStrategy places non-overlapping rectangular rooms joined
//     by L-shaped corridors.
//   - BorderOnlyStrategy yields an open arena ringed by walls.
//   - StringDeserializeStrategy rebuilds a map from its text form.
//
// Why:
//
//   - Roguelike levels: caves for organic floors, rooms for classic floors.
//   - Reproducible content: every randomized strategy draws from a
//     random.Source, so a fixed seed replays the exact same map.
//   - Test fixtures: string deserialization builds precise scenarios.
//
// The cave pipeline (the interesting part):
//
//  1. Random fill — border cells forced to wall; each interior cell becomes
//     floor with FillProbability percent chance.
//  2. Erosion — TotalIterations cellular-automata passes over a cloned
//     buffer, so neighbor counts always read pre-iteration state. Early
//     passes (before CutoffOfBigAreaFill) both close crowded cells and seed
//     walls inside large open areas; later passes only close crowded cells.
//  3. Region discovery — maximal walkable regions found by a deterministic
//     scan backed by the pathfind reachability oracle.
//  4. Connectivity repair — a union-find partition over regions; straight
//     tunnels are carved between nearest unconnected regions until a single
//     group remains.
//
// Determinism: identical dimensions, options, and random sequences yield
// cell-for-cell identical maps. Strategies are single-threaded and hold
// exclusive ownership of the working map during CreateMap.
//
// Errors (sentinel):
//
//   - ErrInvalidDimensions: width or height not positive.
//   - ErrInvalidRoomSize:   room size bounds unusable for the map size.
package mapgen
