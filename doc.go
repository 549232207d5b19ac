// Package roguesharp generates two-dimensional tile maps for tile-based
// games using pluggable creation strategies.
//
// 🚀 What is RogueSharp?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• tilemap  — the dense grid of cells (transparency + walkability),
//		  with neighborhood, line and serialization queries
//		• mapgen   — map creation strategies: cellular-automata caves with
//		  guaranteed connectivity, random rooms, border-only, and
//		  string-deserialized fixtures
//		• pathfind — shortest-path / reachability queries over a map
//		• unionfind — disjoint-set tracking used by connectivity repair
//		• random   — seedable random sources for reproducible generation
//
// ✨ Why choose it?
//
//   - Deterministic – identical seeds produce cell-for-cell identical maps
//   - Rock-solid guarantees – cave maps come out as a single walkable region
//   - Pure Go – no cgo, no hidden state, single-threaded by contract
//   - Extensible – implement mapgen.Strategy to plug in your own generator
//
// Start with mapgen.NewCaveStrategy for organic cave maps, or
// mapgen.NewRandomRoomsStrategy for classic rooms-and-corridors layouts.
// The cmd/mapview tool renders any strategy's output in a terminal.
package roguesharp
