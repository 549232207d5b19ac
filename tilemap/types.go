// Package tilemap defines core types and sentinel errors for the tile grid.
package tilemap

import (
	"errors"
)

// Sentinel errors for tilemap operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("tilemap: width and height must be positive")
	// ErrOutOfBounds indicates coordinates outside the map.
	ErrOutOfBounds = errors.New("tilemap: coordinates outside the map")
	// ErrEmptyMapRepresentation indicates Parse input with no rows or columns.
	ErrEmptyMapRepresentation = errors.New("tilemap: map representation must have at least one row and one column")
	// ErrRaggedMapRepresentation indicates Parse rows of differing lengths.
	ErrRaggedMapRepresentation = errors.New("tilemap: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune outside the ./s/o/# symbol set.
	ErrUnknownSymbol = errors.New("tilemap: unknown cell symbol")
)

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are the neighbor offset tables shared by all
// adjacency traversals.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// offsets returns the offset table for the requested connectivity.
// Complexity: O(1).
func offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Point identifies one grid position. It is comparable and therefore usable
// as a set or map key; two cells are "the same cell" exactly when their
// Points are equal.
type Point struct {
	X, Y int
}

// Cell is an immutable value snapshot of one map position: its coordinates
// and the two independent properties stored there at query time. Mutating a
// retrieved Cell has no effect on the map; use Map.SetCellProperties.
type Cell struct {
	X, Y        int  // Coordinates within the map
	Transparent bool // Light and vision pass through this cell
	Walkable    bool // An actor may occupy this cell
}

// Point returns the cell's position key.
func (c Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}
