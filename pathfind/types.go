// Package pathfind defines the option set, result type, and sentinel errors
// for shortest-path queries.
package pathfind

import (
	"errors"

	"github.com/jannef/RogueSharp/tilemap"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilMap indicates a nil *tilemap.Map was passed.
	ErrNilMap = errors.New("pathfind: map is nil")
	// ErrCellOutOfBounds indicates an endpoint outside the map.
	ErrCellOutOfBounds = errors.New("pathfind: endpoint outside the map")
	// ErrCellUnwalkable indicates an endpoint that is not walkable.
	ErrCellUnwalkable = errors.New("pathfind: endpoint is not walkable")
	// ErrNoPath indicates no walkable path connects the endpoints.
	ErrNoPath = errors.New("pathfind: no path between endpoints")
)

// Path is the result of a successful query: the cell sequence from the
// start endpoint to the goal endpoint, both inclusive.
type Path struct {
	// Cells holds the path in walk order; Cells[0] is the start cell and
	// Cells[len-1] the goal cell. A query with equal endpoints yields a
	// single-cell path.
	Cells []tilemap.Cell
}

// Length returns the number of steps on the path (cells minus one).
func (p Path) Length() int {
	if len(p.Cells) == 0 {
		return 0
	}

	return len(p.Cells) - 1
}

// Options configures a shortest-path query.
//
// Conn – adjacency rule used while walking (Conn4 or Conn8).
type Options struct {
	Conn tilemap.Connectivity
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithConnectivity sets the adjacency rule for the query.
func WithConnectivity(conn tilemap.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// DefaultOptions returns the default query configuration:
// Conn4 (orthogonal movement only).
func DefaultOptions() Options {
	return Options{Conn: tilemap.Conn4}
}
