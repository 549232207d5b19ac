package pathfind

import (
	"fmt"

	"github.com/jannef/RogueSharp/tilemap"
)

// ShortestPath finds a minimum-step walkable path from one cell to another
// using breadth-first search. All steps cost one, so BFS order is distance
// order and the first arrival at the goal is a shortest path.
//
// Validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. Both endpoints must be in bounds (ErrCellOutOfBounds, wrapped with
//     the offending point).
//  3. Both endpoints must be walkable (ErrCellUnwalkable, wrapped).
//
// A query with from == to returns a single-cell path. When the goal is
// unreachable the result is ErrNoPath; callers using this as a pure
// reachability oracle need only test for that sentinel.
//
// Complexity: O(W×H×d) time, O(W×H) memory, d = 4 or 8.
func ShortestPath(m *tilemap.Map, from, to tilemap.Point, opts ...Option) (Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if m == nil {
		return Path{}, ErrNilMap
	}
	for _, p := range []tilemap.Point{from, to} {
		c, err := m.CellAt(p.X, p.Y)
		if err != nil {
			return Path{}, fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, p.X, p.Y)
		}
		if !c.Walkable {
			return Path{}, fmt.Errorf("%w: (%d,%d)", ErrCellUnwalkable, p.X, p.Y)
		}
	}

	w := &walker{
		m:       m,
		conn:    o.Conn,
		visited: make(map[tilemap.Point]bool),
		parent:  make(map[tilemap.Point]tilemap.Point),
	}

	if !w.search(from, to) {
		return Path{}, ErrNoPath
	}

	return Path{Cells: w.reconstruct(from, to)}, nil
}

// walker encapsulates mutable BFS state for one query.
type walker struct {
	m       *tilemap.Map
	conn    tilemap.Connectivity
	queue   []tilemap.Point
	visited map[tilemap.Point]bool
	parent  map[tilemap.Point]tilemap.Point
}

// search runs BFS from start and reports whether goal was reached.
func (w *walker) search(start, goal tilemap.Point) bool {
	w.visited[start] = true
	w.queue = append(w.queue, start)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		if cur == goal {
			return true
		}
		for _, nbr := range w.m.Neighbors(cur.X, cur.Y, w.conn) {
			if !nbr.Walkable {
				continue
			}
			np := nbr.Point()
			if w.visited[np] {
				continue
			}
			w.visited[np] = true
			w.parent[np] = cur
			w.queue = append(w.queue, np)
		}
	}

	return false
}

// reconstruct walks the parent links back from goal to start and returns
// the cell sequence in forward order.
func (w *walker) reconstruct(start, goal tilemap.Point) []tilemap.Cell {
	var rev []tilemap.Point
	for at := goal; ; at = w.parent[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}

	cells := make([]tilemap.Cell, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		c, _ := w.m.CellAt(rev[i].X, rev[i].Y)
		cells = append(cells, c)
	}

	return cells
}
