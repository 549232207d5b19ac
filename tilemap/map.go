package tilemap

// Map owns a dense width×height grid of cells, fixed at construction.
// Every coordinate in [0,width)×[0,height) has exactly one cell.
// A Map is not safe for concurrent mutation; generation is single-threaded
// by contract.
type Map struct {
	width, height int
	cells         []Cell // row-major: index = y*width + x
}

// New constructs an all-wall Map of the given dimensions (every cell starts
// non-transparent and non-walkable). Returns ErrInvalidDimensions if width
// or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Map{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.cells[y*width+x] = Cell{X: x, Y: y}
		}
	}

	return m, nil
}

// Width returns the horizontal cell count.
func (m *Map) Width() int { return m.width }

// Height returns the vertical cell count.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x,y) lies within the map boundaries.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// index maps (x,y) to a row-major index: y*width + x.
func (m *Map) index(x, y int) int {
	return y*m.width + x
}

// CellAt returns the cell snapshot at (x,y), or ErrOutOfBounds.
// Complexity: O(1).
func (m *Map) CellAt(x, y int) (Cell, error) {
	if !m.InBounds(x, y) {
		return Cell{}, ErrOutOfBounds
	}

	return m.cells[m.index(x, y)], nil
}

// SetCellProperties overwrites both properties of the cell at (x,y).
// This is the only mutation path; cell snapshots never write back.
// Returns ErrOutOfBounds for coordinates outside the map.
// Complexity: O(1).
func (m *Map) SetCellProperties(x, y int, transparent, walkable bool) error {
	if !m.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c := &m.cells[m.index(x, y)]
	c.Transparent = transparent
	c.Walkable = walkable

	return nil
}

// Clone returns an independent deep copy of the map. Mutations on either
// copy never affect the other; erosion passes rely on this for
// double-buffered neighbor reads.
// Complexity: O(W×H) time and memory.
func (m *Map) Clone() *Map {
	dup := &Map{
		width:  m.width,
		height: m.height,
		cells:  make([]Cell, len(m.cells)),
	}
	copy(dup.cells, m.cells)

	return dup
}

// AllCells returns snapshots of every cell in row-major order:
// (0,0), (1,0), … , (W-1,H-1). The order is deterministic and stable,
// which region discovery depends on.
// Complexity: O(W×H) time and memory.
func (m *Map) AllCells() []Cell {
	out := make([]Cell, len(m.cells))
	copy(out, m.cells)

	return out
}

// CellsInSquare returns all cells within Chebyshev distance radius of
// (x,y), clipped to the map, in row-major order. The center cell is
// included when it is in bounds.
// Complexity: O(r²) time.
func (m *Map) CellsInSquare(x, y, radius int) []Cell {
	var out []Cell
	for cy := y - radius; cy <= y+radius; cy++ {
		for cx := x - radius; cx <= x+radius; cx++ {
			if !m.InBounds(cx, cy) {
				continue
			}
			out = append(out, m.cells[m.index(cx, cy)])
		}
	}

	return out
}

// CellsInCircle returns all cells within Euclidean distance radius of
// (x,y), clipped to the map, in row-major order. The center cell is
// included when it is in bounds.
// Complexity: O(r²) time.
func (m *Map) CellsInCircle(x, y, radius int) []Cell {
	var out []Cell
	for cy := y - radius; cy <= y+radius; cy++ {
		for cx := x - radius; cx <= x+radius; cx++ {
			if !m.InBounds(cx, cy) {
				continue
			}
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			out = append(out, m.cells[m.index(cx, cy)])
		}
	}

	return out
}

// Neighbors returns the in-bounds cells adjacent to (x,y) under the given
// connectivity, in fixed offset-table order. The center cell is excluded.
// Complexity: O(1).
func (m *Map) Neighbors(x, y int, conn Connectivity) []Cell {
	table := offsets(conn)
	out := make([]Cell, 0, len(table))
	for _, d := range table {
		nx, ny := x+d[0], y+d[1]
		if !m.InBounds(nx, ny) {
			continue
		}
		out = append(out, m.cells[m.index(nx, ny)])
	}

	return out
}
