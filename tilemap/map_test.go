// File: tilemap/map_test.go
package tilemap

import (
	"errors"
	"testing"
)

// TestNew_InvalidDimensions ensures construction fails fast on non-positive
// sizes instead of producing a corrupt grid.
func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d,%d): got %v; want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

// TestNew_StartsAllWall verifies every coordinate holds exactly one cell,
// initialized non-transparent and non-walkable.
func TestNew_StartsAllWall(t *testing.T) {
	m, err := New(4, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cells := m.AllCells()
	if len(cells) != 12 {
		t.Fatalf("AllCells returned %d cells; want 12", len(cells))
	}
	for i, c := range cells {
		wantX, wantY := i%4, i/4
		if c.X != wantX || c.Y != wantY {
			t.Errorf("cell %d at (%d,%d); want (%d,%d): row-major order broken", i, c.X, c.Y, wantX, wantY)
		}
		if c.Transparent || c.Walkable {
			t.Errorf("cell (%d,%d) not initialized as wall", c.X, c.Y)
		}
	}
}

// TestSetCellProperties_Snapshots verifies mutation goes through the map
// only: retrieved cells are value snapshots and never write back.
func TestSetCellProperties_Snapshots(t *testing.T) {
	m, _ := New(5, 5)
	if err := m.SetCellProperties(2, 3, true, true); err != nil {
		t.Fatalf("SetCellProperties failed: %v", err)
	}

	c, err := m.CellAt(2, 3)
	if err != nil {
		t.Fatalf("CellAt failed: %v", err)
	}
	if !c.Transparent || !c.Walkable {
		t.Errorf("cell (2,3) = %+v; want transparent walkable", c)
	}

	// Mutating the snapshot must not touch the map.
	c.Walkable = false
	again, _ := m.CellAt(2, 3)
	if !again.Walkable {
		t.Error("snapshot mutation leaked into the map")
	}

	if err = m.SetCellProperties(5, 0, true, true); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-bounds set: got %v; want ErrOutOfBounds", err)
	}
	if _, err = m.CellAt(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-bounds get: got %v; want ErrOutOfBounds", err)
	}
}

// TestClone_Independent verifies deep copies: mutations on either side
// never alias the other, which double-buffered erosion depends on.
func TestClone_Independent(t *testing.T) {
	orig, _ := New(3, 3)
	_ = orig.SetCellProperties(1, 1, true, true)

	dup := orig.Clone()
	_ = dup.SetCellProperties(0, 0, true, true)
	_ = orig.SetCellProperties(2, 2, true, true)

	if c, _ := orig.CellAt(0, 0); c.Walkable {
		t.Error("clone mutation leaked into original")
	}
	if c, _ := dup.CellAt(2, 2); c.Walkable {
		t.Error("original mutation leaked into clone")
	}
	if c, _ := dup.CellAt(1, 1); !c.Walkable {
		t.Error("clone lost pre-clone state")
	}
}

// TestCellsInSquare exercises the Chebyshev neighborhood: full interior
// squares, clipping at corners, and row-major ordering.
func TestCellsInSquare(t *testing.T) {
	m, _ := New(5, 5)

	center := m.CellsInSquare(2, 2, 1)
	if len(center) != 9 {
		t.Fatalf("radius-1 square at center: %d cells; want 9", len(center))
	}
	if first := center[0]; first.X != 1 || first.Y != 1 {
		t.Errorf("first cell (%d,%d); want (1,1): row-major order broken", first.X, first.Y)
	}

	corner := m.CellsInSquare(0, 0, 1)
	if len(corner) != 4 {
		t.Errorf("radius-1 square at corner: %d cells; want 4 (clipped)", len(corner))
	}

	clipped := m.CellsInSquare(1, 1, 2)
	if len(clipped) != 16 {
		t.Errorf("radius-2 square at (1,1): %d cells; want 16 (clipped)", len(clipped))
	}
}

// TestCellsInCircle exercises the Euclidean neighborhood: a radius-1
// circle is the orthogonal diamond, a radius-2 circle keeps the unit
// diagonals but drops the (±2,±1) knights-move cells.
func TestCellsInCircle(t *testing.T) {
	m, _ := New(5, 5)

	if got := len(m.CellsInCircle(2, 2, 1)); got != 5 {
		t.Errorf("radius-1 circle: %d cells; want 5", got)
	}
	if got := len(m.CellsInCircle(2, 2, 2)); got != 13 {
		t.Errorf("radius-2 circle: %d cells; want 13", got)
	}
}

// TestNeighbors checks adjacency counts under both connectivity rules and
// that the center cell is excluded.
func TestNeighbors(t *testing.T) {
	m, _ := New(4, 4)

	if got := len(m.Neighbors(1, 1, Conn4)); got != 4 {
		t.Errorf("Conn4 neighbors at interior: %d; want 4", got)
	}
	if got := len(m.Neighbors(1, 1, Conn8)); got != 8 {
		t.Errorf("Conn8 neighbors at interior: %d; want 8", got)
	}
	if got := len(m.Neighbors(0, 0, Conn8)); got != 3 {
		t.Errorf("Conn8 neighbors at corner: %d; want 3 (clipped)", got)
	}
	for _, c := range m.Neighbors(1, 1, Conn8) {
		if c.X == 1 && c.Y == 1 {
			t.Error("Neighbors returned the center cell")
		}
	}
}
