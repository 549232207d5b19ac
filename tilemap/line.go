package tilemap

// CellsAlongLine returns the cells on the straight line from (x1,y1) to
// (x2,y2), inclusive of both endpoints, using integer Bresenham stepping.
// The stepping order is deterministic: the first cell is always the
// (clamped) start, the last is always the (clamped) end. Endpoints outside
// the map are clamped onto it before walking, so the result is never empty.
// Complexity: O(max(|Δx|,|Δy|)) time.
func (m *Map) CellsAlongLine(x1, y1, x2, y2 int) []Cell {
	x1, y1 = m.clamp(x1, y1)
	x2, y2 = m.clamp(x2, y2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := step(x1, x2)
	sy := step(y1, y2)
	e := dx - dy

	var out []Cell
	for {
		out = append(out, m.cells[m.index(x1, y1)])
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}

	return out
}

// clamp forces (x,y) onto the nearest in-bounds coordinate.
func (m *Map) clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= m.width {
		x = m.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.height {
		y = m.height - 1
	}

	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// step returns the unit increment moving from a toward b (0 when equal).
func step(a, b int) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}
