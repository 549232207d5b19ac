package mapgen

import (
	"math"

	"github.com/jannef/RogueSharp/tilemap"
	"github.com/jannef/RogueSharp/unionfind"
)

// connectRegions mutates m in place, carving straight-line tunnels between
// nearest unconnected regions until the partition collapses to one group.
// With zero or one region the loop body never runs.
//
// Nearest selection measures between bounding-box centers, but tunnels run
// between the regions' anchors: each anchor is a cell of its region, so
// every carved tunnel is a contiguous floor line from a cell of i to a
// cell of j and every Union records a merge that physically happened on
// the map. Carving only adds floor, so earlier merges survive later ones;
// when the partition reaches one group the map is one walkable region.
//
// The outer loop re-scans all region indices every pass instead of doing a
// single greedy spanning pass: after each union, previously unconnected
// pairs may have become connected, and the re-scan guarantees convergence
// without redundant tunnels. Every pass with more than one group performs
// at least one union, so the loop terminates after at most len(regions)-1
// merges.
func connectRegions(m *tilemap.Map, regions []*region) {
	uf, err := unionfind.New(len(regions))
	if err != nil {
		// len(regions) is never negative.
		panic(err)
	}

	anchors := make([]tilemap.Point, len(regions))
	for i, r := range regions {
		anchors[i] = r.anchor()
	}

	for uf.Count() > 1 {
		for i := range regions {
			j := nearestUnconnected(uf, regions, i)
			if j < 0 {
				continue // already linked to every other region
			}
			carveTunnel(m, anchors[i], anchors[j])
			uf.Union(i, j)
		}
	}
}

// nearestUnconnected returns the index of the region closest to i among
// those not yet connected to it in the partition, measuring Manhattan
// distance between bounding-box centers. Ties break to the lowest index
// (first encountered in scan order). Returns -1 when i is connected to
// every other region.
func nearestUnconnected(uf *unionfind.UnionFind, regions []*region, i int) int {
	best, bestDist := -1, math.MaxInt
	ci := regions[i].box.center()
	for j := range regions {
		if j == i || uf.Connected(i, j) {
			continue
		}
		cj := regions[j].box.center()
		d := manhattan(ci, cj)
		if d < bestDist {
			best, bestDist = j, d
		}
	}

	return best
}

// manhattan returns |Δx| + |Δy| between two points.
func manhattan(a, b tilemap.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// carveTunnel forces every cell on the straight line between a and b to
// floor. Coinciding endpoints degenerate to carving the single shared
// cell. Whenever the line steps diagonally (both coordinates change from
// the previous carved cell), the cell at (x+1,y) of the current step is
// carved too, so diagonal segments remain walkable under 4-directional
// movement rules; the widening is skipped on the last column instead of
// indexing out of bounds.
func carveTunnel(m *tilemap.Map, a, b tilemap.Point) {
	var prev tilemap.Point
	for idx, c := range m.CellsAlongLine(a.X, a.Y, b.X, b.Y) {
		_ = m.SetCellProperties(c.X, c.Y, true, true)
		if idx > 0 && c.X != prev.X && c.Y != prev.Y && m.InBounds(c.X+1, c.Y) {
			_ = m.SetCellProperties(c.X+1, c.Y, true, true)
		}
		prev = c.Point()
	}
}
