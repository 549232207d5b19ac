package mapgen

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/jannef/RogueSharp/pathfind"
	"github.com/jannef/RogueSharp/tilemap"
)

// region is one maximal set of mutually path-reachable walkable cells.
// Regions are call-scoped: discovered fresh for each repair invocation and
// discarded once the map is fully connected. They own their cell set and a
// derived bounding box; no live map reference is retained.
type region struct {
	cells mapset.Set[tilemap.Point]
	rep   tilemap.Point // first cell discovered; oracle representative
	box   bounds
}

// bounds is a grow-only bounding rectangle over region cells.
type bounds struct {
	minX, minY, maxX, maxY int
}

// grow widens the rectangle to include p. It never shrinks.
func (b *bounds) grow(p tilemap.Point) {
	if p.X < b.minX {
		b.minX = p.X
	}
	if p.X > b.maxX {
		b.maxX = p.X
	}
	if p.Y < b.minY {
		b.minY = p.Y
	}
	if p.Y > b.maxY {
		b.maxY = p.Y
	}
}

// center returns the rectangle's midpoint, rounding down.
func (b bounds) center() tilemap.Point {
	return tilemap.Point{X: (b.minX + b.maxX) / 2, Y: (b.minY + b.maxY) / 2}
}

// newRegion starts a region containing only p.
func newRegion(p tilemap.Point) *region {
	r := &region{
		cells: mapset.New[tilemap.Point](),
		rep:   p,
		box:   bounds{minX: p.X, minY: p.Y, maxX: p.X, maxY: p.Y},
	}
	r.cells.Put(p)

	return r
}

// add places p in the region and widens the bounding box.
func (r *region) add(p tilemap.Point) {
	r.cells.Put(p)
	r.box.grow(p)
}

// anchor returns the region cell nearest the bounding-box center, the
// tunnel endpoint used by connectivity repair. The box center itself can
// fall outside a concave region (even inside another region), so carving
// from it would not guarantee the tunnel touches this region; the anchor
// always does. Ties break to the lowest Y then X, so set iteration order
// never affects the result.
func (r *region) anchor() tilemap.Point {
	c := r.box.center()
	best := r.rep
	bestDist := manhattan(best, c)
	r.cells.Each(func(p tilemap.Point) {
		d := manhattan(p, c)
		if d < bestDist || (d == bestDist && (p.Y < best.Y || (p.Y == best.Y && p.X < best.X))) {
			best, bestDist = p, d
		}
	})

	return best
}

// walkableRegions discovers the maximal walkable-connected regions of m,
// ordered by first cell encountered in a row-major scan of all cells.
//
// Membership is deliberately path-based rather than an adjacency flood
// fill: a cell joins the first existing region whose representative the
// pathfind oracle can reach from it, on the very map being analyzed. The
// region semantics therefore track whatever traversal rule the oracle
// enforces; diagonal adjacency is traversable here (Conn8) so the diagonal
// tunnel segments carved by connectivity repair land in one region.
//
// An all-wall map yields an empty list; a fully connected map yields
// exactly one region. Complexity: worst case O(W×H × regions) oracle
// queries; region counts after erosion are small relative to cell count.
func walkableRegions(m *tilemap.Map) ([]*region, error) {
	var regions []*region
	for _, c := range m.AllCells() {
		if !c.Walkable {
			continue
		}
		p := c.Point()
		assigned := false
		for _, r := range regions {
			_, err := pathfind.ShortestPath(m, p, r.rep,
				pathfind.WithConnectivity(tilemap.Conn8))
			if err == nil {
				r.add(p)
				assigned = true
				break
			}
			if !errors.Is(err, pathfind.ErrNoPath) {
				// Misbehaving collaborator; propagate, never mask.
				return nil, err
			}
		}
		if !assigned {
			regions = append(regions, newRegion(p))
		}
	}

	return regions, nil
}
