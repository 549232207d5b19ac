// File: mapgen/regions_test.go
package mapgen

import (
	"testing"

	"github.com/jannef/RogueSharp/tilemap"
)

// mustParse builds a fixture map or fails the test.
func mustParse(t *testing.T, s string) *tilemap.Map {
	t.Helper()
	m, err := tilemap.Parse(s)
	if err != nil {
		t.Fatalf("fixture did not parse: %v", err)
	}

	return m
}

// TestWalkableRegions_AllWall: no walkable cells, no regions.
func TestWalkableRegions_AllWall(t *testing.T) {
	m, _ := tilemap.New(6, 6)

	regions, err := walkableRegions(m)
	if err != nil {
		t.Fatalf("walkableRegions failed: %v", err)
	}
	if len(regions) != 0 {
		t.Errorf("all-wall map has %d regions; want 0", len(regions))
	}
}

// TestWalkableRegions_SingleChamber: one open area is one region holding
// every floor cell, its representative is the first cell of the scan, and
// its bounding-box center is the chamber middle.
func TestWalkableRegions_SingleChamber(t *testing.T) {
	m := mustParse(t, `
		#####
		#...#
		#...#
		#...#
		#####`)

	regions, err := walkableRegions(m)
	if err != nil {
		t.Fatalf("walkableRegions failed: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("map has %d regions; want 1", len(regions))
	}
	r := regions[0]
	if r.cells.Size() != 9 {
		t.Errorf("region has %d cells; want 9", r.cells.Size())
	}
	if want := (tilemap.Point{X: 1, Y: 1}); r.rep != want {
		t.Errorf("representative = %v; want %v", r.rep, want)
	}
	if want := (tilemap.Point{X: 2, Y: 2}); r.box.center() != want {
		t.Errorf("box center = %v; want %v", r.box.center(), want)
	}
}

// TestWalkableRegions_TwoChambers: a sealed divider yields two regions in
// row-major discovery order.
func TestWalkableRegions_TwoChambers(t *testing.T) {
	m := mustParse(t, `
		#####
		#.#.#
		#####`)

	regions, err := walkableRegions(m)
	if err != nil {
		t.Fatalf("walkableRegions failed: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("map has %d regions; want 2", len(regions))
	}
	if want := (tilemap.Point{X: 1, Y: 1}); regions[0].rep != want {
		t.Errorf("first region representative = %v; want %v", regions[0].rep, want)
	}
	if want := (tilemap.Point{X: 3, Y: 1}); regions[1].rep != want {
		t.Errorf("second region representative = %v; want %v", regions[1].rep, want)
	}
}

// TestWalkableRegions_DiagonalAdjacency: diagonal neighbors count as
// connected, so a diagonal stair of floor cells is one region. This is
// what keeps repaired tunnels from re-splitting during analysis.
func TestWalkableRegions_DiagonalAdjacency(t *testing.T) {
	m := mustParse(t, `
		####
		#.##
		##.#
		####`)

	regions, err := walkableRegions(m)
	if err != nil {
		t.Fatalf("walkableRegions failed: %v", err)
	}
	if len(regions) != 1 {
		t.Errorf("diagonal cells split into %d regions; want 1", len(regions))
	}
}

// TestWalkableRegions_Idempotent: analysis never mutates the map, so
// repeating it reproduces the same partition.
func TestWalkableRegions_Idempotent(t *testing.T) {
	m := mustParse(t, `
		#######
		#..#..#
		#..#..#
		#######`)

	first, err := walkableRegions(m)
	if err != nil {
		t.Fatalf("first analysis failed: %v", err)
	}
	second, err := walkableRegions(m)
	if err != nil {
		t.Fatalf("second analysis failed: %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("analyses found %d and %d regions; want 2 and 2", len(first), len(second))
	}
	for i := range first {
		if first[i].rep != second[i].rep {
			t.Errorf("region %d representative drifted: %v vs %v", i, first[i].rep, second[i].rep)
		}
		if first[i].cells.Size() != second[i].cells.Size() {
			t.Errorf("region %d size drifted: %d vs %d", i, first[i].cells.Size(), second[i].cells.Size())
		}
	}
}

// TestBounds_GrowAndCenter pins the grow-only box arithmetic, including
// the round-down midpoint used for tunnel endpoints.
func TestBounds_GrowAndCenter(t *testing.T) {
	b := bounds{minX: 3, minY: 3, maxX: 3, maxY: 3}
	b.grow(tilemap.Point{X: 6, Y: 2})
	b.grow(tilemap.Point{X: 4, Y: 8})

	if b.minX != 3 || b.maxX != 6 || b.minY != 2 || b.maxY != 8 {
		t.Fatalf("box = %+v; want min (3,2) max (6,8)", b)
	}
	if want := (tilemap.Point{X: 4, Y: 5}); b.center() != want {
		t.Errorf("center = %v; want %v (round down)", b.center(), want)
	}
}
