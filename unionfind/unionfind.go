package unionfind

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates a negative entry count passed to New.
var ErrNegativeSize = errors.New("unionfind: size must be non-negative")

// UnionFind partitions the integers [0,n) into disjoint groups.
// The zero value is unusable; construct with New.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// New returns a UnionFind over n singleton groups {0}, {1}, …, {n-1}.
// Returns ErrNegativeSize if n < 0; n == 0 is a valid empty partition.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf, nil
}

// Find returns the root of the group containing i, compressing paths as it
// walks. Out-of-range indices are caller errors and panic.
func (uf *UnionFind) Find(i int) int {
	uf.check(i)
	for uf.parent[i] != i {
		// Point i at its grandparent; halves the path each visit.
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

// Union merges the groups containing i and j using union by rank.
// It reports whether a merge happened (false when already grouped).
func (uf *UnionFind) Union(i, j int) bool {
	ri, rj := uf.Find(i), uf.Find(j)
	if ri == rj {
		return false
	}
	if uf.rank[ri] < uf.rank[rj] {
		ri, rj = rj, ri
	}
	uf.parent[rj] = ri
	if uf.rank[ri] == uf.rank[rj] {
		uf.rank[ri]++
	}
	uf.count--

	return true
}

// Connected reports whether i and j are in the same group.
func (uf *UnionFind) Connected(i, j int) bool {
	return uf.Find(i) == uf.Find(j)
}

// Count returns the number of remaining distinct groups.
func (uf *UnionFind) Count() int {
	return uf.count
}

// check panics on an out-of-range index; indices come from region list
// positions, so a bad one is a programming error, not a runtime condition.
func (uf *UnionFind) check(i int) {
	if i < 0 || i >= len(uf.parent) {
		panic(fmt.Sprintf("unionfind: index %d out of range [0,%d)", i, len(uf.parent)))
	}
}
