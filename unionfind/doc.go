// Package unionfind implements an int-indexed disjoint-set (union-find)
// structure with path compression and union by rank.
//
// It tracks a partition of N labeled entries; entries are merged (never
// split) and the structure reports how many distinct groups remain. The
// cave connectivity-repair pass uses one instance per repair invocation,
// one entry per discovered region, and carves tunnels until Count()==1.
//
// Complexity: Find/Union/Connected run in amortized O(α(N)) — effectively
// constant; New and Count are O(N) and O(1).
package unionfind
