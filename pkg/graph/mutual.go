package graph

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Pair is an unordered pair of node IDs, stored as {smaller, bigger}.
type Pair [2]int

// NewPair() returns the Pair of the two IDs, in ascending order.
func NewPair(ID1, ID2 int) Pair {
	return Pair{min(ID1, ID2), max(ID1, ID2)}
}

// Compare() orders pairs by their first element, then by their second.
func (p Pair) Compare(other Pair) int {
	if c := cmp.Compare(p[0], other[0]); c != 0 {
		return c
	}
	return cmp.Compare(p[1], other[1])
}

/*
MutualPairs() returns the pairs of users that follow each other, sorted.

A pair {U, F} is mutual when U follows F, F is a user of the graph and F follows U.
Both directions produce the same Pair, so each pair is reported once.

A user that follows itself forms the mutual pair {U, U}.
*/
func MutualPairs(g Graph) []Pair {
	pairs := mapset.NewThreadUnsafeSet[Pair]()
	for nodeID, follows := range g {
		follows.Each(func(followID int) bool {
			if g.Follows(followID, nodeID) {
				pairs.Add(NewPair(nodeID, followID))
			}
			return false
		})
	}

	sorted := pairs.ToSlice()
	slices.SortFunc(sorted, Pair.Compare)
	return sorted
}

// MutualFollowers() returns the mutual pairs of the graph flattened into
// {small, large, small, large, ...}, sorted by the first element of each pair.
func MutualFollowers(g Graph) []int {
	pairs := MutualPairs(g)
	result := make([]int, 0, 2*len(pairs))
	for _, pair := range pairs {
		result = append(result, pair[0], pair[1])
	}
	return result
}
