package graph

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

/*
NthLevelFollowers() returns the sorted IDs of the nodes whose shortest distance
from findID along follow edges is exactly n.

It performs a level-synchronized breadth-first search. Each node is visited
once, so a node reachable by several paths is reported only at the level where
it is first reached. Nodes found at level n are collected and not expanded further.

The search stops after n levels or as soon as the frontier is empty. If findID
is not in the graph, or no node sits at distance n, the result is empty.
Level 0 is empty by definition; a negative level returns ErrNegativeLevel.
*/
func NthLevelFollowers(g Graph, findID int, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLevel, n)
	}

	found := []int{}
	if n == 0 {
		return found, nil
	}

	visited := mapset.NewThreadUnsafeSet(findID)
	frontier := []int{findID}

	for level := 0; level < n && len(frontier) > 0; level++ {
		isLast := level == n-1
		next := make([]int, 0, len(frontier))

		for _, nodeID := range frontier {
			follows, exists := g[nodeID]
			if !exists {
				continue
			}

			follows.Each(func(followID int) bool {
				if !visited.Add(followID) {
					return false
				}

				if isLast {
					found = append(found, followID)
				} else {
					next = append(next, followID)
				}
				return false
			})
		}

		frontier = next
	}

	slices.Sort(found)
	return found, nil
}
