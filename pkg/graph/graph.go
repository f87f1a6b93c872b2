// The graph package builds the follow graph of a dataset and implements the
// algorithms that run on it: mutual followers and n-th level followers.
//
// A Graph is derived data. It is built fresh for every computation and never
// shared between computations, so nothing in this package holds global state.
package graph

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/follows-webhook/pkg/models"
)

// NodeSet is the set of IDs a user follows.
type NodeSet = mapset.Set[int]

// Graph maps each user ID to the set of IDs that user follows.
type Graph map[int]NodeSet

// Build() returns the follow graph of the users. Follows are deduplicated, and
// IDs that don't belong to any user are kept as they are: when traversed they
// behave as nodes without follows. If two users share an ID, the last one wins.
func Build(users []models.User) Graph {
	g := make(Graph, len(users))
	for _, user := range users {
		g[user.ID] = mapset.NewThreadUnsafeSet(user.Follows...)
	}
	return g
}

// ContainsNode() returns whether nodeID is a user of the graph.
func (g Graph) ContainsNode(nodeID int) bool {
	_, exists := g[nodeID]
	return exists
}

// Follows() returns whether nodeID follows targetID. It's false when nodeID is not in the graph.
func (g Graph) Follows(nodeID, targetID int) bool {
	follows, exists := g[nodeID]
	if !exists {
		return false
	}
	return follows.Contains(targetID)
}

// Size() returns the number of users in the graph.
func (g Graph) Size() int {
	return len(g)
}

// EdgeCount() returns the number of follow relationships in the graph.
func (g Graph) EdgeCount() int {
	var count int
	for _, follows := range g {
		count += follows.Cardinality()
	}
	return count
}

//--------------------------ERROR-CODES--------------------------

var ErrNegativeLevel = errors.New("level must be non-negative")
