package graph

import (
	"testing"

	"github.com/vertex-lab/follows-webhook/pkg/models"
)

func TestBuild(t *testing.T) {
	testCases := []struct {
		name              string
		users             []models.User
		expectedSize      int
		expectedEdgeCount int
	}{
		{
			name:              "nil users",
			users:             nil,
			expectedSize:      0,
			expectedEdgeCount: 0,
		},
		{
			name:              "empty users",
			users:             []models.User{},
			expectedSize:      0,
			expectedEdgeCount: 0,
		},
		{
			name:              "duplicated follows",
			users:             []models.User{{ID: 0, Follows: []int{1, 1, 2, 1}}},
			expectedSize:      1,
			expectedEdgeCount: 2,
		},
		{
			name:              "dangling follows",
			users:             SetupUsers("triangle-dangling"),
			expectedSize:      4,
			expectedEdgeCount: 8,
		},
		{
			name: "duplicated IDs, last wins",
			users: []models.User{
				{ID: 7, Follows: []int{1, 2, 3}},
				{ID: 7, Follows: []int{4}},
			},
			expectedSize:      1,
			expectedEdgeCount: 1,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			g := Build(test.users)

			if g.Size() != test.expectedSize {
				t.Fatalf("Size(): expected %v, got %v", test.expectedSize, g.Size())
			}

			if g.EdgeCount() != test.expectedEdgeCount {
				t.Fatalf("EdgeCount(): expected %v, got %v", test.expectedEdgeCount, g.EdgeCount())
			}
		})
	}
}

func TestFollows(t *testing.T) {
	g := Build(SetupUsers("triangle-dangling"))

	testCases := []struct {
		name            string
		nodeID          int
		targetID        int
		expectedFollows bool
	}{
		{
			name:            "node not in graph",
			nodeID:          99,
			targetID:        3,
			expectedFollows: false,
		},
		{
			name:            "target not followed",
			nodeID:          3,
			targetID:        0,
			expectedFollows: false,
		},
		{
			name:            "dangling target",
			nodeID:          3,
			targetID:        99,
			expectedFollows: true,
		},
		{
			name:            "valid",
			nodeID:          1,
			targetID:        2,
			expectedFollows: true,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			follows := g.Follows(test.nodeID, test.targetID)
			if follows != test.expectedFollows {
				t.Fatalf("Follows(%d, %d): expected %v, got %v", test.nodeID, test.targetID, test.expectedFollows, follows)
			}
		})
	}
}

func TestBuildFresh(t *testing.T) {
	users := SetupUsers("one-mutual")
	g1 := Build(users)
	g1[1].Add(3)

	g2 := Build(users)
	if g2.Follows(1, 3) {
		t.Fatalf("Build(): graphs built from the same users must not share state")
	}
}
