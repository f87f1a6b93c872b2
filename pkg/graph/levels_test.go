package graph

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

func TestNthLevelFollowers(t *testing.T) {
	testCases := []struct {
		name           string
		graphType      string
		findID         int
		n              int
		expectedResult []int
		expectedError  error
	}{
		{
			name:           "negative level",
			graphType:      "diamond",
			findID:         1,
			n:              -1,
			expectedResult: nil,
			expectedError:  ErrNegativeLevel,
		},
		{
			name:           "level zero",
			graphType:      "diamond",
			findID:         1,
			n:              0,
			expectedResult: []int{},
		},
		{
			name:           "empty users",
			graphType:      "empty",
			findID:         1,
			n:              1,
			expectedResult: []int{},
		},
		{
			name:           "findID not in graph",
			graphType:      "diamond",
			findID:         77,
			n:              1,
			expectedResult: []int{},
		},
		{
			name:           "diamond, first level",
			graphType:      "diamond",
			findID:         1,
			n:              1,
			expectedResult: []int{2, 3},
		},
		{
			name:           "diamond, second level reached by two paths",
			graphType:      "diamond",
			findID:         1,
			n:              2,
			expectedResult: []int{4},
		},
		{
			name:           "diamond, beyond the last level",
			graphType:      "diamond",
			findID:         1,
			n:              3,
			expectedResult: []int{},
		},
		{
			name:           "chain, fourth level",
			graphType:      "chain",
			findID:         0,
			n:              4,
			expectedResult: []int{4},
		},
		{
			name:           "chain, start in the middle",
			graphType:      "chain",
			findID:         2,
			n:              2,
			expectedResult: []int{4},
		},
		{
			name:           "self loop is never a follower",
			graphType:      "self-loop",
			findID:         5,
			n:              1,
			expectedResult: []int{},
		},
		{
			name:           "cycles don't revisit the origin",
			graphType:      "triangle-dangling",
			findID:         1,
			n:              2,
			expectedResult: []int{3},
		},
		{
			name:           "dangling follow is a leaf",
			graphType:      "triangle-dangling",
			findID:         0,
			n:              2,
			expectedResult: []int{99},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			g := Build(SetupUsers(test.graphType))
			result, err := NthLevelFollowers(g, test.findID, test.n)

			if !errors.Is(err, test.expectedError) {
				t.Fatalf("NthLevelFollowers(): expected %v, got %v", test.expectedError, err)
			}

			if !reflect.DeepEqual(result, test.expectedResult) {
				t.Fatalf("NthLevelFollowers(): expected %v, got %v", test.expectedResult, result)
			}
		})
	}
}

// distances() returns the shortest distance of every node reachable from
// findID, computed with a plain queue BFS.
func distances(g Graph, findID int) map[int]int {
	dist := map[int]int{findID: 0}
	queue := []int{findID}
	for head := 0; head < len(queue); head++ {
		nodeID := queue[head]
		follows, exists := g[nodeID]
		if !exists {
			continue
		}

		for _, followID := range follows.ToSlice() {
			if _, visited := dist[followID]; visited {
				continue
			}
			dist[followID] = dist[nodeID] + 1
			queue = append(queue, followID)
		}
	}
	return dist
}

func TestNthLevelFollowersProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(69, 42))

	for i := 0; i < 200; i++ {
		size := 1 + rng.IntN(30)
		g := Build(RandomUsers(rng, size, 4))
		findID := rng.IntN(size)
		dist := distances(g, findID)

		for n := 0; n < 6; n++ {
			result, err := NthLevelFollowers(g, findID, n)
			if err != nil {
				t.Fatalf("NthLevelFollowers(): expected nil, got %v", err)
			}

			if n == 0 && len(result) > 0 {
				t.Fatalf("NthLevelFollowers(): expected [] at level 0, got %v", result)
			}

			if !slices.IsSorted(result) || len(slices.Compact(slices.Clone(result))) != len(result) {
				t.Fatalf("NthLevelFollowers(): expected sorted and unique, got %v", result)
			}

			expected := []int{}
			if n > 0 {
				for nodeID, d := range dist {
					if d == n {
						expected = append(expected, nodeID)
					}
				}
			}
			slices.Sort(expected)

			if !reflect.DeepEqual(result, expected) {
				t.Fatalf("NthLevelFollowers(%d, %d): expected %v, got %v", findID, n, expected, result)
			}
		}
	}
}
