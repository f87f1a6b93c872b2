package solver

import (
	"fmt"

	"github.com/vertex-lab/follows-webhook/pkg/graph"
	"github.com/vertex-lab/follows-webhook/pkg/models"
)

/*
Solve() builds the follow graph of the dataset and runs one algorithm on it:

- odd registrations get the mutual followers, flattened in pairs

- even registrations get the followers of dataset.FindID at level dataset.N

The graph is rebuilt on every call and discarded afterwards.
*/
func Solve(dataset *models.Dataset, odd bool) ([]int, error) {
	if dataset == nil {
		return nil, models.ErrNilDataset
	}

	g := graph.Build(dataset.Users)
	if odd {
		return graph.MutualFollowers(g), nil
	}

	result, err := graph.NthLevelFollowers(g, dataset.FindID, dataset.N)
	if err != nil {
		return nil, fmt.Errorf("NthLevelFollowers(): %w", err)
	}
	return result, nil
}

// SolveFor() decides the mode from regNo, then solves the dataset.
func SolveFor(dataset *models.Dataset, regNo string) ([]int, error) {
	odd, err := IsOddRegistration(regNo)
	if err != nil {
		return nil, err
	}
	return Solve(dataset, odd)
}
