package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/vertex-lab/follows-webhook/pkg/graph"
	"github.com/vertex-lab/follows-webhook/pkg/models"
)

// NewRun() returns the record of a computation on dataset, ready to be archived.
func NewRun(regNo string, odd bool, dataset *models.Dataset, outcome []int) *models.Run {
	run := &models.Run{
		RegNo:     regNo,
		Mode:      ModeName(odd),
		Outcome:   outcome,
		Timestamp: time.Now().Unix(),
	}

	if dataset != nil {
		run.Dataset = *dataset
	}
	return run
}

// LoadGraph() rebuilds the follow graph of the run archived for regNo.
func LoadGraph(ctx context.Context, store models.RunStore, regNo string) (graph.Graph, error) {
	if store == nil {
		return nil, models.ErrNilStorePointer
	}

	run, err := store.RunByRegNo(ctx, regNo)
	if err != nil {
		return nil, fmt.Errorf("RunByRegNo(): %w", err)
	}

	return graph.Build(run.Dataset.Users), nil
}

// Recompute() solves again the dataset of the run archived for regNo, and
// returns the new result together with the archived run.
func Recompute(ctx context.Context, store models.RunStore, regNo string) ([]int, *models.Run, error) {
	if store == nil {
		return nil, nil, models.ErrNilStorePointer
	}

	run, err := store.RunByRegNo(ctx, regNo)
	if err != nil {
		return nil, nil, fmt.Errorf("RunByRegNo(): %w", err)
	}

	var odd bool
	switch run.Mode {
	case models.ModeMutual:
		odd = true
	case models.ModeNthLevel:
		odd = false
	default:
		return nil, run, fmt.Errorf("run %s has unknown mode %q", regNo, run.Mode)
	}

	result, err := Solve(&run.Dataset, odd)
	if err != nil {
		return nil, run, err
	}
	return result, run, nil
}
