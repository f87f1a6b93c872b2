// The mock store package allows for testing that are decoupled from a
// particular RunStore implementation.
package mock

import (
	"context"
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/follows-webhook/pkg/models"
)

// the in-memory version of the RunStore interface. It is safe for concurrent use.
type RunStore struct {
	// associates each registration number with its latest run
	Runs *xsync.MapOf[string, models.Run]
}

// NewRunStore() returns an empty RunStore.
func NewRunStore() *RunStore {
	return &RunStore{
		Runs: xsync.NewMapOf[string, models.Run](),
	}
}

// Validate() returns an error if the RunStore is nil.
func (RS *RunStore) Validate() error {
	if RS == nil || RS.Runs == nil {
		return models.ErrNilStorePointer
	}
	return nil
}

// SaveRun() stores a copy of the run, replacing any run with the same RegNo.
func (RS *RunStore) SaveRun(ctx context.Context, run *models.Run) error {
	_ = ctx
	if err := RS.Validate(); err != nil {
		return err
	}

	if run == nil {
		return models.ErrNilRun
	}

	if run.RegNo == "" {
		return models.ErrEmptyRegNo
	}

	RS.Runs.Store(run.RegNo, clone(*run))
	return nil
}

// RunByRegNo() returns a copy of the run stored for regNo, or ErrRunNotFound.
func (RS *RunStore) RunByRegNo(ctx context.Context, regNo string) (*models.Run, error) {
	_ = ctx
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	run, exists := RS.Runs.Load(regNo)
	if !exists {
		return nil, fmt.Errorf("%w: %s", models.ErrRunNotFound, regNo)
	}

	run = clone(run)
	return &run, nil
}

// RegNos() returns the registration numbers of all stored runs, sorted.
func (RS *RunStore) RegNos(ctx context.Context) ([]string, error) {
	_ = ctx
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	regNos := make([]string, 0, RS.Runs.Size())
	RS.Runs.Range(func(regNo string, _ models.Run) bool {
		regNos = append(regNos, regNo)
		return true
	})

	slices.Sort(regNos)
	return regNos, nil
}

// clone() returns a deep copy of the run, so that callers can't mutate what is stored.
func clone(run models.Run) models.Run {
	run.Outcome = slices.Clone(run.Outcome)

	users := slices.Clone(run.Dataset.Users)
	for i := range users {
		users[i].Follows = slices.Clone(users[i].Follows)
	}
	run.Dataset.Users = users
	return run
}
