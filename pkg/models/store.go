package models

import (
	"context"
	"errors"
)

const (
	ModeMutual   string = "mutual"
	ModeNthLevel string = "nth-level"
)

// Run is the record of a completed computation: who asked for it, which
// algorithm ran, on what data, and what was computed.
type Run struct {
	RegNo     string
	Mode      string
	Dataset   Dataset
	Outcome   []int
	Timestamp int64
}

// RunStore archives completed runs, indexed by registration number.
type RunStore interface {
	// Validate() returns the appropriate error if the store is nil or not connected.
	Validate() error

	// SaveRun() stores the run, overwriting any previous run with the same RegNo.
	SaveRun(ctx context.Context, run *Run) error

	// RunByRegNo() returns the run stored for regNo.
	RunByRegNo(ctx context.Context, regNo string) (*Run, error)

	// RegNos() returns the registration numbers of all archived runs, sorted.
	RegNos(ctx context.Context) ([]string, error)
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilStorePointer = errors.New("nil run store pointer")
var ErrNilRun = errors.New("run is nil")
var ErrEmptyRegNo = errors.New("registration number is empty")
var ErrRunNotFound = errors.New("run not found in the store")
