// The solver package picks which graph algorithm to run for a registration
// number, and runs it on a dataset.
package solver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vertex-lab/follows-webhook/pkg/models"
)

// IsOddRegistration() returns whether the number formed by the last two
// characters of regNo is odd.
func IsOddRegistration(regNo string) (bool, error) {
	if len(regNo) < 2 {
		return false, fmt.Errorf("%w: %q is shorter than two characters", ErrInvalidRegNo, regNo)
	}

	lastTwo := regNo[len(regNo)-2:]
	number, err := strconv.Atoi(lastTwo)
	if err != nil {
		return false, fmt.Errorf("%w: %q doesn't end with two digits", ErrInvalidRegNo, regNo)
	}

	return number%2 != 0, nil
}

// ModeOf() returns the name of the algorithm that runs for regNo.
func ModeOf(regNo string) (string, error) {
	odd, err := IsOddRegistration(regNo)
	if err != nil {
		return "", err
	}
	return ModeName(odd), nil
}

// ModeName() returns models.ModeMutual for odd registrations, models.ModeNthLevel otherwise.
func ModeName(odd bool) string {
	if odd {
		return models.ModeMutual
	}
	return models.ModeNthLevel
}

//--------------------------ERROR-CODES--------------------------

var ErrInvalidRegNo = errors.New("invalid registration number")
