package redistore

import (
	"cmp"
	"slices"

	"github.com/vertex-lab/follows-webhook/pkg/models"
)

const (
	KeyRuns          string = "runs"
	KeyRunPrefix     string = "run:"
	KeyUsersSuffix   string = ":users"
	KeyFollowsSuffix string = ":follows:"

	KeyRegNo     string = "reg_no"
	KeyMode      string = "mode"
	KeyN         string = "n"
	KeyFindID    string = "find_id"
	KeyTimestamp string = "timestamp"
	KeyOutcome   string = "outcome"
)

// KeyRun() returns the Redis key of the hash holding the run metadata.
func KeyRun(regNo string) string {
	return KeyRunPrefix + regNo
}

// KeyUsers() returns the Redis key of the hash userID --> name of the run.
func KeyUsers(regNo string) string {
	return KeyRunPrefix + regNo + KeyUsersSuffix
}

// KeyFollows() returns the Redis key of the set of IDs followed by userID in the run.
func KeyFollows(regNo, strUserID string) string {
	return KeyRunPrefix + regNo + KeyFollowsSuffix + strUserID
}

/*
Normalize() returns the dataset as it is archived in Redis:

- users with the same ID collapse into the last one

- users are sorted by ID

- follows are deduplicated and sorted
*/
func Normalize(dataset models.Dataset) models.Dataset {
	last := make(map[int]models.User, len(dataset.Users))
	for _, user := range dataset.Users {
		last[user.ID] = user
	}

	users := make([]models.User, 0, len(last))
	for _, user := range last {
		follows := slices.Clone(user.Follows)
		if follows == nil {
			follows = []int{}
		}
		slices.Sort(follows)
		user.Follows = slices.Compact(follows)
		users = append(users, user)
	}

	slices.SortFunc(users, func(u1, u2 models.User) int {
		return cmp.Compare(u1.ID, u2.ID)
	})

	return models.Dataset{
		Users:  users,
		N:      dataset.N,
		FindID: dataset.FindID,
	}
}
