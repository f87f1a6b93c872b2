package graph

import (
	"math/rand/v2"

	"github.com/vertex-lab/follows-webhook/pkg/models"
)

// SetupUsers() returns the users of a small graph of the specified type.
func SetupUsers(graphType string) []models.User {
	switch graphType {
	case "nil":
		return nil

	case "empty":
		return []models.User{}

	// 1 <--> 2, 3 alone
	case "one-mutual":
		return []models.User{
			{ID: 1, Name: "alice", Follows: []int{2}},
			{ID: 2, Name: "bob", Follows: []int{1}},
			{ID: 3, Name: "carol", Follows: []int{}},
		}

	// 1 --> {2, 3} --> 4
	case "diamond":
		return []models.User{
			{ID: 1, Follows: []int{2, 3}},
			{ID: 2, Follows: []int{4}},
			{ID: 3, Follows: []int{4}},
			{ID: 4, Follows: []int{}},
		}

	case "self-loop":
		return []models.User{
			{ID: 5, Follows: []int{5}},
		}

	// 0 --> 1 --> 2 --> 3 --> 4
	case "chain":
		return []models.User{
			{ID: 0, Follows: []int{1}},
			{ID: 1, Follows: []int{2}},
			{ID: 2, Follows: []int{3}},
			{ID: 3, Follows: []int{4}},
			{ID: 4, Follows: []int{}},
		}

	// 0 <--> 1 <--> 2 <--> 0, plus 0 --> 3 and 3 --> 99 (not a user)
	case "triangle-dangling":
		return []models.User{
			{ID: 0, Follows: []int{1, 2, 3}},
			{ID: 1, Follows: []int{0, 2}},
			{ID: 2, Follows: []int{0, 1}},
			{ID: 3, Follows: []int{99}},
		}

	default:
		return nil
	}
}

// RandomUsers() returns size users, each following up to maxFollows random IDs
// in [0, 2*size), so that roughly half of the follows are dangling.
func RandomUsers(rng *rand.Rand, size, maxFollows int) []models.User {
	users := make([]models.User, size)
	for i := range users {
		follows := make([]int, rng.IntN(maxFollows+1))
		for j := range follows {
			follows[j] = rng.IntN(2 * size)
		}
		users[i] = models.User{ID: i, Follows: follows}
	}
	return users
}
