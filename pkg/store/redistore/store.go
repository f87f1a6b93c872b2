// The redistore package defines a Redis RunStore that fulfills the RunStore interface in models.
package redistore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/follows-webhook/pkg/models"
	"github.com/vertex-lab/follows-webhook/pkg/utils/redisutils"
)

// RunStore fulfills the RunStore interface defined in models.
// Each run is stored as a hash of metadata, a hash of its users, and one set
// of follows per user, mirroring the follow graph it was computed on.
type RunStore struct {
	client *redis.Client
}

// NewRunStore() returns a RunStore using the provided Redis client.
func NewRunStore(ctx context.Context, cl *redis.Client) (*RunStore, error) {
	if cl == nil {
		return nil, models.ErrNilClientPointer
	}

	if err := redisutils.Ping(ctx, cl); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RunStore{client: cl}, nil
}

// Validate() checks whether the RunStore and its client are nil.
func (RS *RunStore) Validate() error {
	if RS == nil {
		return models.ErrNilStorePointer
	}

	if RS.client == nil {
		return models.ErrNilClientPointer
	}

	return nil
}

// SaveRun() stores the normalized run, replacing any run with the same RegNo.
func (RS *RunStore) SaveRun(ctx context.Context, run *models.Run) error {
	if err := RS.Validate(); err != nil {
		return err
	}

	if run == nil {
		return models.ErrNilRun
	}

	if run.RegNo == "" {
		return models.ErrEmptyRegNo
	}

	// the users of the previous run, whose follow sets must be deleted
	oldUsers, err := RS.client.HKeys(ctx, KeyUsers(run.RegNo)).Result()
	if err != nil {
		return fmt.Errorf("failed to fetch the users of %s: %w", run.RegNo, err)
	}

	dataset := Normalize(run.Dataset)

	pipe := RS.client.TxPipeline()
	for _, strUserID := range oldUsers {
		pipe.Del(ctx, KeyFollows(run.RegNo, strUserID))
	}
	pipe.Del(ctx, KeyUsers(run.RegNo), KeyRun(run.RegNo))

	pipe.HSet(ctx, KeyRun(run.RegNo), map[string]interface{}{
		KeyRegNo:     run.RegNo,
		KeyMode:      run.Mode,
		KeyN:         dataset.N,
		KeyFindID:    dataset.FindID,
		KeyTimestamp: run.Timestamp,
		KeyOutcome:   redisutils.FormatList(run.Outcome),
	})

	if len(dataset.Users) > 0 {
		names := make(map[string]interface{}, len(dataset.Users))
		for _, user := range dataset.Users {
			strUserID := redisutils.FormatID(user.ID)
			names[strUserID] = user.Name

			if len(user.Follows) > 0 {
				pipe.SAdd(ctx, KeyFollows(run.RegNo, strUserID), redisutils.FormatIDs(user.Follows))
			}
		}
		pipe.HSet(ctx, KeyUsers(run.RegNo), names)
	}

	pipe.SAdd(ctx, KeyRuns, run.RegNo)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RegNo, err)
	}

	return nil
}

// RunByRegNo() returns the run stored for regNo, or ErrRunNotFound.
func (RS *RunStore) RunByRegNo(ctx context.Context, regNo string) (*models.Run, error) {
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	fields, err := RS.client.HGetAll(ctx, KeyRun(regNo)).Result()
	if err != nil {
		return nil, err
	}

	// if an empty map is returned, it means the run was not found
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrRunNotFound, regNo)
	}

	run, err := parseRun(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run %s: %w", regNo, err)
	}

	users, err := RS.users(ctx, regNo)
	if err != nil {
		return nil, err
	}

	run.Dataset.Users = users
	return run, nil
}

// users() returns the users of the run with their follows, sorted by ID.
func (RS *RunStore) users(ctx context.Context, regNo string) ([]models.User, error) {
	names, err := RS.client.HGetAll(ctx, KeyUsers(regNo)).Result()
	if err != nil {
		return nil, err
	}

	strUserIDs := make([]string, 0, len(names))
	for strUserID := range names {
		strUserIDs = append(strUserIDs, strUserID)
	}

	pipe := RS.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(strUserIDs))
	for i, strUserID := range strUserIDs {
		cmds[i] = pipe.SMembers(ctx, KeyFollows(regNo, strUserID))
	}

	if len(cmds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	users := make([]models.User, len(strUserIDs))
	for i, strUserID := range strUserIDs {
		userID, err := redisutils.ParseID(strUserID)
		if err != nil {
			return nil, err
		}

		follows, err := redisutils.ParseIDs(cmds[i].Val())
		if err != nil {
			return nil, err
		}
		slices.Sort(follows)

		users[i] = models.User{ID: userID, Name: names[strUserID], Follows: follows}
	}

	slices.SortFunc(users, func(u1, u2 models.User) int {
		return cmp.Compare(u1.ID, u2.ID)
	})
	return users, nil
}

// RegNos() returns the registration numbers of all archived runs, sorted.
func (RS *RunStore) RegNos(ctx context.Context) ([]string, error) {
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	regNos, err := RS.client.SMembers(ctx, KeyRuns).Result()
	if err != nil {
		return nil, err
	}

	slices.Sort(regNos)
	return regNos, nil
}

// parseRun() parses the metadata hash of a run. Users are parsed separately.
func parseRun(fields map[string]string) (*models.Run, error) {
	var err error
	run := &models.Run{
		RegNo: fields[KeyRegNo],
		Mode:  fields[KeyMode],
	}

	if run.Dataset.N, err = strconv.Atoi(fields[KeyN]); err != nil {
		return nil, err
	}

	if run.Dataset.FindID, err = strconv.Atoi(fields[KeyFindID]); err != nil {
		return nil, err
	}

	if run.Timestamp, err = redisutils.ParseInt64(fields[KeyTimestamp]); err != nil {
		return nil, err
	}

	if run.Outcome, err = redisutils.ParseList(fields[KeyOutcome]); err != nil {
		return nil, err
	}

	return run, nil
}
