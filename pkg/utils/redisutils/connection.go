// The redisutils package simplifies and automates recurring operations like
// connecting to, formatting for, and parsing from Redis.
package redisutils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// SetupClient() initializes a new Redis client connected to address.
func SetupClient(address string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: address,
	})
}

// Ping() returns an error if the Redis server can't be reached.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
