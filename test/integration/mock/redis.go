package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by an in-process miniredis server. It
// stands in for the Redis instance that holds cached dashboard summaries.
// The client is a process-wide singleton so the server under test and the
// step definitions see the same cache.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		redisConn = openRedis()
	})
	return redisConn
}

func openRedis() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic("failed to start test redis: " + err.Error())
	}
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

// ClearRedis drops every cached summary so scenarios start cold.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
