package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client connected to a process-wide miniredis instance.
func NewRedis() *redis.Client {
	redisConnOnce.Do(
		func() {
			redisConn, redisServer = openRedisConn()
		},
	)

	return redisConn
}

// RedisServer exposes the fake server, e.g. to inspect keys or fast-forward TTLs.
func RedisServer() *miniredis.Miniredis {
	NewRedis()
	return redisServer
}

func openRedisConn() (*redis.Client, *miniredis.Miniredis) {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return conn, miniRedis
}

func ClearRedis(redis *redis.Client) error {
	return redis.FlushAll(context.TODO()).Err()
}
