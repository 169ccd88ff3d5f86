package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/test"
)

type Redis struct {
	address string
	redis.UniversalClient
}

// NewRedis connects to the redis behind REDIS_HOST/REDIS_PORT and skips the
// calling test when none is reachable, so the suite runs without one.
func NewRedis(t *testing.T, test *test.Test) Redis {
	redisHost := test.Config().Optional().String("REDIS_HOST", "localhost")
	redisPort := test.Config().Optional().String("REDIS_PORT", "6379")
	addr := fmt.Sprintf("%s:%s", redisHost, redisPort)
	cli := redis.NewClient(&redis.Options{Addr: addr})

	err := cli.Ping(context.Background()).Err()
	if err != nil {
		t.Skipf("redis is not available at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		_ = cli.FlushDB(context.Background()).Err()
		_ = cli.Close()
	})

	return Redis{UniversalClient: cli, address: addr}
}

func (r Redis) Address() string {
	return r.address
}
