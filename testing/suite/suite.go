package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

// RedisAddrEnv points the redis tests at a running server instead of a container.
const RedisAddrEnv = "TICTACTOE_TEST_REDIS_ADDR"

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
	stateKeyPrefix  = "tictactoe:test:"
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite - what a redis backed test gets to work with.
type Suite struct {
	Storage *redis.Client
}

// NewLogger - a logger that discards everything, for tests that only need the dependency.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// StateKey - a board key owned by the calling test, removed when it ends.
func (that *Suite) StateKey(t *testing.T) string {
	t.Helper()

	key := stateKeyPrefix + strings.ReplaceAll(t.Name(), "/", ":")
	t.Cleanup(func() {
		_ = that.Storage.Del(context.Background(), key).Err()
	})

	return key
}

// New connects to redis from RedisAddrEnv, or starts a throwaway container.
// The test is skipped when neither is reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	var client *redis.Client
	if addr := os.Getenv(RedisAddrEnv); addr != "" {
		client = connect(ctx, t, addr)
	} else {
		client = startContainer(ctx, t)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		Storage: client,
	}
}

func connect(ctx context.Context, t *testing.T, addr string) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis at %s is not reachable: %v", addr, err)
	}

	t.Cleanup(func() { _ = client.Close() })

	return client
}

func startContainer(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	// hard kill in case the cleanup never runs
	_ = resource.Expire(expireDuration)

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	// the server inside the container needs a moment before it accepts connections
	pool.MaxWait = maxWaitDuration

	addr := resource.GetHostPort(redisPort)

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return err
		}

		return nil
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })

	return client
}
