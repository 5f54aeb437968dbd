package session_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"tugasku/internal/session"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redisClient *redis.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not connect to docker: %v", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.Run("redis", "7-alpine", nil)
	if err != nil {
		log.Fatalf("Could not start redis: %v", err)
	}

	addr := fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp"))
	if err := pool.Retry(func() error {
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
		return redisClient.Ping(context.Background()).Err()
	}); err != nil {
		log.Fatalf("Could not connect to redis: %v", err)
	}

	code := m.Run()

	redisClient.Close()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge redis: %v", err)
	}
	os.Exit(code)
}

func TestStorageRoundTrip(t *testing.T) {
	s := session.NewRedisStorage(redisClient)

	require.NoError(t, s.Set("abc", []byte("payload"), time.Minute))

	val, err := s.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), val)

	require.NoError(t, s.Delete("abc"))
	val, err = s.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorageMissingKey(t *testing.T) {
	s := session.NewRedisStorage(redisClient)

	val, err := s.Get("never-written")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorageExpiry(t *testing.T) {
	s := session.NewRedisStorage(redisClient)

	require.NoError(t, s.Set("short", []byte("x"), time.Second))
	time.Sleep(1500 * time.Millisecond)

	val, err := s.Get("short")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestStorageReset(t *testing.T) {
	s := session.NewRedisStorage(redisClient)

	require.NoError(t, s.Set("one", []byte("1"), time.Minute))
	require.NoError(t, s.Set("two", []byte("2"), time.Minute))
	require.NoError(t, s.Reset())

	for _, key := range []string{"one", "two"} {
		val, err := s.Get(key)
		require.NoError(t, err)
		assert.Nil(t, val)
	}
}
