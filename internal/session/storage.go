package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

const keyPrefix = "sess:"

// RedisStorage persists session data in Redis so sessions survive process
// restarts. It implements fiber.Storage.
type RedisStorage struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client, ctx: context.Background()}
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(s.ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(s.ctx, keyPrefix+key, val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	return s.client.Del(s.ctx, keyPrefix+key).Err()
}

func (s *RedisStorage) Reset() error {
	keys, err := s.client.Keys(s.ctx, keyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(s.ctx, keys...).Err()
}

func (s *RedisStorage) Close() error {
	return nil
}

// Lifetime is how long a session cookie stays valid. Every authenticated
// request re-saves the session, which pushes the expiry forward.
const Lifetime = 24 * time.Hour

// NewStore builds the cookie session store backed by Redis.
func NewStore(client *redis.Client) *fibersession.Store {
	return fibersession.New(fibersession.Config{
		Storage:        NewRedisStorage(client),
		Expiration:     Lifetime,
		KeyLookup:      "cookie:tugasku_session",
		CookieHTTPOnly: true,
	})
}
