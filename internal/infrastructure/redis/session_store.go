package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps serialized conversation state keyed by chat id.
// Entries expire after the configured TTL so abandoned flows clean
// themselves up.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(addr, password string, ttl time.Duration) *SessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *SessionStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, sessionKey(key), value, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, sessionKey(key)).Err()
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(key string) string {
	return fmt.Sprintf("session:%s", key)
}
