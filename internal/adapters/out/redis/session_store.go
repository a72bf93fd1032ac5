// Package redis stores cart session bindings in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"foodly/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:session:"

// SessionStore implements ports.SessionStore with one string key per token.
// Expiry is left to Redis.
type SessionStore struct {
	client goredis.UniversalClient
}

func NewSessionStore(client goredis.UniversalClient) *SessionStore {
	return &SessionStore{client: client}
}

// NewClient opens a client for addr. The connection is verified with PING.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.NewStoreUnavailableErrorWithCause("redis", err)
	}
	return client, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (int64, bool, error) {
	value, err := s.client.Get(ctx, key(token)).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errs.NewStoreUnavailableErrorWithCause("redis", err)
	}

	orderID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// A value we did not write is treated as no binding.
		return 0, false, nil
	}
	return orderID, true, nil
}

func (s *SessionStore) Put(ctx context.Context, token string, orderID int64, ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}
	if err := s.client.Set(ctx, key(token), strconv.FormatInt(orderID, 10), ttl).Err(); err != nil {
		return errs.NewStoreUnavailableErrorWithCause("redis", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return errs.NewStoreUnavailableErrorWithCause("redis", err)
	}
	return nil
}

func key(token string) string {
	return fmt.Sprintf("%s%s", keyPrefix, token)
}
