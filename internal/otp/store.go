// Package otp keeps password-reset codes in Redis. Codes expire on their
// own after the TTL; a code that verifies is deleted so it can never be
// replayed.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tabeebak/clinic-scheduler/internal/config"
)

const TTL = 10 * time.Minute

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(role, email string) string {
	return fmt.Sprintf("otp:%s:%s", role, email)
}

// Issue generates a six-digit code and stores it under the account's key,
// replacing any outstanding code.
func (s *Store) Issue(ctx context.Context, role, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.rdb.Set(ctx, key(role, email), code, TTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify reports whether the code matches the outstanding one and consumes
// it on success.
func (s *Store) Verify(ctx context.Context, role, email, code string) (bool, error) {
	k := key(role, email)

	stored, err := s.rdb.Get(ctx, k).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stored != code {
		return false, nil
	}

	if err := s.rdb.Del(ctx, k).Err(); err != nil {
		return false, err
	}
	return true, nil
}
