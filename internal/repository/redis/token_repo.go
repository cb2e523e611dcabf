package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	userTokenPrefix = "user:token"
	userTokenTTL    = 30 * time.Minute
)

var ErrTokenNotFound = errors.New("user token not found")

// TokenRepository keeps one live access token per user. Logging in elsewhere
// replaces the stored token, invalidating the previous session.
type TokenRepository struct{}

func tokenKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", userTokenPrefix, userID)
}

func (r *TokenRepository) Save(ctx context.Context, userID uint64, token string) error {
	return Client.Set(ctx, tokenKey(userID), token, userTokenTTL).Err()
}

func (r *TokenRepository) Get(ctx context.Context, userID uint64) (string, error) {
	val, err := Client.Get(ctx, tokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	return val, err
}

// Extend slides the TTL on every authenticated request.
func (r *TokenRepository) Extend(ctx context.Context, userID uint64) error {
	return Client.Expire(ctx, tokenKey(userID), userTokenTTL).Err()
}

func (r *TokenRepository) Delete(ctx context.Context, userID uint64) error {
	return Client.Del(ctx, tokenKey(userID)).Err()
}
