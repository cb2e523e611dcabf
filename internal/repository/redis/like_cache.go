package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	likeSetTTL       = 24 * time.Hour
	likeCntTTL       = 24 * time.Hour
	likeSetKeyPrefix = "like:set:post" // user-id set per post
	likeCntKeyPrefix = "like:cnt:post" // cached like count per post
)

// LikeCache is a cache-aside layer over the post_likes table. Counts are
// derived from COUNT(*) in the store; the cache only shortcuts reads and is
// invalidated on every toggle.
type LikeCache struct{}

func NewLikeCache() *LikeCache { return &LikeCache{} }

func (c *LikeCache) setKey(postID uint64) string {
	return fmt.Sprintf("%s:%d", likeSetKeyPrefix, postID)
}

func (c *LikeCache) cntKey(postID uint64) string {
	return fmt.Sprintf("%s:%d", likeCntKeyPrefix, postID)
}

// IsLiked reports (liked, cacheHit). A missing set is a miss, not "not liked".
func (c *LikeCache) IsLiked(ctx context.Context, userID, postID uint64) (bool, bool, error) {
	k := c.setKey(postID)
	exists, err := Client.Exists(ctx, k).Result()
	if err != nil {
		return false, false, err
	}
	if exists == 0 {
		return false, false, nil
	}
	b, err := Client.SIsMember(ctx, k, userID).Result()
	return b, true, err
}

// Warm lazily backfills the membership set. Only an existing set is touched,
// so cold posts never grow an unbounded set.
func (c *LikeCache) Warm(ctx context.Context, userID, postID uint64, liked bool) {
	k := c.setKey(postID)
	if ok, _ := Client.Exists(ctx, k).Result(); ok > 0 {
		if liked {
			_ = Client.SAdd(ctx, k, userID).Err()
		} else {
			_ = Client.SRem(ctx, k, userID).Err()
		}
		_ = Client.Expire(ctx, k, likeSetTTL).Err()
	}
}

func (c *LikeCache) Count(ctx context.Context, postID uint64) (int64, bool, error) {
	val, err := Client.Get(ctx, c.cntKey(postID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, true, err
}

func (c *LikeCache) SetCount(ctx context.Context, postID uint64, count int64) error {
	return Client.Set(ctx, c.cntKey(postID), count, likeCntTTL).Err()
}

// InvalidateCount drops the cached counter so the next read rebuilds it from
// the store.
func (c *LikeCache) InvalidateCount(ctx context.Context, postID uint64) error {
	err := Client.Del(ctx, c.cntKey(postID)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
