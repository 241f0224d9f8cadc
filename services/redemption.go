package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedemptionStore keeps a user's point-redemption intent between the
// cart view and the checkout POST. The marker is transient (TTL'd) and
// is only a hint: the cap is recomputed against the live cart total at
// checkout.
type RedemptionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedemptionStore(client *redis.Client, ttl time.Duration) *RedemptionStore {
	return &RedemptionStore{Client: client, TTL: ttl}
}

func (s *RedemptionStore) key(userID uint) string {
	return "redeem:" + strconv.FormatUint(uint64(userID), 10)
}

func (s *RedemptionStore) Set(ctx context.Context, userID uint, points int64) error {
	return s.Client.Set(ctx, s.key(userID), strconv.FormatInt(points, 10), s.TTL).Err()
}

// Get returns the flagged points, or 0 when no marker is set.
func (s *RedemptionStore) Get(ctx context.Context, userID uint) (int64, error) {
	val, err := s.Client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *RedemptionStore) Clear(ctx context.Context, userID uint) error {
	return s.Client.Del(ctx, s.key(userID)).Err()
}
