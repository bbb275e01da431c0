package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"srinu_foods_client/internal/models"
)

// cartTTL matches the production backend's 30-day cart expiry.
const cartTTL = 30 * 24 * time.Hour

// RedisCartStore keeps carts as JSON blobs under cart:<userID>, the
// same key scheme the production backend uses.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(addr string) *RedisCartStore {
	return &RedisCartStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisCartStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func key(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *RedisCartStore) Get(ctx context.Context, userID int) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, key(userID)).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisCartStore) Set(ctx context.Context, userID int, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(userID), data, cartTTL).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, userID int) error {
	return s.client.Del(ctx, key(userID)).Err()
}
