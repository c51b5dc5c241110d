package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

// SeatCache stores seat availability snapshots in redis under seats:<concertID>.
type SeatCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSeatCache(client *redis.Client, ttl time.Duration) *SeatCache {
	return &SeatCache{client: client, ttl: ttl}
}

func SeatsKey(concertID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", concertID.String())
}

func (c *SeatCache) Get(ctx context.Context, concertID uuid.UUID) ([]domain.SeatView, bool, error) {
	payload, err := c.client.Get(ctx, SeatsKey(concertID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read seats for concert %s: %w", concertID, err)
	}

	var seats []domain.SeatView
	if err := json.Unmarshal([]byte(payload), &seats); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached seats for concert %s: %w", concertID, err)
	}

	return seats, true, nil
}

func (c *SeatCache) Set(ctx context.Context, concertID uuid.UUID, seats []domain.SeatView) error {
	payload, err := json.Marshal(seats)
	if err != nil {
		return fmt.Errorf("failed to encode seats: %w", err)
	}

	if err := c.client.Set(ctx, SeatsKey(concertID), string(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache seats for concert %s: %w", concertID, err)
	}

	return nil
}

func (c *SeatCache) Invalidate(ctx context.Context, concertID uuid.UUID) error {
	if err := c.client.Del(ctx, SeatsKey(concertID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate seats for concert %s: %w", concertID, err)
	}

	return nil
}
