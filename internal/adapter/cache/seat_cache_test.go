package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/adapter/cache"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCache_GetMiss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	seatCache := cache.NewSeatCache(db, time.Minute)
	concertID := uuid.New()

	mockRedis.ExpectGet(fmt.Sprintf("seats:%s", concertID)).RedisNil()

	seats, hit, err := seatCache.Get(context.Background(), concertID)

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, seats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSeatCache_GetHit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	seatCache := cache.NewSeatCache(db, time.Minute)
	concertID := uuid.New()

	want := []domain.SeatView{{ID: uuid.NewString(), Label: "A1", Tier: "REGULAR", Price: 50, Status: "AVAILABLE"}}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	mockRedis.ExpectGet(cache.SeatsKey(concertID)).SetVal(string(payload))

	seats, hit, err := seatCache.Get(context.Background(), concertID)

	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, seats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSeatCache_GetCorruptPayload(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	seatCache := cache.NewSeatCache(db, time.Minute)
	concertID := uuid.New()

	mockRedis.ExpectGet(cache.SeatsKey(concertID)).SetVal("not json")

	_, hit, err := seatCache.Get(context.Background(), concertID)

	assert.Error(t, err)
	assert.False(t, hit)
}

func TestSeatCache_Set(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	seatCache := cache.NewSeatCache(db, 30*time.Second)
	concertID := uuid.New()

	seats := []domain.SeatView{{ID: uuid.NewString(), Label: "B1", Tier: "PREMIUM", Price: 80, Status: "AVAILABLE"}}
	payload, err := json.Marshal(seats)
	require.NoError(t, err)

	mockRedis.ExpectSet(cache.SeatsKey(concertID), string(payload), 30*time.Second).SetVal("OK")

	require.NoError(t, seatCache.Set(context.Background(), concertID, seats))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSeatCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	seatCache := cache.NewSeatCache(db, time.Minute)
	concertID := uuid.New()

	cacheKey := fmt.Sprintf("seats:%s", concertID.String())
	mockRedis.ExpectDel(cacheKey).SetVal(1)

	require.NoError(t, seatCache.Invalidate(context.Background(), concertID))

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSeatCache_InvalidateError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	seatCache := cache.NewSeatCache(db, time.Minute)
	concertID := uuid.New()

	mockRedis.ExpectDel(cache.SeatsKey(concertID)).SetErr(errors.New("connection refused"))

	err := seatCache.Invalidate(context.Background(), concertID)

	assert.ErrorContains(t, err, "connection refused")
}
