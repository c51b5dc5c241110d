package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/app"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem_UnknownStrategy(t *testing.T) {
	_, err := app.NewSystem(app.Options{Strategy: "spinlock"})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSystem_SeedAndBook(t *testing.T) {
	for _, strategy := range []string{services.StrategyLockFree, services.StrategyMutex} {
		t.Run(strategy, func(t *testing.T) {
			sys, err := app.NewSystem(app.Options{Strategy: strategy})
			require.NoError(t, err)

			demo, err := sys.Seed(time.Now())
			require.NoError(t, err)

			assert.Equal(t, []*domain.Concert{demo.BandX}, sys.Catalog.SearchByArtist("Band X"))
			assert.Equal(t, []*domain.Concert{demo.SingerY}, sys.Catalog.SearchByVenue("Venue B"))

			a1, ok := demo.BandX.SeatByLabel("A1")
			require.True(t, ok)
			c1, ok := demo.BandX.SeatByLabel("C1")
			require.True(t, ok)

			booking, err := sys.Engine.BookSeats(context.Background(), demo.Alice.ID, demo.BandX.ID, []uuid.UUID{a1.ID, c1.ID})
			require.NoError(t, err)
			assert.Equal(t, 170.0, booking.TotalPrice)

			byAlice, err := sys.Bookings.FindByUserID(demo.Alice.ID)
			require.NoError(t, err)
			assert.Len(t, byAlice, 1)

			seats, err := sys.Catalog.AvailableSeats(context.Background(), demo.BandX.ID)
			require.NoError(t, err)
			assert.Len(t, seats, 2)
		})
	}
}

func TestSystems_AreIndependent(t *testing.T) {
	first, err := app.NewSystem(app.Options{Strategy: services.StrategyLockFree})
	require.NoError(t, err)
	second, err := app.NewSystem(app.Options{Strategy: services.StrategyLockFree})
	require.NoError(t, err)

	_, err = first.Seed(time.Now())
	require.NoError(t, err)

	assert.Len(t, first.Catalog.ListConcerts(), 2)
	assert.Empty(t, second.Catalog.ListConcerts())
}
