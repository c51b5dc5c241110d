package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srgjo27/concert_booking/internal/core/domain"
	"github.com/srgjo27/concert_booking/internal/core/ports"
)

// CatalogService serves read-only concert queries. It never takes the
// booking lock.
type CatalogService struct {
	concertRepo ports.ConcertRepository
	cache       ports.SeatCache
	logger      logrus.FieldLogger
}

// NewCatalogService accepts a nil cache, in which case seat availability is
// computed on every call.
func NewCatalogService(concertRepo ports.ConcertRepository, cache ports.SeatCache, logger logrus.FieldLogger) *CatalogService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &CatalogService{
		concertRepo: concertRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *CatalogService) ListConcerts() []*domain.Concert {
	return s.concertRepo.FindAll()
}

func (s *CatalogService) FindConcert(id uuid.UUID) (*domain.Concert, bool) {
	return s.concertRepo.FindByID(id)
}

func (s *CatalogService) SearchByArtist(artist string) []*domain.Concert {
	return s.concertRepo.SearchByArtist(artist)
}

func (s *CatalogService) SearchByVenue(venue string) []*domain.Concert {
	return s.concertRepo.SearchByVenue(venue)
}

func (s *CatalogService) AvailableSeats(ctx context.Context, concertID uuid.UUID) ([]domain.SeatView, error) {
	concert, ok := s.concertRepo.FindByID(concertID)
	if !ok {
		return nil, fmt.Errorf("%w: concert %s not found", domain.ErrInvalidArgument, concertID)
	}

	logger := s.logger.WithField("concert_id", concertID)

	if s.cache != nil {
		seats, hit, err := s.cache.Get(ctx, concertID)
		if err != nil {
			logger.WithError(err).Warn("failed to read seat cache")
		} else if hit {
			return seats, nil
		}
	}

	seats := make([]domain.SeatView, 0)
	for _, seat := range concert.Seats() {
		if seat.IsAvailable() {
			seats = append(seats, seat.View())
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, concertID, seats); err != nil {
			logger.WithError(err).Warn("failed to write seat cache")
		}
	}

	return seats, nil
}
