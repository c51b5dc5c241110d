package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

type ConcertRepository struct {
	mu       sync.RWMutex
	concerts map[uuid.UUID]*domain.Concert
	order    []uuid.UUID
}

func NewConcertRepository() *ConcertRepository {
	return &ConcertRepository{concerts: make(map[uuid.UUID]*domain.Concert)}
}

func (r *ConcertRepository) AddConcert(concert *domain.Concert) error {
	if concert == nil {
		return fmt.Errorf("%w: concert is nil", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.concerts[concert.ID]; ok {
		return fmt.Errorf("%w: concert %s already exists", domain.ErrInvalidArgument, concert.ID)
	}

	r.concerts[concert.ID] = concert
	r.order = append(r.order, concert.ID)

	return nil
}

func (r *ConcertRepository) FindByID(id uuid.UUID) (*domain.Concert, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	concert, ok := r.concerts[id]
	return concert, ok
}

func (r *ConcertRepository) FindAll() []*domain.Concert {
	return r.filter(func(*domain.Concert) bool { return true })
}

func (r *ConcertRepository) SearchByArtist(artist string) []*domain.Concert {
	return r.filter(func(c *domain.Concert) bool { return c.Artist == artist })
}

func (r *ConcertRepository) SearchByVenue(venue string) []*domain.Concert {
	return r.filter(func(c *domain.Concert) bool { return c.Venue == venue })
}

func (r *ConcertRepository) filter(keep func(*domain.Concert) bool) []*domain.Concert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	concerts := make([]*domain.Concert, 0)
	for _, id := range r.order {
		if concert := r.concerts[id]; keep(concert) {
			concerts = append(concerts, concert)
		}
	}

	return concerts
}
