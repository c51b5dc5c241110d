package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/concert_booking/internal/core/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (r *UserRepository) AddUser(user *domain.User) error {
	if user == nil || user.ID == uuid.Nil {
		return fmt.Errorf("%w: user is nil or has no id", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return fmt.Errorf("%w: user %s already exists", domain.ErrInvalidArgument, user.ID)
	}
	r.users[user.ID] = user

	return nil
}

func (r *UserRepository) FindByID(id uuid.UUID) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	return user, ok
}
