package repository

import (
	"context"
	"sync"

	domain "gamebuddy-user/internal/domain/user"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory user.Repository for tests and local
// development without a database.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (r *MockUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	r.users[user.UserID] = &stored
	return nil
}

func (r *MockUserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *MockUserRepository) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.UserName == userName {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MockUserRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *MockUserRepository) ExistsByUserName(_ context.Context, userName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

func (r *MockUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *MockUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user
	r.users[user.UserID] = &stored
	return nil
}

func (r *MockUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *MockUserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *MockUserRepository) FindByCriteria(_ context.Context, minAge, maxAge int, minRating, maxRating float64, genders []domain.Gender) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genderSet := make(map[domain.Gender]bool, len(genders))
	for _, g := range genders {
		genderSet[g] = true
	}

	var users []*domain.User
	for _, user := range r.users {
		if user.Age < minAge || user.Age > maxAge {
			continue
		}
		// No stored rating means the user falls outside every rating range.
		if user.AverageRating == nil || *user.AverageRating < minRating || *user.AverageRating > maxRating {
			continue
		}
		if !genderSet[user.Gender] {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

var _ domain.Repository = (*MockUserRepository)(nil)
