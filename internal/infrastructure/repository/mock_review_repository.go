package repository

import (
	"context"
	"sort"
	"sync"

	domain "gamebuddy-user/internal/domain/review"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory review.Repository for tests.
type MockReviewRepository struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]*domain.Review
}

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[uuid.UUID]*domain.Review),
	}
}

func (r *MockReviewRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *review
	r.reviews[review.ReviewID] = &stored
	return nil
}

func (r *MockReviewRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (r *MockReviewRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.reviews[id]
	return ok, nil
}

func (r *MockReviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reviews, id)
	return nil
}

func (r *MockReviewRepository) ListByReviewedUserID(_ context.Context, reviewedUserID uuid.UUID) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var reviews []*domain.Review
	for _, review := range r.reviews {
		if review.ReviewedUserID == reviewedUserID {
			copied := *review
			reviews = append(reviews, &copied)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
	})
	return reviews, nil
}

var _ domain.Repository = (*MockReviewRepository)(nil)
