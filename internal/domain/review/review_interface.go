package review

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for review data access. GetByID returns
// nil, nil when no row matches.
type Repository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByReviewedUserID(ctx context.Context, reviewedUserID uuid.UUID) ([]*Review, error)
}

// Service defines the review lifecycle business logic
type Service interface {
	CreateReview(ctx context.Context, req *CreateRequest) (*Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
	ListReviewsForUser(ctx context.Context, reviewedUserID uuid.UUID) ([]*Review, error)
}
