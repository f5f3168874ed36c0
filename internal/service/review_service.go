package service

import (
	"context"

	reviewdomain "gamebuddy-user/internal/domain/review"
	userdomain "gamebuddy-user/internal/domain/user"
	apperrors "gamebuddy-user/internal/errors"
	"gamebuddy-user/pkg/logger"

	"github.com/google/uuid"
)

// reviewService implements the review lifecycle: validation, persistence
// and the synchronous rating recompute that keeps the reviewed user's
// average consistent before the call returns.
type reviewService struct {
	reviewRepo reviewdomain.Repository
	userRepo   userdomain.Repository
	aggregator *RatingAggregator
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo reviewdomain.Repository, userRepo userdomain.Repository, aggregator *RatingAggregator) reviewdomain.Service {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		aggregator: aggregator,
	}
}

// CreateReview validates and persists a review, then recomputes the
// reviewed user's average rating before returning. Self-reviews and
// reviews between strangers are permitted.
func (s *reviewService) CreateReview(ctx context.Context, req *reviewdomain.CreateRequest) (*reviewdomain.Review, error) {
	logger.Info("Creating review for user %s by %s", req.ReviewedUserID, req.ReviewerUserID)

	if req.ReviewerUserID == uuid.Nil {
		return nil, apperrors.Validation("reviewer_user_id", "must not be blank")
	}
	if req.ReviewedUserID == uuid.Nil {
		return nil, apperrors.Validation("reviewed_user_id", "must not be blank")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("rating", "must be between 1 and 5")
	}

	// The reviewed user must resolve before anything is written, so the
	// aggregation step can never run against a missing user.
	exists, err := s.userRepo.ExistsByID(ctx, req.ReviewedUserID)
	if err != nil {
		return nil, apperrors.Dependency("failed to check reviewed user", err)
	}
	if !exists {
		return nil, apperrors.NotFound("user", req.ReviewedUserID.String())
	}

	review := reviewdomain.NewReview(req)
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("Failed to create review: %v", err)
		return nil, apperrors.Dependency("failed to create review", err)
	}

	if err := s.aggregator.Recompute(ctx, req.ReviewedUserID); err != nil {
		logger.Error("Failed to recompute rating for user %s: %v", req.ReviewedUserID, err)
		return nil, err
	}

	logger.Info("Review created successfully with ID: %s", review.ReviewID)
	return review, nil
}

// GetReview retrieves a review by ID
func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*reviewdomain.Review, error) {
	logger.Debug("Getting review with ID: %s", id)

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Dependency("failed to get review", err)
	}
	if review == nil {
		return nil, apperrors.NotFound("review", id.String())
	}

	return review, nil
}

// DeleteReview removes a review and recomputes the reviewed user's
// average from the remaining ones.
func (s *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	logger.Info("Deleting review with ID: %s", id)

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.Dependency("failed to get review", err)
	}
	if review == nil {
		return apperrors.NotFound("review", id.String())
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete review: %v", err)
		return apperrors.Dependency("failed to delete review", err)
	}

	if err := s.aggregator.Recompute(ctx, review.ReviewedUserID); err != nil {
		logger.Error("Failed to recompute rating for user %s: %v", review.ReviewedUserID, err)
		return err
	}

	logger.Info("Review deleted successfully with ID: %s", id)
	return nil
}

// ListReviewsForUser returns all reviews targeting the given user. An
// empty result is a valid success, not an error.
func (s *reviewService) ListReviewsForUser(ctx context.Context, reviewedUserID uuid.UUID) ([]*reviewdomain.Review, error) {
	logger.Debug("Listing reviews for user: %s", reviewedUserID)

	reviews, err := s.reviewRepo.ListByReviewedUserID(ctx, reviewedUserID)
	if err != nil {
		return nil, apperrors.Dependency("failed to list reviews", err)
	}
	if reviews == nil {
		reviews = []*reviewdomain.Review{}
	}

	return reviews, nil
}
