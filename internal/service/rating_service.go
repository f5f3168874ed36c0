package service

import (
	"context"
	"sync"
	"time"

	apperrors "gamebuddy-user/internal/errors"

	reviewdomain "gamebuddy-user/internal/domain/review"
	userdomain "gamebuddy-user/internal/domain/user"
	"gamebuddy-user/pkg/logger"

	"github.com/google/uuid"
)

// RatingAggregator keeps User.AverageRating consistent with the review
// log. It is the single recompute entry point: every review mutation path
// (insert and delete) goes through Recompute, so the derived field can
// never drift between call sites.
type RatingAggregator struct {
	userRepo   userdomain.Repository
	reviewRepo reviewdomain.Repository
	userCache  userdomain.Cache

	// one mutex per reviewed user, so concurrent recomputes for the same
	// user cannot lose an update on the read-modify-write of AverageRating
	locks sync.Map
}

// NewRatingAggregator creates the aggregator. userCache may be nil when no
// cache is wired; it is only ever invalidated, never read.
func NewRatingAggregator(userRepo userdomain.Repository, reviewRepo reviewdomain.Repository, userCache userdomain.Cache) *RatingAggregator {
	return &RatingAggregator{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
		userCache:  userCache,
	}
}

func (a *RatingAggregator) lockFor(userID uuid.UUID) *sync.Mutex {
	lock, _ := a.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Recompute recalculates the reviewed user's average rating as the exact
// arithmetic mean of all persisted reviews targeting that user, nil when
// none remain. Callers invoke it after the review row itself has been
// written or removed, so the stored rows are the complete input: for an
// insert the mean over n+1 rows equals (sum of the previous n ratings plus
// the new one) / (n+1), and a first review yields its own rating with no
// phantom-zero bias.
func (a *RatingAggregator) Recompute(ctx context.Context, reviewedUserID uuid.UUID) error {
	lock := a.lockFor(reviewedUserID)
	lock.Lock()
	defer lock.Unlock()

	user, err := a.userRepo.GetByID(ctx, reviewedUserID)
	if err != nil {
		return apperrors.Dependency("failed to load reviewed user", err)
	}
	if user == nil {
		return apperrors.NotFound("user", reviewedUserID.String())
	}

	reviews, err := a.reviewRepo.ListByReviewedUserID(ctx, reviewedUserID)
	if err != nil {
		return apperrors.Dependency("failed to list reviews", err)
	}

	if len(reviews) == 0 {
		user.AverageRating = nil
	} else {
		var sum float64
		for _, review := range reviews {
			sum += review.Rating
		}
		average := sum / float64(len(reviews))
		user.AverageRating = &average
	}
	user.UpdatedAt = time.Now()

	if err := a.userRepo.Update(ctx, user); err != nil {
		return apperrors.Dependency("failed to persist average rating", err)
	}

	if a.userCache != nil {
		if err := a.userCache.Invalidate(ctx, reviewedUserID); err != nil {
			logger.Warn("Failed to invalidate cached view for user %s: %v", reviewedUserID, err)
		}
	}

	logger.Debug("Recomputed average rating for user %s over %d reviews", reviewedUserID, len(reviews))
	return nil
}
