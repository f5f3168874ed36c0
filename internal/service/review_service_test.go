package service

import (
	"context"
	"testing"

	reviewdomain "gamebuddy-user/internal/domain/review"
	userdomain "gamebuddy-user/internal/domain/user"
	apperrors "gamebuddy-user/internal/errors"
	"gamebuddy-user/internal/infrastructure/repository"

	"github.com/google/uuid"
)

func newTestReviewService() (reviewdomain.Service, *repository.MockUserRepository) {
	userRepo := repository.NewMockUserRepository()
	reviewRepo := repository.NewMockReviewRepository()
	aggregator := NewRatingAggregator(userRepo, reviewRepo, nil)
	return NewReviewService(reviewRepo, userRepo, aggregator), userRepo
}

func createTestUser(t *testing.T, userRepo *repository.MockUserRepository, userName string) uuid.UUID {
	t.Helper()
	user := userdomain.NewUser(userName, userName+"@example.com", "hashed", userdomain.GenderOther, 25)
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Expected no error creating user, got %v", err)
	}
	return user.UserID
}

func averageOf(t *testing.T, userRepo *repository.MockUserRepository, id uuid.UUID) *float64 {
	t.Helper()
	user, err := userRepo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user == nil {
		t.Fatalf("Expected user %s to exist", id)
	}
	return user.AverageRating
}

func submitReview(t *testing.T, reviewService reviewdomain.Service, reviewer, reviewed uuid.UUID, rating float64) *reviewdomain.Review {
	t.Helper()
	review, err := reviewService.CreateReview(context.Background(), &reviewdomain.CreateRequest{
		ReviewerUserID: reviewer,
		ReviewedUserID: reviewed,
		Rating:         rating,
	})
	if err != nil {
		t.Fatalf("Expected no error creating review, got %v", err)
	}
	return review
}

func TestReviewService_CreateReview_AverageIsExactMean(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewer := createTestUser(t, userRepo, "reviewer")
	reviewed := createTestUser(t, userRepo, "reviewed")

	submitReview(t, reviewService, reviewer, reviewed, 5)
	if avg := averageOf(t, userRepo, reviewed); avg == nil || *avg != 5.0 {
		t.Fatalf("Expected average 5.0 after first review, got %v", avg)
	}

	submitReview(t, reviewService, reviewer, reviewed, 3)
	if avg := averageOf(t, userRepo, reviewed); avg == nil || *avg != 4.0 {
		t.Fatalf("Expected average 4.0 after two reviews, got %v", avg)
	}

	submitReview(t, reviewService, reviewer, reviewed, 4)
	if avg := averageOf(t, userRepo, reviewed); avg == nil || *avg != 4.0 {
		t.Fatalf("Expected average 4.0 after three reviews, got %v", avg)
	}
}

func TestReviewService_CreateReview_RatingBounds(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewer := createTestUser(t, userRepo, "reviewer")
	reviewed := createTestUser(t, userRepo, "reviewed")

	for _, rating := range []float64{0, 0.5, 5.5, 6} {
		_, err := reviewService.CreateReview(context.Background(), &reviewdomain.CreateRequest{
			ReviewerUserID: reviewer,
			ReviewedUserID: reviewed,
			Rating:         rating,
		})
		if !apperrors.IsValidation(err) {
			t.Errorf("Expected validation error for rating %v, got %v", rating, err)
		}
	}

	if avg := averageOf(t, userRepo, reviewed); avg != nil {
		t.Errorf("Expected no average after only rejected reviews, got %v", *avg)
	}
}

func TestReviewService_CreateReview_ReviewedUserMissing(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewer := createTestUser(t, userRepo, "reviewer")

	_, err := reviewService.CreateReview(context.Background(), &reviewdomain.CreateRequest{
		ReviewerUserID: reviewer,
		ReviewedUserID: uuid.New(),
		Rating:         4,
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error for missing reviewed user, got %v", err)
	}
}

func TestReviewService_CreateReview_DefaultsConfirmations(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewer := createTestUser(t, userRepo, "reviewer")
	reviewed := createTestUser(t, userRepo, "reviewed")

	review := submitReview(t, reviewService, reviewer, reviewed, 4)

	if review.GenderConfirmation != reviewdomain.ConfirmationUndecided {
		t.Errorf("Expected undecided gender confirmation, got %s", review.GenderConfirmation)
	}
	if review.AgeConfirmation != reviewdomain.ConfirmationUndecided {
		t.Errorf("Expected undecided age confirmation, got %s", review.AgeConfirmation)
	}
}

func TestReviewService_DeleteReview_RecomputesAverage(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewer := createTestUser(t, userRepo, "reviewer")
	reviewed := createTestUser(t, userRepo, "reviewed")

	first := submitReview(t, reviewService, reviewer, reviewed, 5)
	submitReview(t, reviewService, reviewer, reviewed, 3)

	if err := reviewService.DeleteReview(context.Background(), first.ReviewID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if avg := averageOf(t, userRepo, reviewed); avg == nil || *avg != 3.0 {
		t.Fatalf("Expected average 3.0 after deleting the 5-star review, got %v", avg)
	}
}

func TestReviewService_DeleteReview_LastReviewClearsAverage(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewer := createTestUser(t, userRepo, "reviewer")
	reviewed := createTestUser(t, userRepo, "reviewed")

	review := submitReview(t, reviewService, reviewer, reviewed, 5)

	if err := reviewService.DeleteReview(context.Background(), review.ReviewID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if avg := averageOf(t, userRepo, reviewed); avg != nil {
		t.Fatalf("Expected no average after removing the only review, got %v", *avg)
	}
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	reviewService, _ := newTestReviewService()

	err := reviewService.DeleteReview(context.Background(), uuid.New())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error, got %v", err)
	}
}

func TestReviewService_ListReviewsForUser_Empty(t *testing.T) {
	reviewService, userRepo := newTestReviewService()
	reviewed := createTestUser(t, userRepo, "reviewed")

	reviews, err := reviewService.ListReviewsForUser(context.Background(), reviewed)
	if err != nil {
		t.Fatalf("Expected no error for empty listing, got %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("Expected empty listing, got %d reviews", len(reviews))
	}
}
