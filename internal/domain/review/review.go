package review

import (
	"time"

	"github.com/google/uuid"
)

// Confirmation records whether a reviewer vouched for the reviewed user's
// claimed gender or age.
type Confirmation string

const (
	ConfirmationConfirmed    Confirmation = "CONFIRMED"
	ConfirmationNotConfirmed Confirmation = "NOT_CONFIRMED"
	ConfirmationUndecided    Confirmation = "UNDECIDED"
)

// Review is a peer rating left by one user for another. Reviews are
// immutable after creation; the only mutation is deletion by id.
type Review struct {
	ReviewID           uuid.UUID    `json:"review_id" gorm:"type:uuid;primaryKey"`
	ReviewerUserID     uuid.UUID    `json:"reviewer_user_id" gorm:"type:uuid;not null;index"`
	ReviewedUserID     uuid.UUID    `json:"reviewed_user_id" gorm:"type:uuid;not null;index"`
	Rating             float64      `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment            string       `json:"comment"`
	GenderConfirmation Confirmation `json:"gender_confirmation" gorm:"type:text;default:UNDECIDED"`
	AgeConfirmation    Confirmation `json:"age_confirmation" gorm:"type:text;default:UNDECIDED"`
	CreatedAt          time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

// CreateRequest represents the request to create a review
type CreateRequest struct {
	ReviewerUserID     uuid.UUID    `json:"reviewer_user_id" validate:"required"`
	ReviewedUserID     uuid.UUID    `json:"reviewed_user_id" validate:"required"`
	Rating             float64      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment            string       `json:"comment"`
	GenderConfirmation Confirmation `json:"gender_confirmation" validate:"omitempty,oneof=CONFIRMED NOT_CONFIRMED UNDECIDED"`
	AgeConfirmation    Confirmation `json:"age_confirmation" validate:"omitempty,oneof=CONFIRMED NOT_CONFIRMED UNDECIDED"`
}

// NewReview creates a review with a generated id and creation timestamp.
func NewReview(req *CreateRequest) *Review {
	genderConfirmation := req.GenderConfirmation
	if genderConfirmation == "" {
		genderConfirmation = ConfirmationUndecided
	}
	ageConfirmation := req.AgeConfirmation
	if ageConfirmation == "" {
		ageConfirmation = ConfirmationUndecided
	}
	return &Review{
		ReviewID:           uuid.New(),
		ReviewerUserID:     req.ReviewerUserID,
		ReviewedUserID:     req.ReviewedUserID,
		Rating:             req.Rating,
		Comment:            req.Comment,
		GenderConfirmation: genderConfirmation,
		AgeConfirmation:    ageConfirmation,
		CreatedAt:          time.Now(),
	}
}
