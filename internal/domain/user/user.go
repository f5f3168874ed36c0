package user

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a user profile
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// AllGenders lists every gender value, used as the default criteria filter.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Language a user prefers to play in
type Language string

const (
	LanguageEnglish    Language = "ENGLISH"
	LanguageGerman     Language = "GERMAN"
	LanguageFrench     Language = "FRENCH"
	LanguageSpanish    Language = "SPANISH"
	LanguagePortuguese Language = "PORTUGUESE"
	LanguageTurkish    Language = "TURKISH"
	LanguageRussian    Language = "RUSSIAN"
	LanguageJapanese   Language = "JAPANESE"
	LanguageKorean     Language = "KOREAN"
	LanguageChinese    Language = "CHINESE"
)

// AllLanguages lists the supported language preferences.
func AllLanguages() []Language {
	return []Language{
		LanguageEnglish,
		LanguageGerman,
		LanguageFrench,
		LanguageSpanish,
		LanguagePortuguese,
		LanguageTurkish,
		LanguageRussian,
		LanguageJapanese,
		LanguageKorean,
		LanguageChinese,
	}
}

// Default profile photos. A gender change resets the photo to the matching
// default; only premium users may set a photo directly.
const (
	DefaultProfilePhoto       = "https://cdn.gamebuddy.app/avatars/gamebuddy-logo.png"
	DefaultMaleProfilePhoto   = "https://cdn.gamebuddy.app/avatars/male-avatar.png"
	DefaultFemaleProfilePhoto = "https://cdn.gamebuddy.app/avatars/female-avatar.png"
)

// User represents a user in the system. AverageRating is derived state:
// the mean of all review ratings targeting this user, nil until the first
// review arrives.
type User struct {
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;primaryKey"`
	UserName           string     `json:"user_name" gorm:"unique;not null"`
	Email              string     `json:"email" gorm:"unique;not null"`
	Password           string     `json:"-" gorm:"not null"`
	Gender             Gender     `json:"gender" gorm:"type:text;not null"`
	Age                int        `json:"age" gorm:"not null"`
	ProfilePhoto       string     `json:"profile_photo"`
	IsPremium          bool       `json:"is_premium" gorm:"not null;default:false"`
	PreferredLanguages []Language `json:"preferred_languages,omitempty" gorm:"serializer:json"`
	AverageRating      *float64   `json:"average_rating,omitempty"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewUser creates a user with a generated id and registration defaults:
// non-premium, logo avatar, no rating, no language preferences.
func NewUser(userName, email, hashedPassword string, gender Gender, age int) *User {
	return &User{
		UserID:       uuid.New(),
		UserName:     userName,
		Email:        email,
		Password:     hashedPassword,
		Gender:       gender,
		Age:          age,
		ProfilePhoto: DefaultProfilePhoto,
		IsPremium:    false,
		CreatedAt:    time.Now(),
	}
}

// View is the outward projection of a user. The password hash never leaves
// the service layer.
type View struct {
	UserID             uuid.UUID  `json:"user_id"`
	UserName           string     `json:"user_name"`
	Email              string     `json:"email"`
	Gender             Gender     `json:"gender"`
	Age                int        `json:"age"`
	ProfilePhoto       string     `json:"profile_photo"`
	IsPremium          bool       `json:"is_premium"`
	PreferredLanguages []Language `json:"preferred_languages,omitempty"`
	AverageRating      *float64   `json:"average_rating,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// View returns the outward projection of the user.
func (u *User) View() *View {
	return &View{
		UserID:             u.UserID,
		UserName:           u.UserName,
		Email:              u.Email,
		Gender:             u.Gender,
		Age:                u.Age,
		ProfilePhoto:       u.ProfilePhoto,
		IsPremium:          u.IsPremium,
		PreferredLanguages: u.PreferredLanguages,
		AverageRating:      u.AverageRating,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// RegisterRequest represents the request to register a user
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
	Gender   Gender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Age      int    `json:"age" validate:"required,gte=0,lte=100"`
}

// RegisterResponse carries the generated id of a freshly registered user
type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// UpdateRequest represents a partial user update. A nil field leaves the
// corresponding user field unchanged.
type UpdateRequest struct {
	UserName           *string     `json:"user_name,omitempty" validate:"omitempty,min=3,max=20"`
	Email              *string     `json:"email,omitempty" validate:"omitempty,email"`
	Password           *string     `json:"password,omitempty" validate:"omitempty,min=8,max=20"`
	Gender             *Gender     `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Age                *int        `json:"age,omitempty" validate:"omitempty,gte=0,lte=100"`
	ProfilePhoto       *string     `json:"profile_photo,omitempty"`
	PreferredLanguages *[]Language `json:"preferred_languages,omitempty"`
}

// Criteria filters users by age, rating and gender ranges. Nil bounds
// widen to age 0-100, rating 0-5 and all genders.
type Criteria struct {
	MinAge    *int
	MaxAge    *int
	MinRating *float64
	MaxRating *float64
	Genders   []Gender
}
