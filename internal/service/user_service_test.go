package service

import (
	"context"
	"testing"
	"time"

	userdomain "gamebuddy-user/internal/domain/user"
	apperrors "gamebuddy-user/internal/errors"
	"gamebuddy-user/internal/infrastructure/cache"
	"gamebuddy-user/internal/infrastructure/repository"
	"gamebuddy-user/pkg/password"

	"github.com/google/uuid"
)

func newTestUserService() (userdomain.Service, *repository.MockUserRepository) {
	userRepo := repository.NewMockUserRepository()
	userService := NewUserService(userRepo, cache.NewMemoryUserCache(), password.NewHasher(), time.Minute)
	return userService, userRepo
}

func registerTestUser(t *testing.T, userService userdomain.Service, userName, email string) uuid.UUID {
	t.Helper()
	resp, err := userService.Register(context.Background(), &userdomain.RegisterRequest{
		UserName: userName,
		Email:    email,
		Password: "secret-password",
		Gender:   userdomain.GenderFemale,
		Age:      25,
	})
	if err != nil {
		t.Fatalf("Expected no error registering %s, got %v", userName, err)
	}
	return resp.UserID
}

func TestUserService_Register(t *testing.T) {
	userService, userRepo := newTestUserService()

	resp, err := userService.Register(context.Background(), &userdomain.RegisterRequest{
		UserName: "gamer42",
		Email:    "gamer42@example.com",
		Password: "secret-password",
		Gender:   userdomain.GenderMale,
		Age:      30,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.UserID == uuid.Nil {
		t.Fatal("Expected a generated user ID, got the zero UUID")
	}

	stored, err := userRepo.GetByID(context.Background(), resp.UserID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored == nil {
		t.Fatal("Expected user to be persisted, got nil")
	}

	if stored.Password == "secret-password" {
		t.Error("Expected password to be stored hashed, found it in plaintext")
	}
	if stored.IsPremium {
		t.Error("Expected new user to be non-premium")
	}
	if stored.ProfilePhoto != userdomain.DefaultProfilePhoto {
		t.Errorf("Expected default profile photo, got %s", stored.ProfilePhoto)
	}
	if stored.AverageRating != nil {
		t.Errorf("Expected no average rating on a fresh user, got %v", *stored.AverageRating)
	}
}

func TestUserService_Register_DuplicateUserName(t *testing.T) {
	userService, _ := newTestUserService()
	registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	_, err := userService.Register(context.Background(), &userdomain.RegisterRequest{
		UserName: "gamer42",
		Email:    "other@example.com",
		Password: "secret-password",
		Gender:   userdomain.GenderMale,
		Age:      30,
	})
	if !apperrors.IsConflict(err) {
		t.Fatalf("Expected conflict error for duplicate user name, got %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userService, _ := newTestUserService()
	registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	_, err := userService.Register(context.Background(), &userdomain.RegisterRequest{
		UserName: "othergamer",
		Email:    "gamer42@example.com",
		Password: "secret-password",
		Gender:   userdomain.GenderMale,
		Age:      30,
	})
	if !apperrors.IsConflict(err) {
		t.Fatalf("Expected conflict error for duplicate email, got %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	userService, _ := newTestUserService()

	_, err := userService.GetByID(context.Background(), uuid.New())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error, got %v", err)
	}
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	userService, _ := newTestUserService()
	id := registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	newAge := 31
	view, err := userService.Update(context.Background(), id, &userdomain.UpdateRequest{
		Age: &newAge,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if view.Age != 31 {
		t.Errorf("Expected age 31, got %d", view.Age)
	}
	if view.UserName != "gamer42" {
		t.Errorf("Expected untouched user name, got %s", view.UserName)
	}
	if view.Email != "gamer42@example.com" {
		t.Errorf("Expected untouched email, got %s", view.Email)
	}
}

func TestUserService_Update_GenderResetsProfilePhoto(t *testing.T) {
	userService, _ := newTestUserService()
	id := registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	gender := userdomain.GenderMale
	view, err := userService.Update(context.Background(), id, &userdomain.UpdateRequest{
		Gender: &gender,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if view.ProfilePhoto != userdomain.DefaultMaleProfilePhoto {
		t.Errorf("Expected male default photo after gender change, got %s", view.ProfilePhoto)
	}
}

func TestUserService_Update_ProfilePhotoRequiresPremium(t *testing.T) {
	userService, _ := newTestUserService()
	id := registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	photo := "https://cdn.gamebuddy.app/uploads/custom.png"
	view, err := userService.Update(context.Background(), id, &userdomain.UpdateRequest{
		ProfilePhoto: &photo,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if view.ProfilePhoto == photo {
		t.Error("Expected custom photo to be ignored for non-premium user")
	}

	if _, err := userService.MakePremium(context.Background(), id); err != nil {
		t.Fatalf("Expected no error making user premium, got %v", err)
	}

	view, err = userService.Update(context.Background(), id, &userdomain.UpdateRequest{
		ProfilePhoto: &photo,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if view.ProfilePhoto != photo {
		t.Errorf("Expected custom photo for premium user, got %s", view.ProfilePhoto)
	}
}

func TestUserService_Update_DuplicateUserName(t *testing.T) {
	userService, _ := newTestUserService()
	registerTestUser(t, userService, "gamer42", "gamer42@example.com")
	id := registerTestUser(t, userService, "othergamer", "other@example.com")

	taken := "gamer42"
	_, err := userService.Update(context.Background(), id, &userdomain.UpdateRequest{
		UserName: &taken,
	})
	if !apperrors.IsConflict(err) {
		t.Fatalf("Expected conflict error for taken user name, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	userService, _ := newTestUserService()
	id := registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	if err := userService.Delete(context.Background(), id); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := userService.GetByID(context.Background(), id)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error after delete, got %v", err)
	}

	if err := userService.Delete(context.Background(), id); !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error for double delete, got %v", err)
	}
}

func TestUserService_MatchPassword(t *testing.T) {
	userService, _ := newTestUserService()
	registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	matches, err := userService.MatchPassword(context.Background(), "gamer42", "secret-password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !matches {
		t.Error("Expected the correct password to match")
	}

	matches, err = userService.MatchPassword(context.Background(), "gamer42", "wrong-password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if matches {
		t.Error("Expected a wrong password not to match")
	}

	_, err = userService.MatchPassword(context.Background(), "nobody", "secret-password")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error for unknown user, got %v", err)
	}
}

func TestUserService_GetAll_Empty(t *testing.T) {
	userService, _ := newTestUserService()

	_, err := userService.GetAll(context.Background())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error for empty directory, got %v", err)
	}
}

func TestUserService_FilterByCriteria_Defaults(t *testing.T) {
	userService, userRepo := newTestUserService()
	id := registerTestUser(t, userService, "gamer42", "gamer42@example.com")
	registerTestUser(t, userService, "unrated", "unrated@example.com")

	rated, err := userRepo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	rating := 4.5
	rated.AverageRating = &rating
	if err := userRepo.Update(context.Background(), rated); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Absent bounds widen to age 0-100, rating 0-5 and all genders, but a
	// user without any rating still falls outside every rating range.
	views, err := userService.FilterByCriteria(context.Background(), &userdomain.Criteria{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("Expected 1 matching user, got %d", len(views))
	}
	if views[0].UserName != "gamer42" {
		t.Errorf("Expected the rated user, got %s", views[0].UserName)
	}
}

func TestUserService_FilterByCriteria_NoMatch(t *testing.T) {
	userService, _ := newTestUserService()
	registerTestUser(t, userService, "gamer42", "gamer42@example.com")

	minAge := 90
	_, err := userService.FilterByCriteria(context.Background(), &userdomain.Criteria{
		MinAge: &minAge,
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error for empty result, got %v", err)
	}
}
