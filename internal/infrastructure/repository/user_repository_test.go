package repository_test

import (
	"context"
	"testing"
	"time"

	"gamebuddy-user/internal/domain/friendship"
	"gamebuddy-user/internal/domain/review"
	"gamebuddy-user/internal/domain/user"
	"gamebuddy-user/internal/infrastructure/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&user.User{}, &review.Review{}, &friendship.Friendship{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	created := user.NewUser("gamer42", "gamer42@example.com", "hashed", user.GenderMale, 30)
	assert.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "gamer42", got.UserName)
	assert.Nil(t, got.AverageRating)

	byName, err := repo.GetByUserName(ctx, "gamer42")
	assert.NoError(t, err)
	assert.NotNil(t, byName)
	assert.Equal(t, created.UserID, byName.UserID)
}

func TestUserRepository_GetMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	got, err := repo.GetByUserName(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	created := user.NewUser("gamer42", "gamer42@example.com", "hashed", user.GenderMale, 30)
	assert.NoError(t, repo.Create(ctx, created))

	exists, err := repo.ExistsByUserName(ctx, "gamer42")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "gamer42@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@example.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_UpdatePersistsLanguagesAndRating(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	created := user.NewUser("gamer42", "gamer42@example.com", "hashed", user.GenderMale, 30)
	assert.NoError(t, repo.Create(ctx, created))

	rating := 4.5
	created.AverageRating = &rating
	created.PreferredLanguages = []user.Language{user.LanguageEnglish, user.LanguageGerman}
	assert.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got.AverageRating)
	assert.Equal(t, 4.5, *got.AverageRating)
	assert.Equal(t, []user.Language{user.LanguageEnglish, user.LanguageGerman}, got.PreferredLanguages)
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	created := user.NewUser("gamer42", "gamer42@example.com", "hashed", user.GenderMale, 30)
	assert.NoError(t, repo.Create(ctx, created))
	assert.NoError(t, repo.Delete(ctx, created.UserID))

	got, err := repo.GetByID(ctx, created.UserID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_FindByCriteria(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(setupTestDB(t))

	rated := user.NewUser("rated", "rated@example.com", "hashed", user.GenderFemale, 25)
	rating := 4.0
	rated.AverageRating = &rating
	assert.NoError(t, repo.Create(ctx, rated))

	unrated := user.NewUser("unrated", "unrated@example.com", "hashed", user.GenderFemale, 25)
	assert.NoError(t, repo.Create(ctx, unrated))

	tooOld := user.NewUser("veteran", "veteran@example.com", "hashed", user.GenderFemale, 60)
	tooOld.AverageRating = &rating
	assert.NoError(t, repo.Create(ctx, tooOld))

	male := user.NewUser("other", "other@example.com", "hashed", user.GenderMale, 25)
	male.AverageRating = &rating
	assert.NoError(t, repo.Create(ctx, male))

	users, err := repo.FindByCriteria(ctx, 18, 40, 0, 5, []user.Gender{user.GenderFemale})
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "rated", users[0].UserName)

	// Widest bounds still exclude users without a stored rating.
	users, err = repo.FindByCriteria(ctx, 0, 100, 0, 5, user.AllGenders())
	assert.NoError(t, err)
	assert.Len(t, users, 3)
}
