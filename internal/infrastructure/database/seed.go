package database

import (
	"fmt"
	"math/rand"
	"time"

	"gamebuddy-user/internal/domain/friendship"
	"gamebuddy-user/internal/domain/review"
	"gamebuddy-user/internal/domain/user"
	"gamebuddy-user/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedTestData resets the database and populates it with demo users,
// reviews and friendships.
//
// Behavior:
//  1. Clears existing data in the friendships, reviews and users tables.
//  2. Creates 20 users with hashed passwords, alternating genders.
//  3. Generates roughly three reviews per user and recomputes the
//     stored average rating from the inserted rows.
//  4. Creates a handful of mutual friendships as paired edge rows.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := db.Exec("DELETE FROM friendships").Error; err != nil {
		return fmt.Errorf("failed to clear friendships: %w", err)
	}
	if err := db.Exec("DELETE FROM reviews").Error; err != nil {
		return fmt.Errorf("failed to clear reviews: %w", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	logger.Info("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	genders := []user.Gender{user.GenderMale, user.GenderFemale, user.GenderOther}
	languages := user.AllLanguages()

	users := make([]*user.User, 0, 20)
	for i := 1; i <= 20; i++ {
		u := user.NewUser(
			fmt.Sprintf("player%d", i),
			fmt.Sprintf("player%d@example.com", i),
			string(hash),
			genders[i%len(genders)],
			18+r.Intn(30),
		)
		u.PreferredLanguages = []user.Language{languages[i%len(languages)]}
		if i%5 == 0 {
			u.IsPremium = true
		}

		if err := db.Create(u).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, u)
	}
	logger.Info("Seeded %d users", len(users))

	reviewCount := 0
	for _, reviewed := range users {
		total := 0.0
		n := 0
		for j := 0; j < 3; j++ {
			reviewer := users[r.Intn(len(users))]
			rating := float64(1 + r.Intn(5))

			rv := review.NewReview(&review.CreateRequest{
				ReviewerUserID: reviewer.UserID,
				ReviewedUserID: reviewed.UserID,
				Rating:         rating,
				Comment:        fmt.Sprintf("Played a few sessions with %s", reviewed.UserName),
			})
			if err := db.Create(rv).Error; err != nil {
				return fmt.Errorf("failed to seed review: %w", err)
			}
			total += rating
			n++
			reviewCount++
		}

		avg := total / float64(n)
		if err := db.Model(&user.User{}).
			Where("user_id = ?", reviewed.UserID).
			Update("average_rating", avg).Error; err != nil {
			return fmt.Errorf("failed to update average rating: %w", err)
		}
	}
	logger.Info("Seeded %d reviews", reviewCount)

	friendshipCount := 0
	for i := 0; i+1 < len(users); i += 2 {
		a, b := users[i], users[i+1]

		forward := friendship.NewEdge(a.UserID, b.UserID)
		backward := friendship.NewEdge(b.UserID, a.UserID)
		if err := db.Create(forward).Error; err != nil {
			return fmt.Errorf("failed to seed friendship: %w", err)
		}
		if err := db.Create(backward).Error; err != nil {
			return fmt.Errorf("failed to seed friendship: %w", err)
		}
		friendshipCount++
	}
	logger.Info("Seeded %d friendships", friendshipCount)

	return nil
}
