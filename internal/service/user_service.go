package service

import (
	"context"
	"time"

	userdomain "gamebuddy-user/internal/domain/user"
	apperrors "gamebuddy-user/internal/errors"
	"gamebuddy-user/pkg/logger"
	"gamebuddy-user/pkg/password"

	"github.com/google/uuid"
)

const (
	defaultMinAge    = 0
	defaultMaxAge    = 100
	defaultMinRating = 0
	defaultMaxRating = 5
)

// userService implements the user directory: registration, lookup,
// partial updates, premium upgrades, password matching and criteria
// filtering. View reads go through the cache; every mutation invalidates.
type userService struct {
	userRepo  userdomain.Repository
	userCache userdomain.Cache
	hasher    password.Hasher
	cacheTTL  time.Duration
}

// NewUserService creates a new user service. userCache may be nil to
// disable view caching.
func NewUserService(userRepo userdomain.Repository, userCache userdomain.Cache, hasher password.Hasher, cacheTTL time.Duration) userdomain.Service {
	return &userService{
		userRepo:  userRepo,
		userCache: userCache,
		hasher:    hasher,
		cacheTTL:  cacheTTL,
	}
}

// Register creates a new user with registration defaults. The password is
// hashed before it is stored.
func (s *userService) Register(ctx context.Context, req *userdomain.RegisterRequest) (*userdomain.RegisterResponse, error) {
	logger.Info("Registering user with user name: %s", req.UserName)

	userNameTaken, err := s.userRepo.ExistsByUserName(ctx, req.UserName)
	if err != nil {
		return nil, apperrors.Dependency("failed to check user name", err)
	}
	if userNameTaken {
		return nil, apperrors.Conflict("user name")
	}

	emailTaken, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Dependency("failed to check email", err)
	}
	if emailTaken {
		return nil, apperrors.Conflict("email")
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Dependency("failed to hash password", err)
	}

	user := userdomain.NewUser(req.UserName, req.Email, hashed, req.Gender, req.Age)
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("Failed to create user: %v", err)
		return nil, apperrors.Dependency("failed to create user", err)
	}

	logger.Info("User registered successfully with ID: %s", user.UserID)
	return &userdomain.RegisterResponse{UserID: user.UserID}, nil
}

// GetByID retrieves a user view, read-through cached.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*userdomain.View, error) {
	logger.Debug("Getting user with ID: %s", id)

	if s.userCache != nil {
		if cached, err := s.userCache.GetView(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Dependency("failed to get user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id.String())
	}

	view := user.View()
	if s.userCache != nil {
		if err := s.userCache.SetView(ctx, view, s.cacheTTL); err != nil {
			logger.Warn("Failed to cache view for user %s: %v", id, err)
		}
	}

	return view, nil
}

// FindByUserName retrieves a user view by its unique user name.
func (s *userService) FindByUserName(ctx context.Context, userName string) (*userdomain.View, error) {
	logger.Debug("Finding user with user name: %s", userName)

	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, apperrors.Dependency("failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user", userName)
	}

	return user.View(), nil
}

// GetAll returns every registered user; an empty directory is reported as
// a not-found condition.
func (s *userService) GetAll(ctx context.Context) ([]*userdomain.View, error) {
	logger.Debug("Listing all users")

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Dependency("failed to list users", err)
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound("users", "")
	}

	views := make([]*userdomain.View, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}
	return views, nil
}

// Update applies a partial patch: only non-nil request fields overwrite
// the stored user. A gender change resets the profile photo to the gender
// default; a direct photo value applies only to premium users.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req *userdomain.UpdateRequest) (*userdomain.View, error) {
	logger.Info("Updating user with ID: %s", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Dependency("failed to get user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id.String())
	}

	if req.UserName != nil && *req.UserName != user.UserName {
		taken, err := s.userRepo.ExistsByUserName(ctx, *req.UserName)
		if err != nil {
			return nil, apperrors.Dependency("failed to check user name", err)
		}
		if taken {
			return nil, apperrors.Conflict("user name")
		}
		user.UserName = *req.UserName
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperrors.Dependency("failed to check email", err)
		}
		if taken {
			return nil, apperrors.Conflict("email")
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, apperrors.Dependency("failed to hash password", err)
		}
		user.Password = hashed
		logger.Info("Password changed for user %s", id)
	}

	if req.Gender != nil {
		user.Gender = *req.Gender
		switch *req.Gender {
		case userdomain.GenderMale:
			user.ProfilePhoto = userdomain.DefaultMaleProfilePhoto
		case userdomain.GenderFemale:
			user.ProfilePhoto = userdomain.DefaultFemaleProfilePhoto
		}
		logger.Info("Gender changed for user %s, profile photo reset to default", id)
	}

	if req.Age != nil {
		user.Age = *req.Age
	}

	// Applied after the gender reset so that a premium user sending both
	// fields ends up with the photo they asked for.
	if req.ProfilePhoto != nil && user.IsPremium {
		user.ProfilePhoto = *req.ProfilePhoto
	}

	if req.PreferredLanguages != nil {
		user.PreferredLanguages = *req.PreferredLanguages
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.Error("Failed to update user: %v", err)
		return nil, apperrors.Dependency("failed to update user", err)
	}

	s.invalidate(ctx, id)

	logger.Info("User updated successfully with ID: %s", id)
	return user.View(), nil
}

// Delete removes a user. Reviews written about the user are kept.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Info("Deleting user with ID: %s", id)

	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.Dependency("failed to check user", err)
	}
	if !exists {
		return apperrors.NotFound("user", id.String())
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user: %v", err)
		return apperrors.Dependency("failed to delete user", err)
	}

	s.invalidate(ctx, id)

	logger.Info("User deleted successfully with ID: %s", id)
	return nil
}

// MakePremium flags the user as premium.
func (s *userService) MakePremium(ctx context.Context, id uuid.UUID) (*userdomain.View, error) {
	logger.Info("Making user premium with ID: %s", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Dependency("failed to get user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id.String())
	}

	user.IsPremium = true
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Dependency("failed to update user", err)
	}

	s.invalidate(ctx, id)

	return user.View(), nil
}

// MatchPassword compares a plaintext candidate against the stored hash.
// The hash itself never leaves this layer.
func (s *userService) MatchPassword(ctx context.Context, userName, plaintext string) (bool, error) {
	logger.Debug("Matching password for user name: %s", userName)

	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return false, apperrors.Dependency("failed to find user", err)
	}
	if user == nil {
		return false, apperrors.NotFound("user", userName)
	}

	return s.hasher.Matches(plaintext, user.Password), nil
}

// FilterByCriteria filters users by age, rating and gender. Absent bounds
// widen to age 0-100, rating 0-5 and all genders. An empty result is
// reported as a not-found condition.
func (s *userService) FilterByCriteria(ctx context.Context, criteria *userdomain.Criteria) ([]*userdomain.View, error) {
	minAge := defaultMinAge
	if criteria.MinAge != nil {
		minAge = *criteria.MinAge
	}
	maxAge := defaultMaxAge
	if criteria.MaxAge != nil {
		maxAge = *criteria.MaxAge
	}
	minRating := float64(defaultMinRating)
	if criteria.MinRating != nil {
		minRating = *criteria.MinRating
	}
	maxRating := float64(defaultMaxRating)
	if criteria.MaxRating != nil {
		maxRating = *criteria.MaxRating
	}
	genders := criteria.Genders
	if len(genders) == 0 {
		genders = userdomain.AllGenders()
	}

	logger.Debug("Filtering users: age %d-%d, rating %.1f-%.1f, genders %v", minAge, maxAge, minRating, maxRating, genders)

	users, err := s.userRepo.FindByCriteria(ctx, minAge, maxAge, minRating, maxRating, genders)
	if err != nil {
		return nil, apperrors.Dependency("failed to filter users", err)
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound("users", "")
	}

	views := make([]*userdomain.View, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}
	return views, nil
}

func (s *userService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.userCache == nil {
		return
	}
	if err := s.userCache.Invalidate(ctx, id); err != nil {
		logger.Warn("Failed to invalidate cached view for user %s: %v", id, err)
	}
}
