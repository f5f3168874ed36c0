package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for user data access. Lookups return
// nil, nil when no row matches.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUserName(ctx context.Context, userName string) (*User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByUserName(ctx context.Context, userName string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*User, error)
	FindByCriteria(ctx context.Context, minAge, maxAge int, minRating, maxRating float64, genders []Gender) ([]*User, error)
}

// Cache is a read-through cache for user views on the directory read path.
// The rating aggregator and friendship manager never read it; mutation
// paths only invalidate. A miss returns nil, nil.
type Cache interface {
	GetView(ctx context.Context, id uuid.UUID) (*View, error)
	SetView(ctx context.Context, view *View, ttl time.Duration) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// Service defines the user directory business logic
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*View, error)
	FindByUserName(ctx context.Context, userName string) (*View, error)
	GetAll(ctx context.Context) ([]*View, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*View, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MakePremium(ctx context.Context, id uuid.UUID) (*View, error)
	MatchPassword(ctx context.Context, userName, plaintext string) (bool, error)
	FilterByCriteria(ctx context.Context, criteria *Criteria) ([]*View, error)
}
