package friendship

import (
	"context"

	"gamebuddy-user/internal/domain/user"

	"github.com/google/uuid"
)

// Repository defines the interface for friendship edge data access
type Repository interface {
	Create(ctx context.Context, edge *Friendship) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*Friendship, error)
	ListAll(ctx context.Context) ([]*Friendship, error)
	ExistsEdge(ctx context.Context, userID, friendID uuid.UUID) (bool, error)
}

// Service defines the friendship business logic
type Service interface {
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error
	GetFriends(ctx context.Context, userID uuid.UUID) ([]*user.View, error)
	GetAllFriendships(ctx context.Context) ([]*Friendship, error)
}
