package friendship

import (
	"time"

	"github.com/google/uuid"
)

// Friendship is one directed edge of a mutual friendship: the row owned by
// UserID pointing at FriendID. A confirmed friendship between A and B is
// materialized as two edges, one owned by each side.
type Friendship struct {
	FriendshipID uuid.UUID `json:"friendship_id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_friendships_edge"`
	FriendID     uuid.UUID `json:"friend_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_friendships_edge"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// NewEdge creates one directed edge with a fresh id.
func NewEdge(userID, friendID uuid.UUID) *Friendship {
	return &Friendship{
		FriendshipID: uuid.New(),
		UserID:       userID,
		FriendID:     friendID,
		CreatedAt:    time.Now(),
	}
}

// AddFriendRequest represents the request body of the add-friend operation.
// The owning user id comes from the URL path.
type AddFriendRequest struct {
	FriendID uuid.UUID `json:"friend_id" validate:"required"`
}
