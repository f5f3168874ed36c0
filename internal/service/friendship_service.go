package service

import (
	"context"

	frienddomain "gamebuddy-user/internal/domain/friendship"
	userdomain "gamebuddy-user/internal/domain/user"
	apperrors "gamebuddy-user/internal/errors"
	"gamebuddy-user/pkg/logger"

	"github.com/google/uuid"
)

// friendshipService maintains the symmetric is-friend-of relation. One
// mutual friendship is two directed edge rows, created both-or-neither:
// when the second insert fails the first is compensated away, since the
// store is not assumed to span both writes in one transaction.
type friendshipService struct {
	friendshipRepo frienddomain.Repository
	userRepo       userdomain.Repository
}

// NewFriendshipService creates a new friendship service
func NewFriendshipService(friendshipRepo frienddomain.Repository, userRepo userdomain.Repository) frienddomain.Service {
	return &friendshipService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

// AddFriend creates the two edges of a mutual friendship. Both users must
// exist, or nothing is created. Re-adding an existing friendship is a
// no-op success.
func (s *friendshipService) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	logger.Info("Adding friendship between %s and %s", userID, friendID)

	if userID == friendID {
		return apperrors.Validation("friend_id", "cannot add yourself as a friend")
	}

	userExists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return apperrors.Dependency("failed to check user", err)
	}
	if !userExists {
		return apperrors.NotFound("user", userID.String())
	}

	friendExists, err := s.userRepo.ExistsByID(ctx, friendID)
	if err != nil {
		return apperrors.Dependency("failed to check friend", err)
	}
	if !friendExists {
		return apperrors.NotFound("user", friendID.String())
	}

	alreadyFriends, err := s.friendshipRepo.ExistsEdge(ctx, userID, friendID)
	if err != nil {
		return apperrors.Dependency("failed to check existing friendship", err)
	}
	if alreadyFriends {
		logger.Info("Friendship between %s and %s already exists", userID, friendID)
		return nil
	}

	forward := frienddomain.NewEdge(userID, friendID)
	if err := s.friendshipRepo.Create(ctx, forward); err != nil {
		logger.Error("Failed to create friendship edge: %v", err)
		return apperrors.Dependency("failed to create friendship", err)
	}

	backward := frienddomain.NewEdge(friendID, userID)
	if err := s.friendshipRepo.Create(ctx, backward); err != nil {
		logger.Error("Failed to create reverse friendship edge, rolling back: %v", err)
		if rollbackErr := s.friendshipRepo.Delete(ctx, forward.FriendshipID); rollbackErr != nil {
			logger.Error("Rollback of friendship edge %s failed: %v", forward.FriendshipID, rollbackErr)
			return apperrors.Dependency("failed to roll back partial friendship", rollbackErr)
		}
		return apperrors.Dependency("failed to create friendship", err)
	}

	logger.Info("Friendship completed between %s and %s", userID, friendID)
	return nil
}

// GetFriends resolves the edges owned by the user to user views. An edge
// whose friend no longer resolves is skipped, it never fails the listing.
func (s *friendshipService) GetFriends(ctx context.Context, userID uuid.UUID) ([]*userdomain.View, error) {
	logger.Debug("Listing friends of user: %s", userID)

	edges, err := s.friendshipRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Dependency("failed to list friendships", err)
	}

	friends := make([]*userdomain.View, 0, len(edges))
	for _, edge := range edges {
		friend, err := s.userRepo.GetByID(ctx, edge.FriendID)
		if err != nil {
			return nil, apperrors.Dependency("failed to resolve friend", err)
		}
		if friend == nil {
			logger.Warn("Skipping dangling friendship edge %s: friend %s no longer exists", edge.FriendshipID, edge.FriendID)
			continue
		}
		friends = append(friends, friend.View())
	}

	return friends, nil
}

// GetAllFriendships returns every edge in the store.
func (s *friendshipService) GetAllFriendships(ctx context.Context) ([]*frienddomain.Friendship, error) {
	logger.Debug("Listing all friendships")

	edges, err := s.friendshipRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Dependency("failed to list friendships", err)
	}
	if len(edges) == 0 {
		return nil, apperrors.NotFound("friendships", "")
	}

	return edges, nil
}
