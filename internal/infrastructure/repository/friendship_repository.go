package repository

import (
	"context"

	domain "gamebuddy-user/internal/domain/friendship"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) domain.Repository {
	return &FriendshipRepository{
		db: db,
	}
}

func (r *FriendshipRepository) Create(ctx context.Context, edge *domain.Friendship) error {
	return r.db.WithContext(ctx).Create(edge).Error
}

func (r *FriendshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Friendship{}, "friendship_id = ?", id).Error
}

func (r *FriendshipRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Friendship, error) {
	var edges []*domain.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&edges).Error
	return edges, err
}

func (r *FriendshipRepository) ListAll(ctx context.Context) ([]*domain.Friendship, error) {
	var edges []*domain.Friendship
	err := r.db.WithContext(ctx).Order("created_at").Find(&edges).Error
	return edges, err
}

func (r *FriendshipRepository) ExistsEdge(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	return count > 0, err
}
