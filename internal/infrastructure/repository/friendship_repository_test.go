package repository_test

import (
	"context"
	"testing"

	"gamebuddy-user/internal/domain/friendship"
	"gamebuddy-user/internal/infrastructure/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFriendshipRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFriendshipRepository(setupTestDB(t))

	alice, bob := uuid.New(), uuid.New()
	forward := friendship.NewEdge(alice, bob)
	backward := friendship.NewEdge(bob, alice)
	assert.NoError(t, repo.Create(ctx, forward))
	assert.NoError(t, repo.Create(ctx, backward))

	edges, err := repo.ListByUserID(ctx, alice)
	assert.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, bob, edges[0].FriendID)

	all, err := repo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFriendshipRepository_ExistsEdgeIsDirected(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFriendshipRepository(setupTestDB(t))

	alice, bob := uuid.New(), uuid.New()
	assert.NoError(t, repo.Create(ctx, friendship.NewEdge(alice, bob)))

	exists, err := repo.ExistsEdge(ctx, alice, bob)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsEdge(ctx, bob, alice)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFriendshipRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFriendshipRepository(setupTestDB(t))

	alice, bob := uuid.New(), uuid.New()
	edge := friendship.NewEdge(alice, bob)
	assert.NoError(t, repo.Create(ctx, edge))
	assert.NoError(t, repo.Delete(ctx, edge.FriendshipID))

	edges, err := repo.ListByUserID(ctx, alice)
	assert.NoError(t, err)
	assert.Len(t, edges, 0)
}

func TestFriendshipRepository_DuplicateEdgeRejected(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFriendshipRepository(setupTestDB(t))

	alice, bob := uuid.New(), uuid.New()
	assert.NoError(t, repo.Create(ctx, friendship.NewEdge(alice, bob)))
	assert.Error(t, repo.Create(ctx, friendship.NewEdge(alice, bob)))
}
