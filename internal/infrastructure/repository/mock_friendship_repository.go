package repository

import (
	"context"
	"sort"
	"sync"

	domain "gamebuddy-user/internal/domain/friendship"

	"github.com/google/uuid"
)

// MockFriendshipRepository is an in-memory friendship.Repository for tests.
// CreateErr, when set, is returned once by Create and then cleared. With
// FailOnCall set to n, only the n-th Create call fails; tests use that to
// force the second edge write of a friendship to fail.
type MockFriendshipRepository struct {
	mu          sync.RWMutex
	edges       map[uuid.UUID]*domain.Friendship
	CreateErr   error
	FailOnCall  int
	createCalls int
}

func NewMockFriendshipRepository() *MockFriendshipRepository {
	return &MockFriendshipRepository{
		edges: make(map[uuid.UUID]*domain.Friendship),
	}
}

func (r *MockFriendshipRepository) Create(_ context.Context, edge *domain.Friendship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.CreateErr != nil && (r.FailOnCall == 0 || r.createCalls == r.FailOnCall) {
		err := r.CreateErr
		r.CreateErr = nil
		return err
	}
	stored := *edge
	r.edges[edge.FriendshipID] = &stored
	return nil
}

func (r *MockFriendshipRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, id)
	return nil
}

func (r *MockFriendshipRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Friendship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var edges []*domain.Friendship
	for _, edge := range r.edges {
		if edge.UserID == userID {
			copied := *edge
			edges = append(edges, &copied)
		}
	}
	sortEdges(edges)
	return edges, nil
}

func (r *MockFriendshipRepository) ListAll(_ context.Context) ([]*domain.Friendship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	edges := make([]*domain.Friendship, 0, len(r.edges))
	for _, edge := range r.edges {
		copied := *edge
		edges = append(edges, &copied)
	}
	sortEdges(edges)
	return edges, nil
}

func (r *MockFriendshipRepository) ExistsEdge(_ context.Context, userID, friendID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, edge := range r.edges {
		if edge.UserID == userID && edge.FriendID == friendID {
			return true, nil
		}
	}
	return false, nil
}

func sortEdges(edges []*domain.Friendship) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].CreatedAt.Before(edges[j].CreatedAt)
	})
}

var _ domain.Repository = (*MockFriendshipRepository)(nil)
