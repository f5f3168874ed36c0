package cache

import (
	"context"
	"testing"
	"time"

	"gamebuddy-user/internal/domain/user"

	"github.com/google/uuid"
)

func TestMemoryUserCache_SetGetInvalidate(t *testing.T) {
	userCache := NewMemoryUserCache()
	view := &user.View{UserID: uuid.New(), UserName: "gamer42"}

	if err := userCache.SetView(context.Background(), view, time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cached, err := userCache.GetView(context.Background(), view.UserID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached == nil || cached.UserName != "gamer42" {
		t.Fatalf("Expected cached view for gamer42, got %v", cached)
	}

	if err := userCache.Invalidate(context.Background(), view.UserID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cached, err = userCache.GetView(context.Background(), view.UserID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached != nil {
		t.Fatal("Expected cache miss after invalidation")
	}
}

func TestMemoryUserCache_MissReturnsNil(t *testing.T) {
	userCache := NewMemoryUserCache()

	cached, err := userCache.GetView(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached != nil {
		t.Fatal("Expected nil view on cache miss")
	}
}

func TestMemoryUserCache_Expiry(t *testing.T) {
	userCache := NewMemoryUserCache()
	view := &user.View{UserID: uuid.New(), UserName: "gamer42"}

	if err := userCache.SetView(context.Background(), view, time.Nanosecond); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	time.Sleep(time.Millisecond)

	cached, err := userCache.GetView(context.Background(), view.UserID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached != nil {
		t.Fatal("Expected expired entry to be a miss")
	}
}
