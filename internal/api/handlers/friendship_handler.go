package handlers

import (
	"net/http"

	"gamebuddy-user/internal/domain/friendship"
	"gamebuddy-user/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FriendshipHandler handles friendship-related HTTP requests
type FriendshipHandler struct {
	friendshipService friendship.Service
}

// NewFriendshipHandler creates a new friendship handler
func NewFriendshipHandler(friendshipService friendship.Service) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipService: friendshipService,
	}
}

// AddFriend handles POST /users/:userId/add-friend
func (h *FriendshipHandler) AddFriend(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid user ID format",
		})
		return
	}

	var req friendship.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	if err := h.friendshipService.AddFriend(c.Request.Context(), userID, req.FriendID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Friend added successfully",
	})
}

// GetFriends handles GET /users/:userId/friends
func (h *FriendshipHandler) GetFriends(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid user ID format",
		})
		return
	}

	friends, err := h.friendshipService.GetFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    friends,
	})
}

// ListFriendships handles GET /friendships
func (h *FriendshipHandler) ListFriendships(c *gin.Context) {
	friendships, err := h.friendshipService.GetAllFriendships(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    friendships,
	})
}
