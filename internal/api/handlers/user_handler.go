package handlers

import (
	"net/http"
	"strconv"
	"strings"

	userdomain "gamebuddy-user/internal/domain/user"
	apperrors "gamebuddy-user/internal/errors"
	"gamebuddy-user/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService userdomain.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService userdomain.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), APIResponse{
		Success: false,
		Message: err.Error(),
	})
}

// Register handles POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req userdomain.RegisterRequest

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

	resp, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    resp,
	})
}

// GetUser handles GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid user ID format",
		})
		return
	}

	view, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    view,
	})
}

// FindUser handles GET /users/findUser?userName=
func (h *UserHandler) FindUser(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "userName query parameter is required",
		})
		return
	}

	view, err := h.userService.FindByUserName(c.Request.Context(), userName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    view,
	})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	views, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    views,
	})
}

// UpdateUser handles PUT /users/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid user ID format",
		})
		return
	}

	var req userdomain.UpdateRequest
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

	view, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "User updated successfully",
		Data:    view,
	})
}

// DeleteUser handles DELETE /users/:userId
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid user ID format",
		})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}

// MakePremium handles PUT /users/:userId/make-premium
func (h *UserHandler) MakePremium(c *gin.Context) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid user ID format",
		})
		return
	}

	view, err := h.userService.MakePremium(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "User has been made premium",
		Data:    view,
	})
}

// MatchPassword handles POST /users/match-password?userName=&password=
func (h *UserHandler) MatchPassword(c *gin.Context) {
	userName := c.Query("userName")
	plaintext := c.Query("password")
	if userName == "" || plaintext == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "userName and password query parameters are required",
		})
		return
	}

	matches, err := h.userService.MatchPassword(c.Request.Context(), userName, plaintext)
	if err != nil {
		respondError(c, err)
		return
	}

	if !matches {
		c.JSON(http.StatusUnauthorized, APIResponse{
			Success: false,
			Message: "Password does not match",
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Password matches",
	})
}

// GetUsersByCriteria handles GET /users/by-criteria
func (h *UserHandler) GetUsersByCriteria(c *gin.Context) {
	criteria := &userdomain.Criteria{}

	if v := c.Query("minAge"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "minAge must be an integer"})
			return
		}
		criteria.MinAge = &n
	}
	if v := c.Query("maxAge"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "maxAge must be an integer"})
			return
		}
		criteria.MaxAge = &n
	}
	if v := c.Query("minRating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "minRating must be a number"})
			return
		}
		criteria.MinRating = &f
	}
	if v := c.Query("maxRating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "maxRating must be a number"})
			return
		}
		criteria.MaxRating = &f
	}
	if v := c.Query("genders"); v != "" {
		for _, g := range strings.Split(v, ",") {
			criteria.Genders = append(criteria.Genders, userdomain.Gender(strings.ToUpper(strings.TrimSpace(g))))
		}
	}

	views, err := h.userService.FilterByCriteria(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    views,
	})
}
