package handlers

import (
	"net/http"

	"gamebuddy-user/internal/domain/user"

	"github.com/gin-gonic/gin"
)

// LanguageHandler serves the supported language catalog
type LanguageHandler struct{}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// ListLanguages handles GET /languages
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    user.AllLanguages(),
	})
}
