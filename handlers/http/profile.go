package httpHandler

import (
	"energy-server/auth"
	"energy-server/repositories"
	"energy-server/usecases"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	users *usecases.UserUseCase
}

func NewProfileHandler(users *usecases.UserUseCase) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// GetProfile returns the authenticated user's full record. The entity
// marshals without the password hash, so it goes out as-is.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "access token required",
		})
		return
	}

	user, err := h.users.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "user not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not load profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
