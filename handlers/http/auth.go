package httpHandler

import (
	"energy-server/auth"
	"energy-server/entities"
	"energy-server/repositories"
	"energy-server/usecases"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users  *usecases.UserUseCase
	tokens *auth.TokenService
}

func NewAuthHandler(users *usecases.UserUseCase, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userSummary is the user object shape for register/login responses.
func userSummary(user *entities.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"created_at": user.CreatedAt,
	}
}

// Register creates an account and logs it straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request body",
		})
		return
	}

	user, err := h.users.Register(req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		// validation and duplicate-email failures are the caller's to
		// fix; anything else is a store failure and stays generic
		var invalid *usecases.ValidationError
		if errors.As(err, &invalid) || errors.Is(err, repositories.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not create account",
		})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userSummary(user),
		"token":   token,
	})
}

// Login authenticates and returns a fresh session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request body",
		})
		return
	}

	user, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": usecases.ErrInvalidCredentials.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "login failed",
		})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userSummary(user),
		"token":   token,
	})
}
