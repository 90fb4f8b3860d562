package httpHandler

import (
	"energy-server/auth"
	"energy-server/repositories"
	"energy-server/usecases"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReadingHandler struct {
	readings *usecases.ReadingUseCase
}

func NewReadingHandler(readings *usecases.ReadingUseCase) *ReadingHandler {
	return &ReadingHandler{readings: readings}
}

type AddReadingRequest struct {
	Power  float64 `json:"power"`
	Energy float64 `json:"energy"`
	Cost   float64 `json:"cost"`
}

// AddReading stores one sample for the authenticated user.
func (h *ReadingHandler) AddReading(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "access token required",
		})
		return
	}

	var req AddReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request body",
		})
		return
	}

	if _, err := h.readings.Add(claims.UserID, req.Power, req.Energy, req.Cost); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not save reading",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reading saved",
	})
}

// ListReadings returns the user's readings, newest first, capped at 100.
func (h *ReadingHandler) ListReadings(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "access token required",
		})
		return
	}

	readings, err := h.readings.List(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not load readings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"readings": readings,
	})
}

// LatestReading returns the user's most recent sample.
func (h *ReadingHandler) LatestReading(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "access token required",
		})
		return
	}

	reading, err := h.readings.Latest(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "no readings yet",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "could not load reading",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reading": reading,
	})
}

// CacheStats reports latest-reading cache counters.
func (h *ReadingHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.readings.CacheStats(),
	})
}
