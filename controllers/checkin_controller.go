package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitquest/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CheckInRequest carries the verified scan event. Timestamp is optional
// and defaults to the server clock; Source names the verification method.
type CheckInRequest struct {
	Timestamp string `json:"timestamp,omitempty"`
	Source    string `json:"source,omitempty"` // "qr", "location"
}

// CheckIn handles the daily check-in: streak increment, rewards, badge
// re-evaluation and challenge scan counters.
func CheckIn(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	// The body is optional; a bare POST checks in at the server clock.
	var req CheckInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	now := time.Now().UTC()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp, expected RFC3339"})
			return
		}
		now = parsed.UTC()
	}

	result, err := services.CheckIn(userID, now)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{"error": "Already checked in today"})
		case err == mongo.ErrNoDocuments:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record check-in"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
