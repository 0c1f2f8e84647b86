package controllers

import (
	"errors"
	"net/http"

	"fitquest/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetProfile retrieves and returns user profile data
func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	user, err := services.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// UpdateProfile writes the editable profile fields.
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := services.UpdateProfile(userID, req.DisplayName, req.AvatarURL); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// SetBuddyRequest names the buddy to link with.
type SetBuddyRequest struct {
	BuddyID string `json:"buddyId" binding:"required"`
}

// SetBuddy links the caller to a buddy. Duos rank on the leaderboard once
// both sides have linked.
func SetBuddy(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	var req SetBuddyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	buddyID, err := primitive.ObjectIDFromHex(req.BuddyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid buddy id"})
		return
	}
	if buddyID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot buddy with yourself"})
		return
	}

	if err := services.SetBuddy(userID, buddyID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Buddy not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set buddy"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Buddy linked"})
}
