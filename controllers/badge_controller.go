package controllers

import (
	"net/http"

	"fitquest/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetBadgeStatus returns the streak ladder position, upcoming badges and
// the special badge catalog tagged with what the user has earned.
func GetBadgeStatus(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	status, err := services.GetBadgeStatus(userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve badge status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
