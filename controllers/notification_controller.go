package controllers

import (
	"net/http"
	"strconv"

	"fitquest/models"
	"fitquest/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListNotifications returns the caller's inbox, newest first.
func ListNotifications(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	items, err := services.ListNotifications(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	if items == nil {
		items = []models.Notification{}
	}
	c.JSON(http.StatusOK, items)
}

// MarkNotificationsRead flags the caller's inbox as read.
func MarkNotificationsRead(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	if err := services.MarkNotificationsRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked read"})
}
