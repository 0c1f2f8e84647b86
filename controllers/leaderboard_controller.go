package controllers

import (
	"net/http"

	"fitquest/services"

	"github.com/gin-gonic/gin"
)

// GetDuoLeaderboard returns the ranked buddy pairs.
func GetDuoLeaderboard(c *gin.Context) {
	entries, err := services.GetDuoLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	if entries == nil {
		entries = []services.DuoEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
