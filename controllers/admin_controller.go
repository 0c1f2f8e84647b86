package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitquest/models"
	"fitquest/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateChallengeRequest defines a new challenge.
type CreateChallengeRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Duration      int    `json:"duration" binding:"required,min=1"`
	ChallengeType string `json:"challengeType"`
	Points        int    `json:"points"`
}

// CreateChallenge inserts a challenge definition (admin).
func CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	def := models.ChallengeDefinition{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		ChallengeType: req.ChallengeType,
		Points:        req.Points,
	}
	if err := services.CreateChallenge(&def); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		return
	}

	c.JSON(http.StatusCreated, def)
}

// ResolveProofRequest is the admin verdict on a submitted proof.
type ResolveProofRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Approved *bool  `json:"approved" binding:"required"`
}

// ResolveProof applies the admin review outcome for a Proof challenge.
func ResolveProof(c *gin.Context) {
	challengeID, ok := challengeIDParam(c)
	if !ok {
		return
	}

	var req ResolveProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := services.ResolveProof(userID, challengeID, *req.Approved, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		case errors.Is(err, services.ErrNotProofChallenge):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotParticipant):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve proof"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proof resolved"})
}
