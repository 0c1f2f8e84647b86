package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitquest/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func challengeIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// ListChallenges returns all challenge definitions for browsing.
func ListChallenges(c *gin.Context) {
	defs, err := services.ListChallenges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
		return
	}
	c.JSON(http.StatusOK, defs)
}

// JoinChallenge enrolls the caller in a challenge.
func JoinChallenge(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)
	challengeID, ok := challengeIDParam(c)
	if !ok {
		return
	}

	assignment, err := services.JoinChallenge(userID, challengeID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrAlreadyParticipant),
			errors.Is(err, services.ErrAlreadyWon),
			errors.Is(err, services.ErrAlreadyLost):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": assignment, "pointsDelta": services.JoinRewardPoints})
}

// LeaveChallenge removes the caller's active assignment.
func LeaveChallenge(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)
	challengeID, ok := challengeIDParam(c)
	if !ok {
		return
	}

	if err := services.LeaveChallenge(userID, challengeID); err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		case errors.Is(err, services.ErrNotParticipant):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left challenge"})
}

// GetChallengeProgress reports the caller's progress percentage.
func GetChallengeProgress(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)
	challengeID, ok := challengeIDParam(c)
	if !ok {
		return
	}

	progress, err := services.GetChallengeProgress(userID, challengeID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotParticipant):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// SubmitProofRequest carries the evidence reference for Proof challenges.
type SubmitProofRequest struct {
	ProofRef string `json:"proofRef" binding:"required"`
}

// SubmitProof stores the evidence reference on the caller's assignment.
func SubmitProof(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)
	challengeID, ok := challengeIDParam(c)
	if !ok {
		return
	}

	var req SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := services.SubmitProof(userID, challengeID, req.ProofRef); err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		case errors.Is(err, services.ErrNotProofChallenge),
			errors.Is(err, services.ErrNotParticipant):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proof submitted for review"})
}
