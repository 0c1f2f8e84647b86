package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge types. Non-Proof challenges resolve automatically from the
// check-in scan counter; Proof challenges require a reviewed submission.
const (
	ChallengeTypeProof    = "Proof"
	ChallengeTypeNonProof = "Non-Proof"
)

// Outcome status values stored on CompletedChallenge.
const (
	ChallengeStatusWon  = "Won"
	ChallengeStatusLost = "Lost"
)

// ChallengeDefinition is the shared challenge document read by every
// participant's resolver.
type ChallengeDefinition struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string               `bson:"title" json:"title"`
	Description   string               `bson:"description" json:"description"`
	Duration      int                  `bson:"duration" json:"duration"` // non-Sunday days
	ChallengeType string               `bson:"challengeType" json:"challengeType"`
	Points        int                  `bson:"points" json:"points"` // awarded on a win
	Participants  []primitive.ObjectID `bson:"participants" json:"participants"`
	Winners       []primitive.ObjectID `bson:"challengeWinners" json:"challengeWinners"`
	Losers        []primitive.ObjectID `bson:"challengeLosers" json:"challengeLosers"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// Contains reports membership of id in the given list.
func Contains(list []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
