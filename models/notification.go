package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification kinds.
const (
	NotificationStreakMilestone = "streak_milestone"
	NotificationBadge           = "badge"
	NotificationChallengeWon    = "challenge_won"
	NotificationChallengeLost   = "challenge_lost"
)

// Notification is a per-user inbox entry written by the sweeps and the
// check-in path. DedupeKey guards milestone duplicates across sweep runs.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Kind      string             `bson:"kind" json:"kind"`
	Message   string             `bson:"message" json:"message"`
	DedupeKey string             `bson:"dedupeKey,omitempty" json:"-"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GamificationEvent is what the websocket hub broadcasts to live clients.
type GamificationEvent struct {
	Type      string    `json:"type"` // "badge_awarded", "streak_updated", "challenge_resolved"
	UserID    string    `json:"userId"`
	BadgeName string    `json:"badgeName,omitempty"`
	Points    int       `json:"points,omitempty"`
	Streak    int       `json:"streak,omitempty"`
	Challenge string    `json:"challenge,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
