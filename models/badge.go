package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EarnedBadge is one awarded badge instance. At most one row exists per
// (userId, name) pair; awarding is idempotent.
type EarnedBadge struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Emoji       string             `bson:"emoji,omitempty" json:"emoji,omitempty"`
	Description string             `bson:"description" json:"description"`
	EarnedAt    time.Time          `bson:"earnedAt" json:"earnedAt"`
}
