package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Streak holds the check-in streak counters. The tri-reset invariant: a
// break clears Track, LastScan and CurrentScan together.
type Streak struct {
	Track       int        `bson:"track" json:"track"`
	LastScan    *time.Time `bson:"lastScan,omitempty" json:"lastScan,omitempty"`
	CurrentScan *time.Time `bson:"currentScan,omitempty" json:"currentScan,omitempty"`
}

// ChallengeAssignment is a user's active participation in a challenge.
type ChallengeAssignment struct {
	ChallengeID   primitive.ObjectID `bson:"challengeId" json:"challengeId"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	EndDate       time.Time          `bson:"endDate" json:"endDate"`
	ChallengeScan int                `bson:"challengeScan" json:"challengeScan"`
	ProofRef      string             `bson:"proofRef,omitempty" json:"proofRef,omitempty"`
}

// CompletedChallenge is the terminal record of a resolved assignment.
type CompletedChallenge struct {
	ChallengeID primitive.ObjectID `bson:"challengeId" json:"challengeId"`
	Title       string             `bson:"title" json:"title"`
	Status      string             `bson:"status" json:"status"` // "Won" or "Lost"
	Points      int                `bson:"points" json:"points"`
	ResolvedAt  time.Time          `bson:"resolvedAt" json:"resolvedAt"`
}

// User defines a user entity
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	// Buddy link; duos form only when both sides point at each other.
	BuddyID *primitive.ObjectID `bson:"buddyId,omitempty" json:"buddyId,omitempty"`

	Points   int `bson:"points" json:"points"`
	FitCoins int `bson:"fitCoins" json:"fitCoins"`

	Streak       Streak   `bson:"streak" json:"streak"`
	CurrentBadge string   `bson:"currentBadge" json:"currentBadge"`
	Badges       []string `bson:"badges" json:"badges"`

	ActiveChallenges    []ChallengeAssignment `bson:"activeChallenges" json:"activeChallenges"`
	ChallengesCompleted []CompletedChallenge  `bson:"challengesCompleted" json:"challengesCompleted"`
	ChallengeWins       []CompletedChallenge  `bson:"challengeWins" json:"challengeWins"`
	ChallengeLosses     []CompletedChallenge  `bson:"challengeLosses" json:"challengeLosses"`

	// Aggregates read by special badge predicates.
	LoginStreak   int `bson:"loginStreak" json:"loginStreak"`
	PostCount     int `bson:"postCount" json:"postCount"`
	ReactionCount int `bson:"reactionCount" json:"reactionCount"`
	TotalSteps    int `bson:"totalSteps" json:"totalSteps"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasCompleted reports whether the user already holds a terminal record
// for the challenge. Resolution and re-join checks both rely on this.
func (u *User) HasCompleted(challengeID primitive.ObjectID) bool {
	for _, c := range u.ChallengesCompleted {
		if c.ChallengeID == challengeID {
			return true
		}
	}
	return false
}

// ActiveAssignment returns the active assignment for the challenge, or nil.
func (u *User) ActiveAssignment(challengeID primitive.ObjectID) *ChallengeAssignment {
	for i := range u.ActiveChallenges {
		if u.ActiveChallenges[i].ChallengeID == challengeID {
			return &u.ActiveChallenges[i]
		}
	}
	return nil
}
