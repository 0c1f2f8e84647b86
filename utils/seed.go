package utils

import (
	"context"
	"log"
	"time"

	"fitquest/db"
	"fitquest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedChallenges inserts the starter challenge set when the collection is
// empty, so a fresh deployment has something to join.
func SeedChallenges() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	challenges := db.GetCollection(db.ChallengesCollection)
	count, _ := challenges.CountDocuments(ctx, bson.M{})
	if count > 0 {
		return
	}

	now := time.Now()
	seed := []interface{}{
		models.ChallengeDefinition{
			Title:         "10 Day Scan Sprint",
			Description:   "Check in at the gym ten days running. Sundays are rest days.",
			Duration:      10,
			ChallengeType: models.ChallengeTypeNonProof,
			Points:        15,
			Participants:  []primitive.ObjectID{},
			Winners:       []primitive.ObjectID{},
			Losers:        []primitive.ObjectID{},
			CreatedAt:     now,
		},
		models.ChallengeDefinition{
			Title:         "30 Day Grind",
			Description:   "A full month of daily check-ins.",
			Duration:      30,
			ChallengeType: models.ChallengeTypeNonProof,
			Points:        15,
			Participants:  []primitive.ObjectID{},
			Winners:       []primitive.ObjectID{},
			Losers:        []primitive.ObjectID{},
			CreatedAt:     now,
		},
		models.ChallengeDefinition{
			Title:         "Meal Prep Week",
			Description:   "Post a photo of your weekly meal prep for review.",
			Duration:      6,
			ChallengeType: models.ChallengeTypeProof,
			Points:        15,
			Participants:  []primitive.ObjectID{},
			Winners:       []primitive.ObjectID{},
			Losers:        []primitive.ObjectID{},
			CreatedAt:     now,
		},
	}

	if _, err := challenges.InsertMany(ctx, seed); err != nil {
		log.Printf("Failed to seed challenges: %v", err)
		return
	}
	log.Printf("Seeded %d starter challenges", len(seed))
}

// PopulateTestUsers creates a pair of linked demo users in empty
// databases, handy for exercising the duo leaderboard locally.
func PopulateTestUsers() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	count, _ := users.CountDocuments(ctx, bson.M{})
	if count > 0 {
		return
	}

	now := time.Now()
	idA := primitive.NewObjectID()
	idB := primitive.NewObjectID()

	demo := []interface{}{
		models.User{
			ID:                  idA,
			Email:               "ana@example.com",
			DisplayName:         "Ana",
			BuddyID:             &idB,
			Points:              120,
			FitCoins:            80,
			Streak:              models.Streak{Track: 6},
			CurrentBadge:        "The Beetle",
			Badges:              []string{},
			ActiveChallenges:    []models.ChallengeAssignment{},
			ChallengesCompleted: []models.CompletedChallenge{},
			ChallengeWins:       []models.CompletedChallenge{},
			ChallengeLosses:     []models.CompletedChallenge{},
			CreatedAt:           now,
			UpdatedAt:           now,
		},
		models.User{
			ID:                  idB,
			Email:               "bruno@example.com",
			DisplayName:         "Bruno",
			BuddyID:             &idA,
			Points:              95,
			FitCoins:            40,
			Streak:              models.Streak{Track: 2},
			CurrentBadge:        "The Ant",
			Badges:              []string{},
			ActiveChallenges:    []models.ChallengeAssignment{},
			ChallengesCompleted: []models.CompletedChallenge{},
			ChallengeWins:       []models.CompletedChallenge{},
			ChallengeLosses:     []models.CompletedChallenge{},
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}

	if _, err := users.InsertMany(ctx, demo); err != nil {
		log.Printf("Failed to populate test users: %v", err)
		return
	}
	log.Println("Populated demo buddy pair")
}
