package services

import (
	"context"
	"math"
	"sort"
	"time"

	"fitquest/db"
	"fitquest/internal/cache"
	"fitquest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DuoMember is the per-user slice of a leaderboard entry.
type DuoMember struct {
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	AvatarURL   string  `json:"avatarUrl,omitempty"`
	Score       float64 `json:"score"`
}

// DuoEntry is one ranked buddy pair.
type DuoEntry struct {
	Rank     int       `json:"rank"`
	MemberA  DuoMember `json:"memberA"`
	MemberB  DuoMember `json:"memberB"`
	DuoScore float64   `json:"duoScore"`
}

// Score is the single-user weighted ranking metric: points, streak length,
// coin balance and challenge-win points each contribute at a fixed weight.
func Score(u models.User) float64 {
	winPoints := 0
	for _, w := range u.ChallengeWins {
		winPoints += w.Points
	}
	return float64(u.Points)*0.5 +
		float64(u.Streak.Track)*2 +
		float64(u.FitCoins)*0.1 +
		float64(winPoints)*0.8
}

// BuildDuoEntries pairs up mutually linked buddies, scores each pair once
// and ranks them descending. Pure over the given user set.
func BuildDuoEntries(users []models.User) []DuoEntry {
	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	processed := make(map[primitive.ObjectID]bool)
	var entries []DuoEntry

	for _, u := range users {
		if u.BuddyID == nil || processed[u.ID] {
			continue
		}
		buddy, ok := byID[*u.BuddyID]
		if !ok || buddy.BuddyID == nil || *buddy.BuddyID != u.ID {
			continue // link must be mutual
		}
		processed[u.ID] = true
		processed[buddy.ID] = true

		// Member scores are rounded for display only; the duo score is
		// rounded once, over the raw sum.
		scoreA, scoreB := Score(u), Score(buddy)
		entries = append(entries, DuoEntry{
			MemberA:  DuoMember{UserID: u.ID.Hex(), DisplayName: u.DisplayName, AvatarURL: u.AvatarURL, Score: round2(scoreA)},
			MemberB:  DuoMember{UserID: buddy.ID.Hex(), DisplayName: buddy.DisplayName, AvatarURL: buddy.AvatarURL, Score: round2(scoreB)},
			DuoScore: round2(scoreA + scoreB),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DuoScore > entries[j].DuoScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// GetDuoLeaderboard returns the ranked buddy pairs, served from the redis
// cache when fresh.
func GetDuoLeaderboard() ([]DuoEntry, error) {
	var cached []DuoEntry
	if cache.GetDuoLeaderboard(&cached) {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection(db.UsersCollection).Find(ctx, bson.M{"buddyId": bson.M{"$ne": nil}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	entries := BuildDuoEntries(users)
	cache.SetDuoLeaderboard(entries)
	return entries, nil
}

// SetBuddy points the user's buddy link at another user. The pair only
// appears on the duo leaderboard once the other side links back.
func SetBuddy(userID, buddyID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	count, err := users.CountDocuments(ctx, bson.M{"_id": buddyID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}

	_, err = users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"buddyId": buddyID, "updatedAt": time.Now()},
	})
	if err == nil {
		cache.InvalidateDuoLeaderboard()
	}
	return err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
