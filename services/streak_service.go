package services

import (
	"context"
	"errors"
	"log"
	"time"

	"fitquest/badges"
	"fitquest/calendar"
	"fitquest/db"
	"fitquest/internal/cache"
	"fitquest/models"
	"fitquest/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Rewards granted for one verified daily check-in.
const (
	CheckInFitCoins = 10
	CheckInPoints   = 5
)

var ErrAlreadyCheckedIn = errors.New("already checked in today")

// CheckInResult is returned to the check-in caller.
type CheckInResult struct {
	StreakTrack   int      `json:"streakTrack"`
	FitCoinsDelta int      `json:"fitCoinsDelta"`
	PointsDelta   int      `json:"pointsDelta"`
	NewBadges     []string `json:"newBadges,omitempty"`
}

// CheckIn applies one verified daily check-in: increments the streak,
// shifts the scan window, pays the fixed rewards, bumps the scan counter
// on every active Non-Proof challenge and re-evaluates badges. A second
// check-in on the same UTC calendar day is rejected.
func CheckIn(userID primitive.ObjectID, now time.Time) (*CheckInResult, error) {
	// Fast guard in redis; the same-day comparison on the user document
	// below remains the authority when redis is unavailable.
	if !cache.ClaimCheckInDay(userID.Hex(), now) {
		return nil, ErrAlreadyCheckedIn
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)

	var user models.User
	if err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		cache.ReleaseCheckInDay(userID.Hex(), now)
		return nil, err
	}

	if user.Streak.CurrentScan != nil && calendar.SameDay(*user.Streak.CurrentScan, now) {
		return nil, ErrAlreadyCheckedIn
	}

	newTrack := user.Streak.Track + 1
	streak := models.Streak{
		Track:       newTrack,
		LastScan:    user.Streak.CurrentScan,
		CurrentScan: &now,
	}

	// The challenge scan increment is a side effect of a successful
	// check-in, Non-Proof challenges only, and only inside the window.
	active := user.ActiveChallenges
	for i := range active {
		def, err := getChallenge(ctx, active[i].ChallengeID)
		if err != nil {
			log.Printf("Check-in for %s: cannot load challenge %s: %v", userID.Hex(), active[i].ChallengeID.Hex(), err)
			continue
		}
		if def.ChallengeType == models.ChallengeTypeNonProof && now.Before(active[i].EndDate) {
			active[i].ChallengeScan++
		}
	}

	update := bson.M{
		"$set": bson.M{
			"streak":           streak,
			"activeChallenges": active,
			"currentBadge":     badges.StreakStatus(newTrack).Current.Name,
			"updatedAt":        now,
		},
		"$inc": bson.M{
			"points":   CheckInPoints,
			"fitCoins": CheckInFitCoins,
		},
	}
	if _, err := users.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		cache.ReleaseCheckInDay(userID.Hex(), now)
		return nil, err
	}

	user.Streak = streak
	user.Points += CheckInPoints
	user.FitCoins += CheckInFitCoins
	newBadges := EvaluateAndAwardSpecial(&user, now)

	cache.InvalidateDuoLeaderboard()
	websocket.BroadcastEvent(models.GamificationEvent{
		Type:      "streak_updated",
		UserID:    userID.Hex(),
		Streak:    newTrack,
		Points:    CheckInPoints,
		Timestamp: now,
	})

	return &CheckInResult{
		StreakTrack:   newTrack,
		FitCoinsDelta: CheckInFitCoins,
		PointsDelta:   CheckInPoints,
		NewBadges:     newBadges,
	}, nil
}

// StreakBroken decides whether the gap between the last two check-ins
// invalidates the streak. Sundays are rest days: a gap made up entirely
// of Sundays never breaks.
func StreakBroken(last, current time.Time) bool {
	if calendar.DaysBetween(last, current) <= 1 {
		return false
	}
	return calendar.MissedNonSunday(last, current)
}

// RunStreakBreakSweep walks every user with a live streak and resets the
// ones whose scan gap contains a non-Sunday day. One user failing never
// aborts the sweep.
func RunStreakBreakSweep(now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	cursor, err := users.Find(ctx, bson.M{"streak.track": bson.M{"$gt": 0}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	broken := 0
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			log.Printf("Streak sweep: decode error, skipping user: %v", err)
			continue
		}
		if user.Streak.LastScan == nil || user.Streak.CurrentScan == nil {
			continue
		}
		if !StreakBroken(*user.Streak.LastScan, *user.Streak.CurrentScan) {
			continue
		}

		// Tri-reset: track, lastScan and currentScan go together.
		_, err := users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
			"$set": bson.M{
				"streak":       models.Streak{Track: 0},
				"currentBadge": badges.StreakStatus(0).Current.Name,
				"updatedAt":    now,
			},
		})
		if err != nil {
			log.Printf("Streak sweep: failed to reset %s: %v", user.ID.Hex(), err)
			continue
		}
		broken++
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	if broken > 0 {
		log.Printf("Streak sweep: reset %d broken streaks", broken)
	}
	return nil
}

func getChallenge(ctx context.Context, id primitive.ObjectID) (*models.ChallengeDefinition, error) {
	var def models.ChallengeDefinition
	err := db.GetCollection(db.ChallengesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&def)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return &def, nil
}
