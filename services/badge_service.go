package services

import (
	"context"
	"log"
	"time"

	"fitquest/badges"
	"fitquest/db"
	"fitquest/models"
	"fitquest/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BadgeStatusResponse is the full badge view for one user.
type BadgeStatusResponse struct {
	CurrentBadge  badges.StreakBadge   `json:"currentBadge"`
	NextBadge     *badges.StreakBadge  `json:"nextBadge,omitempty"`
	Progress      int                  `json:"progress"`
	Streak        int                  `json:"streak"`
	NextBadges    []badges.StreakBadge `json:"nextBadges"`
	SpecialBadges []SpecialBadgeView   `json:"specialBadges"`
}

// SpecialBadgeView tags each catalog entry with whether the user holds it.
type SpecialBadgeView struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// GetBadgeStatus resolves the ladder position and the special badge list
// for a user.
func GetBadgeStatus(userID primitive.ObjectID) (*BadgeStatusResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	st := badges.StreakStatus(user.Streak.Track)
	earned := earnedSet(user.Badges)

	resp := &BadgeStatusResponse{
		CurrentBadge: st.Current,
		NextBadge:    st.Next,
		Progress:     st.Progress,
		Streak:       st.Streak,
		NextBadges:   badges.NextBadges(user.Streak.Track),
	}
	for _, b := range badges.SpecialCatalog {
		resp.SpecialBadges = append(resp.SpecialBadges, SpecialBadgeView{
			Name:        b.Name,
			Emoji:       b.Emoji,
			Description: b.Description,
			Earned:      earned[b.Name],
		})
	}
	return resp, nil
}

// EvaluateAndAwardSpecial evaluates the special catalog against the user's
// current stats and persists each newly earned badge. The award path is
// check-then-insert immediately before the write, so a concurrent sweep
// re-running the evaluation does not duplicate rows. Returns the names
// awarded in this pass.
func EvaluateAndAwardSpecial(user *models.User, now time.Time) []string {
	snap := badges.Snapshot{
		Streak:        user.Streak.Track,
		ChallengeWins: len(user.ChallengeWins),
		LoginStreak:   user.LoginStreak,
		Posts:         user.PostCount,
		Reactions:     user.ReactionCount,
		TotalSteps:    user.TotalSteps,
	}

	newlyEarned := badges.EvaluateSpecial(snap, earnedSet(user.Badges))
	if len(newlyEarned) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userBadges := db.GetCollection(db.UserBadgesCollection)
	users := db.GetCollection(db.UsersCollection)

	var awarded []string
	for _, b := range newlyEarned {
		// Re-check right before the insert to bound duplicate-award risk.
		count, err := userBadges.CountDocuments(ctx, bson.M{"userId": user.ID, "name": b.Name})
		if err != nil {
			log.Printf("Badge award: existence check failed for %s/%s: %v", user.ID.Hex(), b.Name, err)
			continue
		}
		if count > 0 {
			continue
		}

		_, err = userBadges.InsertOne(ctx, models.EarnedBadge{
			UserID:      user.ID,
			Name:        b.Name,
			Emoji:       b.Emoji,
			Description: b.Description,
			EarnedAt:    now,
		})
		if err != nil {
			log.Printf("Badge award: insert failed for %s/%s: %v", user.ID.Hex(), b.Name, err)
			continue
		}

		_, err = users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
			"$addToSet": bson.M{"badges": b.Name},
		})
		if err != nil {
			log.Printf("Badge award: user update failed for %s/%s: %v", user.ID.Hex(), b.Name, err)
			continue
		}

		awarded = append(awarded, b.Name)
		notifyOnce(user.ID, models.NotificationBadge,
			b.Emoji+" You earned the "+b.Name+" badge!", "badge:"+user.ID.Hex()+":"+b.Name, now)
		websocket.BroadcastEvent(models.GamificationEvent{
			Type:      "badge_awarded",
			UserID:    user.ID.Hex(),
			BadgeName: b.Name,
			Timestamp: now,
		})
		log.Printf("Badge awarded: %s -> %s", b.Name, user.ID.Hex())
	}
	return awarded
}

func earnedSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
