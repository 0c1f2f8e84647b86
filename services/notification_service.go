package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitquest/db"
	"fitquest/models"
	"fitquest/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StreakMilestones trigger a one-off congratulation notification.
var StreakMilestones = []int{7, 30, 100, 365}

// RunNotificationMilestoneSweep emits a notification the first time a
// user's streak sits on a milestone. The dedupe key keeps repeated sweep
// runs from re-notifying.
func RunNotificationMilestoneSweep(now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	cursor, err := users.Find(ctx, bson.M{"streak.track": bson.M{"$in": StreakMilestones}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			log.Printf("Milestone sweep: decode error, skipping user: %v", err)
			continue
		}

		track := user.Streak.Track
		key := fmt.Sprintf("milestone:%s:%d", user.ID.Hex(), track)
		created := notifyOnce(user.ID, models.NotificationStreakMilestone,
			fmt.Sprintf("🔥 %d day streak! Keep it rolling.", track), key, now)
		if created {
			websocket.BroadcastEvent(models.GamificationEvent{
				Type:      "streak_updated",
				UserID:    user.ID.Hex(),
				Streak:    track,
				Timestamp: now,
			})
		}
	}
	return cursor.Err()
}

// notifyOnce inserts a notification unless one with the same dedupe key
// already exists. Returns whether a new row was created.
func notifyOnce(userID primitive.ObjectID, kind, message, dedupeKey string, now time.Time) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notifications := db.GetCollection(db.NotificationsCollection)
	if dedupeKey != "" {
		count, err := notifications.CountDocuments(ctx, bson.M{"dedupeKey": dedupeKey})
		if err != nil {
			log.Printf("Notification dedupe check failed for %s: %v", dedupeKey, err)
			return false
		}
		if count > 0 {
			return false
		}
	}

	_, err := notifications.InsertOne(ctx, models.Notification{
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		DedupeKey: dedupeKey,
		CreatedAt: now,
	})
	if err != nil {
		log.Printf("Notification insert failed for %s: %v", userID.Hex(), err)
		return false
	}
	return true
}

// ListNotifications returns the user's inbox, newest first.
func ListNotifications(userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := db.GetCollection(db.NotificationsCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationsRead flags the user's whole inbox as read.
func MarkNotificationsRead(userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.GetCollection(db.NotificationsCollection).UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}
