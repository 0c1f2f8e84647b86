package services

import (
	"context"
	"errors"
	"time"

	"fitquest/db"
	"fitquest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrUserNotFound = errors.New("user not found")

// GetUser loads one user document by id.
func GetUser(userID primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile writes the mutable profile fields.
func UpdateProfile(userID primitive.ObjectID, displayName, avatarURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if displayName != "" {
		set["displayName"] = displayName
	}
	if avatarURL != "" {
		set["avatarUrl"] = avatarURL
	}

	res, err := db.GetCollection(db.UsersCollection).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
