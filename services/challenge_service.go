package services

import (
	"context"
	"errors"
	"log"
	"time"

	"fitquest/calendar"
	"fitquest/db"
	"fitquest/internal/cache"
	"fitquest/models"
	"fitquest/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinRewardPoints is the fixed reward for joining a challenge.
const JoinRewardPoints = 3

// Challenge outcome values returned by Outcome.
const (
	OutcomeWon        = models.ChallengeStatusWon
	OutcomeLost       = models.ChallengeStatusLost
	OutcomeUnresolved = "Unresolved"
)

var (
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrAlreadyParticipant = errors.New("already a participant in this challenge")
	ErrAlreadyWon         = errors.New("already won this challenge")
	ErrAlreadyLost        = errors.New("already lost this challenge")
	ErrNotParticipant     = errors.New("not a participant in this challenge")
	ErrNotProofChallenge  = errors.New("challenge is not proof-based")
)

// JoinChallenge enrolls a user. The end date is the start advanced by
// duration non-Sunday days. Users who already won or lost cannot rejoin.
func JoinChallenge(userID, challengeID primitive.ObjectID, now time.Time) (*models.ChallengeAssignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	def, err := getChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	if err := joinEligibility(def, userID); err != nil {
		return nil, err
	}

	assignment := models.ChallengeAssignment{
		ChallengeID:   challengeID,
		StartDate:     calendar.Midnight(now),
		EndDate:       calendar.AddNonSundayDays(now, def.Duration),
		ChallengeScan: 0,
	}

	users := db.GetCollection(db.UsersCollection)
	res, err := users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$push": bson.M{"activeChallenges": assignment},
		"$inc":  bson.M{"points": JoinRewardPoints},
		"$set":  bson.M{"updatedAt": now},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	challenges := db.GetCollection(db.ChallengesCollection)
	_, err = challenges.UpdateOne(ctx, bson.M{"_id": challengeID}, bson.M{
		"$addToSet": bson.M{"participants": userID},
	})
	if err != nil {
		return nil, err
	}

	log.Printf("User %s joined challenge %q (%d days, ends %s)",
		userID.Hex(), def.Title, def.Duration, assignment.EndDate.Format("2006-01-02"))
	return &assignment, nil
}

// joinEligibility is the pure rejection decision for JoinChallenge. A
// user already on the participant, winner or loser list cannot join; the
// definition itself is left untouched either way.
func joinEligibility(def *models.ChallengeDefinition, userID primitive.ObjectID) error {
	switch {
	case models.Contains(def.Participants, userID):
		return ErrAlreadyParticipant
	case models.Contains(def.Winners, userID):
		return ErrAlreadyWon
	case models.Contains(def.Losers, userID):
		return ErrAlreadyLost
	}
	return nil
}

// LeaveChallenge removes an active assignment before resolution. No
// penalty; the entry is simply deleted from both sides.
func LeaveChallenge(userID, challengeID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	def, err := getChallenge(ctx, challengeID)
	if err != nil {
		return err
	}
	if !models.Contains(def.Participants, userID) {
		return ErrNotParticipant
	}

	_, err = db.GetCollection(db.UsersCollection).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$pull": bson.M{"activeChallenges": bson.M{"challengeId": challengeID}},
	})
	if err != nil {
		return err
	}
	_, err = db.GetCollection(db.ChallengesCollection).UpdateOne(ctx, bson.M{"_id": challengeID}, bson.M{
		"$pull": bson.M{"participants": userID},
	})
	return err
}

// Progress answers "how far along is this assignment" as a percentage.
// Proof challenges report linear time progress through the window;
// Non-Proof challenges report scan count against the required duration.
func Progress(a models.ChallengeAssignment, def models.ChallengeDefinition, now time.Time) int {
	var pct int
	if def.ChallengeType == models.ChallengeTypeProof {
		window := a.EndDate.Sub(a.StartDate)
		if window <= 0 {
			return 100
		}
		pct = int(float64(now.Sub(a.StartDate)) / float64(window) * 100)
	} else {
		if def.Duration <= 0 {
			return 100
		}
		pct = a.ChallengeScan * 100 / def.Duration
	}

	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// GetChallengeProgress loads the user's assignment and computes progress.
func GetChallengeProgress(userID, challengeID primitive.ObjectID, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return 0, err
	}
	assignment := user.ActiveAssignment(challengeID)
	if assignment == nil {
		return 0, ErrNotParticipant
	}
	def, err := getChallenge(ctx, challengeID)
	if err != nil {
		return 0, err
	}
	return Progress(*assignment, *def, now), nil
}

// Outcome is the pure end-of-window decision for Non-Proof challenges:
// Unresolved until the window closes, then Won iff the scan count reached
// the required duration.
func Outcome(a models.ChallengeAssignment, def models.ChallengeDefinition, now time.Time) string {
	if now.Before(a.EndDate) {
		return OutcomeUnresolved
	}
	if a.ChallengeScan >= def.Duration {
		return OutcomeWon
	}
	return OutcomeLost
}

// requireProofType gates the proof endpoints: Non-Proof challenges take
// neither submissions nor admin verdicts.
func requireProofType(def *models.ChallengeDefinition) error {
	if def.ChallengeType != models.ChallengeTypeProof {
		return ErrNotProofChallenge
	}
	return nil
}

// SubmitProof stores the evidence reference on a Proof-type assignment.
// An admin later approves or rejects it via ResolveProof.
func SubmitProof(userID, challengeID primitive.ObjectID, proofRef string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	def, err := getChallenge(ctx, challengeID)
	if err != nil {
		return err
	}
	if err := requireProofType(def); err != nil {
		return err
	}

	res, err := db.GetCollection(db.UsersCollection).UpdateOne(ctx,
		bson.M{"_id": userID, "activeChallenges.challengeId": challengeID},
		bson.M{"$set": bson.M{"activeChallenges.$.proofRef": proofRef}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotParticipant
	}
	return nil
}

// ResolveProof is the admin review path for Proof challenges; it reuses
// the same guarded completion flow as the automatic sweep.
func ResolveProof(userID, challengeID primitive.ObjectID, approved bool, now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	def, err := getChallenge(ctx, challengeID)
	if err != nil {
		return err
	}
	// Non-Proof challenges resolve through the clock-based sweep only.
	if err := requireProofType(def); err != nil {
		return err
	}

	var user models.User
	if err := db.GetCollection(db.UsersCollection).FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return err
	}
	assignment := user.ActiveAssignment(challengeID)
	if assignment == nil {
		return ErrNotParticipant
	}
	return completeAssignment(ctx, &user, *assignment, def, approved, now)
}

// RunChallengeResolutionSweep scans all users' active assignments and
// resolves the Non-Proof ones whose window has closed. Per-user errors
// are logged and skipped.
func RunChallengeResolutionSweep(now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	cursor, err := users.Find(ctx, bson.M{"activeChallenges.0": bson.M{"$exists": true}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	defs := map[primitive.ObjectID]*models.ChallengeDefinition{}
	resolved := 0

	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			log.Printf("Resolution sweep: decode error, skipping user: %v", err)
			continue
		}

		for _, assignment := range user.ActiveChallenges {
			def, ok := defs[assignment.ChallengeID]
			if !ok {
				def, err = getChallenge(ctx, assignment.ChallengeID)
				if err != nil {
					log.Printf("Resolution sweep: challenge %s for user %s: %v",
						assignment.ChallengeID.Hex(), user.ID.Hex(), err)
					continue
				}
				defs[assignment.ChallengeID] = def
			}

			// Proof challenges resolve through admin review, not the clock.
			if def.ChallengeType != models.ChallengeTypeNonProof {
				continue
			}
			outcome := Outcome(assignment, *def, now)
			if outcome == OutcomeUnresolved {
				continue
			}

			if err := completeAssignment(ctx, &user, assignment, def, outcome == OutcomeWon, now); err != nil {
				log.Printf("Resolution sweep: failed to resolve %s/%s: %v",
					user.ID.Hex(), assignment.ChallengeID.Hex(), err)
				continue
			}
			resolved++
		}
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	if resolved > 0 {
		log.Printf("Resolution sweep: resolved %d assignments", resolved)
		cache.InvalidateDuoLeaderboard()
	}
	return nil
}

// resolutionRecord decides what resolving an assignment adds to the user
// document. The second return is false when a completion entry for the
// challenge already exists; callers then only strip the stale assignment
// and no points are paid again.
func resolutionRecord(user *models.User, def *models.ChallengeDefinition, won bool, now time.Time) (models.CompletedChallenge, bool) {
	if user.HasCompleted(def.ID) {
		return models.CompletedChallenge{}, false
	}
	completed := models.CompletedChallenge{
		ChallengeID: def.ID,
		Title:       def.Title,
		Status:      models.ChallengeStatusLost,
		ResolvedAt:  now,
	}
	if won {
		completed.Status = models.ChallengeStatusWon
		completed.Points = def.Points
	}
	return completed, true
}

// completeAssignment converts an active assignment into its terminal
// record. Idempotent: an existing challengesCompleted entry short-circuits
// everything except removal of the stale assignment, and the winner/loser
// list updates go through $addToSet.
func completeAssignment(ctx context.Context, user *models.User, a models.ChallengeAssignment,
	def *models.ChallengeDefinition, won bool, now time.Time) error {

	users := db.GetCollection(db.UsersCollection)
	challenges := db.GetCollection(db.ChallengesCollection)

	pullActive := bson.M{"$pull": bson.M{"activeChallenges": bson.M{"challengeId": def.ID}}}

	completed, fresh := resolutionRecord(user, def, won, now)
	if !fresh {
		// Already resolved earlier; only clean up the leftover assignment.
		_, err := users.UpdateOne(ctx, bson.M{"_id": user.ID}, pullActive)
		return err
	}

	listField := "challengeLosses"
	winnerField := "challengeLosers"
	if won {
		listField = "challengeWins"
		winnerField = "challengeWinners"
	}

	update := bson.M{
		"$push": bson.M{
			"challengesCompleted": completed,
			listField:             completed,
		},
		"$pull": bson.M{"activeChallenges": bson.M{"challengeId": def.ID}},
		"$set":  bson.M{"updatedAt": now},
	}
	if won {
		update["$inc"] = bson.M{"points": def.Points}
	}
	// Guard against a racing sweep having completed this pair between our
	// read and this write.
	res, err := users.UpdateOne(ctx, bson.M{
		"_id":                             user.ID,
		"challengesCompleted.challengeId": bson.M{"$ne": def.ID},
	}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		_, err := users.UpdateOne(ctx, bson.M{"_id": user.ID}, pullActive)
		return err
	}

	_, err = challenges.UpdateOne(ctx, bson.M{"_id": def.ID}, bson.M{
		"$pull":     bson.M{"participants": user.ID},
		"$addToSet": bson.M{winnerField: user.ID},
	})
	if err != nil {
		return err
	}

	user.ChallengesCompleted = append(user.ChallengesCompleted, completed)
	if won {
		user.ChallengeWins = append(user.ChallengeWins, completed)
		user.Points += def.Points
		notifyOnce(user.ID, models.NotificationChallengeWon,
			"🏆 You won the challenge "+def.Title+"!", "challenge:"+user.ID.Hex()+":"+def.ID.Hex(), now)
		// A fresh win may unlock Challenger/Conqueror.
		EvaluateAndAwardSpecial(user, now)
	} else {
		notifyOnce(user.ID, models.NotificationChallengeLost,
			"The challenge "+def.Title+" ended. Better luck next time!",
			"challenge:"+user.ID.Hex()+":"+def.ID.Hex(), now)
	}

	websocket.BroadcastEvent(models.GamificationEvent{
		Type:      "challenge_resolved",
		UserID:    user.ID.Hex(),
		Challenge: def.Title,
		Outcome:   completed.Status,
		Points:    completed.Points,
		Timestamp: now,
	})
	return nil
}

// ListChallenges returns every challenge definition for browsing.
func ListChallenges() ([]models.ChallengeDefinition, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.GetCollection(db.ChallengesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var defs []models.ChallengeDefinition
	if err := cursor.All(ctx, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// CreateChallenge inserts a new definition (admin only). Points default
// to the standard win reward when unset.
func CreateChallenge(def *models.ChallengeDefinition) error {
	if def.ChallengeType != models.ChallengeTypeProof {
		def.ChallengeType = models.ChallengeTypeNonProof
	}
	if def.Points <= 0 {
		def.Points = 15
	}
	def.Participants = []primitive.ObjectID{}
	def.Winners = []primitive.ObjectID{}
	def.Losers = []primitive.ObjectID{}
	def.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.GetCollection(db.ChallengesCollection).InsertOne(ctx, def)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		def.ID = oid
	}
	return nil
}
