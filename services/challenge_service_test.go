package services

import (
	"testing"
	"time"

	"fitquest/calendar"
	"fitquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func nonProof(duration int) models.ChallengeDefinition {
	return models.ChallengeDefinition{
		Title:         "10k Steps Daily",
		Duration:      duration,
		ChallengeType: models.ChallengeTypeNonProof,
		Points:        15,
	}
}

func TestOutcomeBeforeWindowCloses(t *testing.T) {
	start := day(2)
	a := models.ChallengeAssignment{
		StartDate:     start,
		EndDate:       calendar.AddNonSundayDays(start, 10),
		ChallengeScan: 10,
	}
	if got := Outcome(a, nonProof(10), start.AddDate(0, 0, 3)); got != OutcomeUnresolved {
		t.Errorf("outcome before endDate = %s, want Unresolved", got)
	}
}

func TestOutcomeWinLoseThreshold(t *testing.T) {
	start := day(2)
	end := calendar.AddNonSundayDays(start, 10)
	after := end.AddDate(0, 0, 1)

	a := models.ChallengeAssignment{StartDate: start, EndDate: end, ChallengeScan: 10}
	if got := Outcome(a, nonProof(10), after); got != OutcomeWon {
		t.Errorf("scan 10 of 10 = %s, want Won", got)
	}

	a.ChallengeScan = 9
	if got := Outcome(a, nonProof(10), after); got != OutcomeLost {
		t.Errorf("scan 9 of 10 = %s, want Lost", got)
	}
}

func TestProgressNonProofScanBased(t *testing.T) {
	start := day(2)
	a := models.ChallengeAssignment{
		StartDate:     start,
		EndDate:       calendar.AddNonSundayDays(start, 10),
		ChallengeScan: 4,
	}
	if got := Progress(a, nonProof(10), start.AddDate(0, 0, 4)); got != 40 {
		t.Errorf("non-proof progress = %d, want 40", got)
	}

	a.ChallengeScan = 25
	if got := Progress(a, nonProof(10), start.AddDate(0, 0, 4)); got != 100 {
		t.Errorf("progress must clamp at 100, got %d", got)
	}
}

func TestProgressProofTimeBased(t *testing.T) {
	start := day(2)
	def := models.ChallengeDefinition{ChallengeType: models.ChallengeTypeProof, Duration: 10}
	a := models.ChallengeAssignment{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 10),
	}

	if got := Progress(a, def, start.AddDate(0, 0, 5)); got != 50 {
		t.Errorf("proof progress at midpoint = %d, want 50", got)
	}
	if got := Progress(a, def, start.AddDate(0, 0, -1)); got != 0 {
		t.Errorf("proof progress before start = %d, want 0", got)
	}
	if got := Progress(a, def, start.AddDate(0, 0, 20)); got != 100 {
		t.Errorf("proof progress past end = %d, want 100", got)
	}
}

func TestRequireProofType(t *testing.T) {
	np := nonProof(10)
	if err := requireProofType(&np); err != ErrNotProofChallenge {
		t.Errorf("non-proof challenge on a proof path = %v, want ErrNotProofChallenge", err)
	}

	p := models.ChallengeDefinition{ChallengeType: models.ChallengeTypeProof, Duration: 10}
	if err := requireProofType(&p); err != nil {
		t.Errorf("proof challenge rejected: %v", err)
	}
}

func TestJoinEligibilityRejections(t *testing.T) {
	userID := primitive.NewObjectID()

	cases := []struct {
		name string
		def  models.ChallengeDefinition
		want error
	}{
		{"participant", models.ChallengeDefinition{Participants: []primitive.ObjectID{userID}}, ErrAlreadyParticipant},
		{"winner", models.ChallengeDefinition{Winners: []primitive.ObjectID{userID}}, ErrAlreadyWon},
		{"loser", models.ChallengeDefinition{Losers: []primitive.ObjectID{userID}}, ErrAlreadyLost},
	}
	for _, tc := range cases {
		before := len(tc.def.Participants)
		if err := joinEligibility(&tc.def, userID); err != tc.want {
			t.Errorf("%s: joinEligibility = %v, want %v", tc.name, err, tc.want)
		}
		if len(tc.def.Participants) != before {
			t.Errorf("%s: rejection must not touch the participant list", tc.name)
		}
	}

	fresh := nonProof(10)
	if err := joinEligibility(&fresh, userID); err != nil {
		t.Errorf("fresh user should be eligible, got %v", err)
	}
}

func TestResolutionRecordedOnce(t *testing.T) {
	def := nonProof(10)
	def.ID = primitive.NewObjectID()
	user := models.User{ID: primitive.NewObjectID()}
	now := day(12)

	completed, fresh := resolutionRecord(&user, &def, true, now)
	if !fresh {
		t.Fatal("first resolution must produce a completion entry")
	}
	if completed.Status != models.ChallengeStatusWon || completed.Points != def.Points {
		t.Errorf("win record = %s/%d points, want %s/%d",
			completed.Status, completed.Points, models.ChallengeStatusWon, def.Points)
	}

	user.ChallengesCompleted = append(user.ChallengesCompleted, completed)
	if _, fresh := resolutionRecord(&user, &def, true, now.AddDate(0, 0, 1)); fresh {
		t.Error("second resolution of the same challenge must record nothing")
	}
}

func TestResolutionLossPaysNoPoints(t *testing.T) {
	def := nonProof(10)
	def.ID = primitive.NewObjectID()
	user := models.User{ID: primitive.NewObjectID()}

	completed, fresh := resolutionRecord(&user, &def, false, day(12))
	if !fresh {
		t.Fatal("expected a completion entry")
	}
	if completed.Status != models.ChallengeStatusLost || completed.Points != 0 {
		t.Errorf("loss record = %s/%d points, want %s/0",
			completed.Status, completed.Points, models.ChallengeStatusLost)
	}
}

func TestEndDateSkipsSundays(t *testing.T) {
	// Joining on Friday June 6 for 2 days: Sat, skip Sun, Mon June 9.
	end := calendar.AddNonSundayDays(day(6), 2)
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("endDate = %v, want %v", end, want)
	}
}
