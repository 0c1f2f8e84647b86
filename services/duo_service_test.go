package services

import (
	"testing"

	"fitquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func buddyPair(scoreA, scoreB int) (models.User, models.User) {
	idA, idB := primitive.NewObjectID(), primitive.NewObjectID()
	a := models.User{ID: idA, DisplayName: "A", BuddyID: &idB, Points: scoreA}
	b := models.User{ID: idB, DisplayName: "B", BuddyID: &idA, Points: scoreB}
	return a, b
}

func TestScoreWeights(t *testing.T) {
	u := models.User{
		Points:   100,
		FitCoins: 50,
		Streak:   models.Streak{Track: 10},
		ChallengeWins: []models.CompletedChallenge{
			{Points: 15},
			{Points: 15},
		},
	}
	// 100*0.5 + 10*2 + 50*0.1 + 30*0.8 = 50 + 20 + 5 + 24
	if got := Score(u); got != 99 {
		t.Errorf("Score = %v, want 99", got)
	}
}

func TestBuildDuoEntriesPairEmittedOnce(t *testing.T) {
	a, b := buddyPair(10, 20)
	entries := BuildDuoEntries([]models.User{a, b})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry for one mutual pair, got %d", len(entries))
	}
	if entries[0].DuoScore != 15 {
		t.Errorf("duoScore = %v, want 15", entries[0].DuoScore)
	}
}

func TestBuildDuoEntriesRequiresMutualLink(t *testing.T) {
	idA, idB := primitive.NewObjectID(), primitive.NewObjectID()
	a := models.User{ID: idA, BuddyID: &idB, Points: 10}
	// b points at a third user, not back at a.
	idC := primitive.NewObjectID()
	b := models.User{ID: idB, BuddyID: &idC, Points: 10}

	if entries := BuildDuoEntries([]models.User{a, b}); len(entries) != 0 {
		t.Errorf("one-sided links must not form a duo, got %d entries", len(entries))
	}
}

func TestBuildDuoEntriesRanking(t *testing.T) {
	a1, b1 := buddyPair(10, 10) // duo score 10
	a2, b2 := buddyPair(100, 100)
	a3, b3 := buddyPair(40, 40)

	entries := BuildDuoEntries([]models.User{a1, b1, a2, b2, a3, b3})
	if len(entries) != 3 {
		t.Fatalf("expected 3 duos, got %d", len(entries))
	}
	for i, wantScore := range []float64{100, 40, 10} {
		if entries[i].Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, entries[i].Rank, i+1)
		}
		if entries[i].DuoScore != wantScore {
			t.Errorf("entry %d duoScore = %v, want %v", i, entries[i].DuoScore, wantScore)
		}
	}
}

func TestBuildDuoEntriesRounding(t *testing.T) {
	idA, idB := primitive.NewObjectID(), primitive.NewObjectID()
	a := models.User{ID: idA, BuddyID: &idB, FitCoins: 33} // 3.3
	b := models.User{ID: idB, BuddyID: &idA, FitCoins: 34} // 3.4
	entries := BuildDuoEntries([]models.User{a, b})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].DuoScore != 6.7 {
		t.Errorf("duoScore = %v, want 6.7", entries[0].DuoScore)
	}
	// The duo score is rounded once, over the raw member sum.
	if got, want := entries[0].DuoScore, round2(Score(a)+Score(b)); got != want {
		t.Errorf("duoScore = %v, want round of raw sum %v", got, want)
	}
}
