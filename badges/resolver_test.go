package badges

import "testing"

func TestStreakStatusFirstTier(t *testing.T) {
	st := StreakStatus(1)
	if st.Current.Name != "The Ant" {
		t.Errorf("streak 1 current = %s, want The Ant", st.Current.Name)
	}
	if st.Next == nil || st.Next.Name != "The Beetle" {
		t.Errorf("streak 1 next = %+v, want The Beetle", st.Next)
	}
	if st.Progress != 20 {
		t.Errorf("streak 1 progress = %d, want 20", st.Progress)
	}
}

func TestStreakStatusExactThreshold(t *testing.T) {
	st := StreakStatus(5)
	if st.Current.Name != "The Beetle" {
		t.Errorf("streak 5 current = %s, want The Beetle", st.Current.Name)
	}
	if st.Next == nil || st.Next.MinStreak != 10 {
		t.Errorf("streak 5 next = %+v, want MinStreak 10", st.Next)
	}
}

func TestStreakStatusTopTier(t *testing.T) {
	st := StreakStatus(500)
	if st.Current.Name != "The Dragon" {
		t.Errorf("streak 500 current = %s, want The Dragon", st.Current.Name)
	}
	if st.Next != nil {
		t.Errorf("streak 500 should have no next badge, got %+v", st.Next)
	}
	if st.Progress != 100 {
		t.Errorf("streak 500 progress = %d, want 100", st.Progress)
	}
}

func TestStreakStatusMonotonic(t *testing.T) {
	prev := -1
	for s := 0; s <= 400; s++ {
		cur := StreakStatus(s).Current.MinStreak
		if cur < prev {
			t.Fatalf("current badge threshold decreased at streak %d: %d -> %d", s, prev, cur)
		}
		prev = cur
	}
}

func TestProgressBounds(t *testing.T) {
	for s := 0; s <= 400; s++ {
		p := StreakStatus(s).Progress
		if p < 0 || p > 100 {
			t.Fatalf("progress out of bounds at streak %d: %d", s, p)
		}
	}
}

func TestNextBadgesCap(t *testing.T) {
	next := NextBadges(1)
	if len(next) != 4 {
		t.Fatalf("expected 4 upcoming badges, got %d", len(next))
	}
	if next[0].Name != "The Beetle" {
		t.Errorf("first upcoming = %s, want The Beetle", next[0].Name)
	}
	for i := 1; i < len(next); i++ {
		if next[i].MinStreak <= next[i-1].MinStreak {
			t.Errorf("upcoming badges out of order at %d", i)
		}
	}
	if got := NextBadges(365); len(got) != 0 {
		t.Errorf("top of ladder should have no upcoming badges, got %d", len(got))
	}
}

func TestEvaluateSpecial(t *testing.T) {
	snap := Snapshot{Streak: 30, ChallengeWins: 1, Posts: 12}

	first := EvaluateSpecial(snap, map[string]bool{})
	names := map[string]bool{}
	for _, b := range first {
		names[b.Name] = true
	}
	for _, want := range []string{"Challenger", "Storyteller", "Iron Month"} {
		if !names[want] {
			t.Errorf("expected %s to be newly earned", want)
		}
	}
	if names["Conqueror"] {
		t.Errorf("Conqueror needs 5 wins, snapshot has 1")
	}

	// Re-evaluating with the earned set updated yields nothing new.
	second := EvaluateSpecial(snap, names)
	if len(second) != 0 {
		t.Errorf("second evaluation should award nothing, got %d", len(second))
	}
}
