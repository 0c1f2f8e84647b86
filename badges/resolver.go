package badges

import "math"

// Status describes where a streak sits on the ladder.
type Status struct {
	Current  StreakBadge  `json:"currentBadge"`
	Next     *StreakBadge `json:"nextBadge,omitempty"`
	Progress int          `json:"progress"`
	Streak   int          `json:"streak"`
}

// StreakStatus resolves the current and next ladder tier for a streak.
// Progress is the rounded percentage toward the next threshold, or 100
// once the top tier is held.
func StreakStatus(streak int) Status {
	if streak < 0 {
		streak = 0
	}

	idx := 0
	for i, b := range StreakLadder {
		if b.MinStreak <= streak {
			idx = i
		} else {
			break
		}
	}

	st := Status{Current: StreakLadder[idx], Streak: streak, Progress: 100}
	if idx+1 < len(StreakLadder) {
		next := StreakLadder[idx+1]
		st.Next = &next
		pct := int(math.Round(float64(streak) / float64(next.MinStreak) * 100))
		if pct > 100 {
			pct = 100
		}
		st.Progress = pct
	}
	return st
}

// NextBadges returns up to four not-yet-earned ladder tiers after the
// current streak, in catalog order, for the journey view.
func NextBadges(streak int) []StreakBadge {
	var out []StreakBadge
	for _, b := range StreakLadder {
		if b.MinStreak > streak {
			out = append(out, b)
			if len(out) == 4 {
				break
			}
		}
	}
	return out
}

// EvaluateSpecial returns the special badges newly earned by the snapshot,
// excluding names already present in earned. Pure: callers own persistence.
func EvaluateSpecial(s Snapshot, earned map[string]bool) []SpecialBadge {
	var won []SpecialBadge
	for _, b := range SpecialCatalog {
		if earned[b.Name] {
			continue
		}
		if b.Predicate(s) {
			won = append(won, b)
		}
	}
	return won
}
