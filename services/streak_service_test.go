package services

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	// June 2025: the 2nd is a Monday, the 8th a Sunday.
	return time.Date(2025, 6, d, 9, 0, 0, 0, time.UTC)
}

func TestStreakBrokenByWeekdayGap(t *testing.T) {
	// Monday -> Wednesday misses Tuesday, which is not a Sunday.
	if !StreakBroken(day(2), day(4)) {
		t.Errorf("Mon->Wed gap should break the streak")
	}
}

func TestStreakSurvivesSundayOnlyGap(t *testing.T) {
	// Saturday -> Monday misses only Sunday the 8th.
	if StreakBroken(day(7), day(9)) {
		t.Errorf("Sat->Mon gap is Sunday-only and must not break the streak")
	}
}

func TestStreakSurvivesConsecutiveDays(t *testing.T) {
	if StreakBroken(day(2), day(3)) {
		t.Errorf("consecutive days should never break")
	}
	if StreakBroken(day(2), day(2)) {
		t.Errorf("same-day scans should never break")
	}
}

func TestStreakBrokenByLongGap(t *testing.T) {
	// Saturday -> Tuesday misses Sunday and Monday.
	if !StreakBroken(day(7), day(10)) {
		t.Errorf("Sat->Tue gap includes a Monday and should break")
	}
}
