package calendar

import (
	"testing"
	"time"
)

// 2025-06-02 is a Monday.
func date(day int) time.Time {
	return time.Date(2025, 6, day, 12, 30, 0, 0, time.UTC)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 2, 0, 5, 0, 0, time.UTC)
	b := time.Date(2025, 6, 2, 23, 55, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Errorf("expected same UTC day for %v and %v", a, b)
	}
	if SameDay(a, b.AddDate(0, 0, 1)) {
		t.Errorf("expected different days across midnight")
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(date(2), date(4)); got != 2 {
		t.Errorf("DaysBetween Mon->Wed = %d, want 2", got)
	}
	if got := DaysBetween(date(4), date(2)); got != -2 {
		t.Errorf("DaysBetween Wed->Mon = %d, want -2", got)
	}
}

func TestAddNonSundayDaysSkipsSunday(t *testing.T) {
	// Friday June 6 + 2 steps: Sat 7, then Sunday 8 is skipped, lands Mon 9.
	got := AddNonSundayDays(date(6), 2)
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddNonSundayDays(Fri, 2) = %v, want %v", got, want)
	}
	if got.Weekday() == time.Sunday {
		t.Errorf("end date landed on a Sunday")
	}
}

func TestAddNonSundayDaysFullWeek(t *testing.T) {
	// Monday + 6 steps crosses one Sunday: Tue..Sat is 5, Sunday skipped,
	// sixth step lands the following Monday.
	got := AddNonSundayDays(date(2), 6)
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddNonSundayDays(Mon, 6) = %v, want %v", got, want)
	}
}

func TestCountNonSundayDaysBetween(t *testing.T) {
	// Mon June 2 -> Mon June 9: Tue..Sat (5) + Mon (1), Sunday excluded.
	if got := CountNonSundayDaysBetween(date(2), date(9)); got != 6 {
		t.Errorf("count Mon->Mon = %d, want 6", got)
	}
	if got := CountNonSundayDaysBetween(date(2), date(2)); got != 0 {
		t.Errorf("count over empty range = %d, want 0", got)
	}
}

func TestMissedNonSunday(t *testing.T) {
	// Mon -> Wed misses Tuesday: breaks.
	if !MissedNonSunday(date(2), date(4)) {
		t.Errorf("Mon->Wed gap should contain a non-Sunday day")
	}
	// Sat June 7 -> Mon June 9 misses only Sunday: survives.
	if MissedNonSunday(date(7), date(9)) {
		t.Errorf("Sat->Mon gap is Sunday-only and should not break")
	}
	// Adjacent days have no gap at all.
	if MissedNonSunday(date(2), date(3)) {
		t.Errorf("adjacent days should have no missed day")
	}
	// Sat -> Tue misses Sunday and Monday: breaks.
	if !MissedNonSunday(date(7), date(10)) {
		t.Errorf("Sat->Tue gap includes Monday and should break")
	}
}
