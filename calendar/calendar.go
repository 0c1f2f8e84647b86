// Package calendar holds the date arithmetic shared by the streak tracker
// and the challenge resolver. All comparisons use UTC calendar days;
// Sundays are rest days and never count toward durations or against gaps.
package calendar

import "time"

// Midnight truncates t to the start of its UTC calendar day.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// DaysBetween returns the number of UTC calendar days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}

// AddNonSundayDays advances t by days steps, where each step lands on the
// next non-Sunday day. A challenge of duration N therefore spans N
// countable days plus however many Sundays fall inside the window.
func AddNonSundayDays(t time.Time, days int) time.Time {
	d := Midnight(t)
	for i := 0; i < days; i++ {
		d = d.AddDate(0, 0, 1)
		for d.Weekday() == time.Sunday {
			d = d.AddDate(0, 0, 1)
		}
	}
	return d
}

// CountNonSundayDaysBetween counts the non-Sunday days strictly after a
// up to and including b. Returns 0 when b is not after a.
func CountNonSundayDaysBetween(a, b time.Time) int {
	start, end := Midnight(a), Midnight(b)
	count := 0
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

// MissedNonSunday reports whether any day strictly between last and cur is
// not a Sunday. This is the streak-break rule: a gap made up entirely of
// Sundays keeps the streak alive.
func MissedNonSunday(last, cur time.Time) bool {
	start, end := Midnight(last), Midnight(cur)
	for d := start.AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			return true
		}
	}
	return false
}
