package cache

import (
	"fmt"
	"time"
)

// ClaimCheckInDay is a fast first-line guard against double check-ins: it
// sets checkin:<uid>:<yyyy-mm-dd> if absent. Mongo state stays the
// authority; when redis is down the claim is granted and the same-day
// comparison on the user document does the real rejection.
func ClaimCheckInDay(userID string, now time.Time) bool {
	if rdb == nil {
		return true
	}
	day := now.UTC().Format("2006-01-02")
	key := fmt.Sprintf("checkin:%s:%s", userID, day)

	// Key expires once the UTC day is over.
	midnight := now.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	ok, err := rdb.SetNX(ctx, key, 1, midnight.Sub(now.UTC())).Result()
	if err != nil {
		return true
	}
	return ok
}

// ReleaseCheckInDay undoes a claim when the check-in failed downstream, so
// the user can retry the same day.
func ReleaseCheckInDay(userID string, now time.Time) {
	if rdb == nil {
		return
	}
	day := now.UTC().Format("2006-01-02")
	rdb.Del(ctx, fmt.Sprintf("checkin:%s:%s", userID, day))
}
