package cache

import (
	"encoding/json"
	"time"
)

const duoLeaderboardKey = "leaderboard:duo"

// DuoLeaderboardTTL bounds staleness of the cached ranking.
const DuoLeaderboardTTL = 30 * time.Second

// GetDuoLeaderboard returns the cached ranking, or ok=false on a miss.
// Cache errors degrade to a miss so the caller recomputes from Mongo.
func GetDuoLeaderboard(out interface{}) bool {
	if rdb == nil {
		return false
	}
	data, err := rdb.Get(ctx, duoLeaderboardKey).Bytes()
	if err != nil {
		// Treat redis.Nil and transport errors alike: recompute from Mongo.
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// SetDuoLeaderboard stores the ranking with a short TTL. Best effort.
func SetDuoLeaderboard(v interface{}) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	rdb.Set(ctx, duoLeaderboardKey, data, DuoLeaderboardTTL)
}

// InvalidateDuoLeaderboard drops the cached ranking after score-changing
// writes (challenge resolution, check-ins).
func InvalidateDuoLeaderboard() {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, duoLeaderboardKey)
}
