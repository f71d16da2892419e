package models

// LeaderboardEntry is one row of the ranked list, in the order the service
// returned it. The client never re-sorts.
type LeaderboardEntry struct {
	Username string `json:"username"`
	XP       int    `json:"xp"`
}
