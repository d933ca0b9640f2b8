package models

// LedgerCheckpoint is the singleton bookkeeping record of the ledger
type LedgerCheckpoint struct {
	// NextEventID is the first event number not yet reserved
	NextEventID EventNumber

	// NextGameID is the first game id not yet reserved
	NextGameID GameID

	// NextPlayerID is the first player id not yet reserved
	NextPlayerID PlayerID

	// Cursor is the id of the first event whose effect has not been applied
	Cursor EventNumber

	// Version is bumped on every write and used as an optimistic concurrency token
	Version int64

	// LeaderboardBlacklist holds players hidden from the leaderboard
	LeaderboardBlacklist []PlayerID
}

// IsBlacklisted reports whether id is hidden from the leaderboard
func (c *LedgerCheckpoint) IsBlacklisted(id PlayerID) bool {
	for _, b := range c.LeaderboardBlacklist {
		if b == id {
			return true
		}
	}
	return false
}
