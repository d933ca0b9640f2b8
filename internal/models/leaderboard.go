package models

// LeaderboardEntry is a single row of the league standings
type LeaderboardEntry struct {
	// Position is the 1-based rank on the leaderboard
	Position int

	// Player is the projected player state
	Player *Player

	// Value is the display ranking scalar derived from the rating
	Value float64

	// Provisional indicates the rating is still too uncertain to trust
	Provisional bool
}

// Leaderboard is an ordered view of the league standings
type Leaderboard struct {
	// IncludesProvisional reports whether provisional players were included
	IncludesProvisional bool

	// Entries are ordered best first
	Entries []*LeaderboardEntry
}
