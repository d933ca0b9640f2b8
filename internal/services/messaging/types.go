package messaging

import "math/rand"

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks between message variants, defaults to a time-seeded source
	Rand *rand.Rand
}

// GetWelcomeMessageInput contains parameters for getting a welcome message
type GetWelcomeMessageInput struct {
	// PlayerName is the handle of the new player
	PlayerName string

	// PlayerID is the league id of the new player
	PlayerID int32
}

// GetWelcomeMessageOutput contains the result of getting a welcome message
type GetWelcomeMessageOutput struct {
	Message string
}

// GetLeaderboardMessageInput contains parameters for a leaderboard comment
type GetLeaderboardMessageInput struct {
	// PlayerName is the handle of the player
	PlayerName string

	// Rank is the 0-based position on the leaderboard
	Rank int

	// TotalPlayers is the number of ranked players
	TotalPlayers int

	// Value is the formatted leaderboard value
	Value string
}

// GetLeaderboardMessageOutput contains the result of a leaderboard comment
type GetLeaderboardMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the explanation of an error
type GetErrorMessageOutput struct {
	// Message is what to show the user
	Message string

	// Known is false when the error is not a league condition, e.g. a lost connection
	Known bool
}
