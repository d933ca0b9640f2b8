package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWelcomeMessage returns a message for a newly enrolled player
	GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error)

	// GetLeaderboardMessage returns a comment on a player's leaderboard position
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
