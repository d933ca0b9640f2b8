package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/league"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

// GetWelcomeMessage returns a message for a newly enrolled player
func (s *service) GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ref := fmt.Sprintf("%s (%d)", input.PlayerName, input.PlayerID)
	messages := []string{
		fmt.Sprintf("welcome new user %s", ref),
		fmt.Sprintf("%s has joined the league, ratings stay provisional for a few games", ref),
		fmt.Sprintf("say hi to %s, the newest name on the ledger", ref),
	}

	return &GetWelcomeMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
	}, nil
}

// GetLeaderboardMessage returns a comment on a player's leaderboard position
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	// Different messages based on rank
	if input.Rank == 0 {
		messages = []string{
			fmt.Sprintf("%s leads the league at %s.", input.PlayerName, input.Value),
			fmt.Sprintf("First place: %s with %s. Everyone else is playing for second.", input.PlayerName, input.Value),
			fmt.Sprintf("All hail %s, sitting on top at %s.", input.PlayerName, input.Value),
		}
	} else if input.Rank == 1 {
		messages = []string{
			fmt.Sprintf("%s is right behind at %s.", input.PlayerName, input.Value),
			fmt.Sprintf("Second place: %s with %s. One good game away from the top.", input.PlayerName, input.Value),
		}
	} else if input.Rank == 2 {
		messages = []string{
			fmt.Sprintf("%s rounds out the podium at %s.", input.PlayerName, input.Value),
			fmt.Sprintf("Bronze for %s with %s.", input.PlayerName, input.Value),
		}
	} else if input.Rank == input.TotalPlayers-1 {
		messages = []string{
			fmt.Sprintf("%s holds the floor at %s. Nowhere to go but up.", input.PlayerName, input.Value),
			fmt.Sprintf("Last place: %s with %s. There's always the next game.", input.PlayerName, input.Value),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s: %s. Middle of the pack.", input.PlayerName, input.Value),
			fmt.Sprintf("%s sits at %s, within striking distance.", input.PlayerName, input.Value),
		}
	}

	return &GetLeaderboardMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input cannot be nil")
	}

	var leagueErr league.LeagueError
	if errors.As(input.Err, &leagueErr) {
		return &GetErrorMessageOutput{Message: leagueErr.Error(), Known: true}, nil
	}

	var message string
	switch {
	case errors.Is(input.Err, playerRepo.ErrHandleTaken):
		message = "a player by that name already exists"
	case errors.Is(input.Err, playerRepo.ErrExternalIDTaken):
		message = "cannot bind that account to a second player"
	case errors.Is(input.Err, playerRepo.ErrPlayerNotFound):
		message = "could not find that player"
	case errors.Is(input.Err, ledgerRepo.ErrEventNotFound):
		message = "could not find that event"
	case errors.Is(input.Err, ledgerRepo.ErrAlreadyDecided):
		message = "that event was already decided"
	case errors.Is(input.Err, ledgerRepo.ErrIDReservationFailed):
		message = "the ledger is busy, try again"
	case errors.Is(input.Err, ledgerRepo.ErrCheckpointConflict):
		message = "someone else changed the ledger at the same time, try again"
	default:
		return &GetErrorMessageOutput{Message: input.Err.Error()}, nil
	}

	return &GetErrorMessageOutput{
		Message: message,
		Known:   true,
	}, nil
}
