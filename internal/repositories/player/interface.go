package player

import (
	"context"

	"github.com/KirkDiggler/ewar/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ewar/internal/repositories/player Repository

// Repository defines the interface for the projected player store
type Repository interface {
	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayers retrieves several players, reporting the ones that do not exist
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// FindByHandle retrieves a player by lower-case display name
	FindByHandle(ctx context.Context, input *FindByHandleInput) (*models.Player, error)

	// FindByExternalID retrieves a player by linked chat-platform account
	FindByExternalID(ctx context.Context, input *FindByExternalIDInput) (*models.Player, error)

	// ClaimIdentity reserves a handle and external ids for a new player id
	ClaimIdentity(ctx context.Context, input *ClaimIdentityInput) error

	// ReleaseIdentity undoes a claim whose enrollment is not or no longer in the ledger
	ReleaseIdentity(ctx context.Context, input *ClaimIdentityInput) error

	// MissingRegistrations returns the ids that were never claimed
	MissingRegistrations(ctx context.Context, input *MissingRegistrationsInput) ([]models.PlayerID, error)

	// CommitEffect writes the effect of one event together with the cursor advance past it
	CommitEffect(ctx context.Context, input *CommitEffectInput) (*CommitEffectOutput, error)

	// ResetProjection deletes every projected player and rewinds the cursor to the first event
	ResetProjection(ctx context.Context) error

	// ListByLeaderboard returns players ordered by leaderboard value, best first
	ListByLeaderboard(ctx context.Context, input *ListByLeaderboardInput) (*ListPlayersOutput, error)

	// ListInactive returns players whose last game is older than a cutoff
	ListInactive(ctx context.Context, input *ListInactiveInput) (*ListPlayersOutput, error)
}
