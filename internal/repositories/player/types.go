package player

import (
	"time"

	"github.com/KirkDiggler/ewar/internal/models"
)

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID models.PlayerID
}

// GetPlayersInput contains parameters for retrieving several players
type GetPlayersInput struct {
	PlayerIDs []models.PlayerID
}

// GetPlayersOutput contains the found players keyed by id and the missing ids in request order
type GetPlayersOutput struct {
	Players map[models.PlayerID]*models.Player
	Missing []models.PlayerID
}

// FindByHandleInput contains parameters for a handle lookup
type FindByHandleInput struct {
	Handle string
}

// FindByExternalIDInput contains parameters for an external id lookup
type FindByExternalIDInput struct {
	ExternalID string
}

// ClaimIdentityInput contains the identity of a player about to enroll
type ClaimIdentityInput struct {
	PlayerID    models.PlayerID
	Handle      string
	ExternalIDs []string
}

// MissingRegistrationsInput contains the ids to check
type MissingRegistrationsInput struct {
	PlayerIDs []models.PlayerID
}

// CommitEffectInput contains the new state of every player touched by one
// event and the cursor value that marks the event as applied
type CommitEffectInput struct {
	Players []*models.Player
	Cursor  models.EventNumber
}

// CommitEffectOutput contains the outcome of a commit
type CommitEffectOutput struct {
	// Cursor is the stored cursor after the commit
	Cursor models.EventNumber

	// Applied is false when the cursor was not on the event, in which case
	// no player was written
	Applied bool
}

// ListByLeaderboardInput contains parameters for listing the leaderboard
type ListByLeaderboardInput struct {
	// Limit caps the number of players, zero returns everyone
	Limit int
}

// ListInactiveInput contains parameters for listing inactive players
type ListInactiveInput struct {
	// PlayedBefore is the exclusive cutoff for the last game
	PlayedBefore time.Time
}

// ListPlayersOutput contains an ordered list of players
type ListPlayersOutput struct {
	Players []*models.Player
}
