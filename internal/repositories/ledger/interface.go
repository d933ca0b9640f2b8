package ledger

import (
	"context"
	"iter"

	"github.com/KirkDiggler/ewar/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/ewar/internal/repositories/ledger Repository

// Repository defines the interface for the append-only standing event ledger
type Repository interface {
	// ReserveIDs atomically reserves consecutive event, game and player ids
	ReserveIDs(ctx context.Context, input *ReserveIDsInput) (*ReserveIDsOutput, error)

	// AppendEvent stores a new event under a previously reserved id
	AppendEvent(ctx context.Context, input *AppendEventInput) error

	// DecideEvent records the one and only decision of a pending event
	DecideEvent(ctx context.Context, input *DecideEventInput) (*models.StandingEvent, error)

	// GetEvent retrieves an event by id
	GetEvent(ctx context.Context, input *GetEventInput) (*models.StandingEvent, error)

	// GetEventByGameID retrieves the event that recorded a game
	GetEventByGameID(ctx context.Context, input *GetEventByGameIDInput) (*models.StandingEvent, error)

	// ListEvents returns events newest first
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// ListGames returns game events by game id, highest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListEventsOutput, error)

	// ListUndecided returns pending events, oldest first
	ListUndecided(ctx context.Context, input *ListUndecidedInput) (*ListEventsOutput, error)

	// ListEventsForPlayer returns events mentioning a player, newest first
	ListEventsForPlayer(ctx context.Context, input *ListEventsForPlayerInput) (*ListEventsOutput, error)

	// ScanFrom lazily yields stored events in ascending id order
	ScanFrom(ctx context.Context, input *ScanFromInput) iter.Seq2[*models.StandingEvent, error]

	// GetCheckpoint returns the ledger bookkeeping record
	GetCheckpoint(ctx context.Context) (*models.LedgerCheckpoint, error)

	// AdvanceCursor moves the cursor forward, never backwards
	AdvanceCursor(ctx context.Context, input *AdvanceCursorInput) (models.EventNumber, error)

	// ReplaceCheckpoint overwrites the counters if the version still matches
	ReplaceCheckpoint(ctx context.Context, input *ReplaceCheckpointInput) (*models.LedgerCheckpoint, error)

	// PopLastEvent removes the most recent event and rewinds the counters
	PopLastEvent(ctx context.Context) (*models.StandingEvent, error)

	// AddToBlacklist hides a player from the leaderboard
	AddToBlacklist(ctx context.Context, input *BlacklistInput) error

	// RemoveFromBlacklist shows a player on the leaderboard again
	RemoveFromBlacklist(ctx context.Context, input *BlacklistInput) error

	// AppendAudit records an administrative operation
	AppendAudit(ctx context.Context, input *AppendAuditInput) error

	// ListAudit returns administrative operations, newest first
	ListAudit(ctx context.Context, input *ListAuditInput) ([]*models.AuditEntry, error)
}
