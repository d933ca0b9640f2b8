package projector

import (
	"log/slog"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
)

// Config holds the dependencies of the projector
type Config struct {
	// Repository dependencies
	LedgerRepo ledgerRepo.Repository
	PlayerRepo playerRepo.Repository

	// Engine computes game outcomes, defaults to rating.Default
	Engine *rating.Engine

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger

	// PageSize is the number of events read per round trip
	PageSize int
}

// AdvanceInput contains parameters for advancing the cursor
type AdvanceInput struct {
	// StopBefore leaves this event and everything after it untouched
	StopBefore *models.EventNumber
}

// AdvanceOutput contains the result of a projector run
type AdvanceOutput struct {
	// Cursor is the id of the first event not yet applied
	Cursor models.EventNumber

	// Applied counts approved events whose effect was committed
	Applied int

	// Rejected counts rejected events the cursor moved past
	Rejected int

	// BlockedAt is the pending or missing event that stopped the run, if any
	BlockedAt *models.EventNumber
}

// ForceReprocessInput contains parameters for a full replay
type ForceReprocessInput struct {
	// Actor is the moderator running the replay, nil for system jobs
	Actor *models.PlayerID
}

// PopLastEventInput contains parameters for removing the newest event
type PopLastEventInput struct {
	// Actor is the moderator removing the event, nil for system jobs
	Actor *models.PlayerID
}

// PopLastEventOutput contains the removed event
type PopLastEventOutput struct {
	Event *models.StandingEvent

	// Replay is set when the removed event had been applied and the ledger was replayed
	Replay *AdvanceOutput
}
