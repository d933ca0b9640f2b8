package integrity

import (
	"log/slog"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
)

// CheckerError is a custom error type for integrity check failures
type CheckerError string

// Error implements the error interface
func (e CheckerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        CheckerError = "config cannot be nil"
	ErrNilLedgerRepo    CheckerError = "ledger repository cannot be nil"
	ErrNilPlayerRepo    CheckerError = "player repository cannot be nil"
	ErrNilClock         CheckerError = "clock cannot be nil"
	ErrNilUUIDGenerator CheckerError = "UUID generator cannot be nil"
)

// Config holds the dependencies of the integrity checker
type Config struct {
	// Repository dependencies
	LedgerRepo ledgerRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// RunInput contains parameters for an integrity check
type RunInput struct {
	// Repair clamps the checkpoint to the derived values when issues are found
	Repair bool

	// Actor is the moderator running the check, nil for system jobs
	Actor *models.PlayerID
}

// Counters are the checkpoint values an integrity check compares
type Counters struct {
	NextEventID models.EventNumber
	NextGameID  models.GameID
	Cursor      models.EventNumber
}

// Report is the itemised outcome of an integrity check
type Report struct {
	// EventsScanned counts stored events, including undecodable ones
	EventsScanned int

	// Stored are the counters found in the checkpoint
	Stored Counters

	// Derived are the counters the replay computed independently
	Derived Counters

	// Issues lists every discrepancy in the order it was found
	Issues []string

	// Repaired holds the counters written by a repair
	Repaired *Counters
}

// OK reports whether the check found nothing wrong
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}
