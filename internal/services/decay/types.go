package decay

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/models"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/projector"
)

// DecayError is a custom error type for decay job failures
type DecayError string

// Error implements the error interface
func (e DecayError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     DecayError = "config cannot be nil"
	ErrNilLedgerRepo DecayError = "ledger repository cannot be nil"
	ErrNilPlayerRepo DecayError = "player repository cannot be nil"
	ErrNilProjector  DecayError = "projector cannot be nil"
	ErrNilClock      DecayError = "clock cannot be nil"
	ErrBadAmount     DecayError = "decay amount must be positive"
)

const (
	// DefaultSchedule runs the job every day at midnight
	DefaultSchedule = "0 0 * * *"

	// DefaultInactiveAfter is how long a player may go without a game
	DefaultInactiveAfter = 7 * 24 * time.Hour

	// DefaultDeltaDeviation is the deviation added per run
	DefaultDeltaDeviation = 0.1
)

// Config holds the dependencies and tuning of the decay job
type Config struct {
	// Repository dependencies
	LedgerRepo ledgerRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Projector projector.Service
	Clock     clock.Clock
	Logger    *slog.Logger

	// InactiveAfter defaults to DefaultInactiveAfter
	InactiveAfter time.Duration

	// DeltaDeviation defaults to DefaultDeltaDeviation
	DeltaDeviation float64
}

// RunOutput contains the outcome of one decay run
type RunOutput struct {
	// Victims are the players that were decayed, empty when nobody was inactive
	Victims []models.PlayerID

	// EventID is the recorded decay event, nil when nothing was recorded
	EventID *models.EventNumber

	// Advance is the projector run that applied the decay
	Advance *projector.AdvanceOutput
}
