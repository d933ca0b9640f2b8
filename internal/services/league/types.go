package league

import (
	"log/slog"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/integrity"
	"github.com/KirkDiggler/ewar/internal/services/projector"
)

// Config holds the dependencies of the league service
type Config struct {
	// Repository dependencies
	LedgerRepo ledgerRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Projector        projector.Service
	IntegrityChecker integrity.Service
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
	Logger           *slog.Logger

	// Engine previews game outcomes, defaults to rating.Default
	Engine *rating.Engine

	// Moderators may decide events and run administrative operations
	Moderators []models.PlayerID
}

// SubmitGameInput contains parameters for recording a finished game
type SubmitGameInput struct {
	// Ranking lists participants winner first
	Ranking []models.PlayerID

	// DurationSeconds is the time given for the game before overtime
	DurationSeconds uint32

	// Submitter is the player logging the game, nil for system jobs
	Submitter *models.PlayerID

	// Trusted submissions are approved on the spot with the submitter as reviewer
	Trusted bool
}

// SubmitGameOutput contains the ids given to a recorded game
type SubmitGameOutput struct {
	EventID models.EventNumber
	GameID  models.GameID

	// Approved is set when the game skipped moderator review
	Approved bool

	// Advance is the projector run triggered by a self-approved game
	Advance *projector.AdvanceOutput
}

// DecideEventInput contains parameters for deciding an event
type DecideEventInput struct {
	EventID  models.EventNumber
	Approved bool
	Reviewer *models.PlayerID
}

// DecideGameInput contains parameters for deciding the event of a game
type DecideGameInput struct {
	GameID   models.GameID
	Approved bool
	Reviewer *models.PlayerID
}

// DecideEventOutput contains the decided event and the projector run that followed
type DecideEventOutput struct {
	Event   *models.StandingEvent
	Advance *projector.AdvanceOutput
}

// AdvanceInput contains parameters for moving the approval pointer
type AdvanceInput struct {
	// StopBefore leaves this event and everything after it untouched
	StopBefore *models.EventNumber

	// Actor is the moderator asking, nil for system jobs
	Actor *models.PlayerID
}

// PreviewOutcomeInput contains a hypothetical ranking, winner first
type PreviewOutcomeInput struct {
	Ranking []models.PlayerID
}

// PreviewEntry is the hypothetical result of one participant
type PreviewEntry struct {
	Player *models.Player

	// New is the rating the game would leave the player with
	New models.Rating

	// LeaderboardDelta is the change of the displayed leaderboard value
	LeaderboardDelta float64

	// WinProbability is the chance of the player finishing first
	WinProbability float64
}

// PreviewOutcomeOutput contains the preview of every participant in ranking order
type PreviewOutcomeOutput struct {
	Entries []*PreviewEntry

	// RatingSupplyDelta is the total change of rating means across participants
	RatingSupplyDelta float64
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID models.PlayerID
}

// FindPlayerByHandleInput contains parameters for a handle lookup
type FindPlayerByHandleInput struct {
	Handle string
}

// FindPlayerByExternalIDInput contains parameters for a linked account lookup
type FindPlayerByExternalIDInput struct {
	ExternalID string
}

// ListByLeaderboardValueInput contains parameters for listing the standings
type ListByLeaderboardValueInput struct {
	// IncludeProvisional also lists players whose rating is still provisional
	IncludeProvisional bool

	// Limit caps the number of entries, zero returns everyone
	Limit int
}

// RunIntegrityCheckInput contains parameters for an integrity check
type RunIntegrityCheckInput struct {
	Repair bool
	Actor  *models.PlayerID
}

// RegisterInput contains parameters for enrolling a player
type RegisterInput struct {
	// Handle is the desired name, compared case-insensitively
	Handle string

	// ExternalID is the chat account to bind, if any
	ExternalID string
}

// ForceRegisterInput contains parameters for enrolling someone else
type ForceRegisterInput struct {
	Handle     string
	ExternalID string
	Moderator  *models.PlayerID
}

// RegisterOutput contains the ids given to a new player
type RegisterOutput struct {
	PlayerID models.PlayerID
	EventID  models.EventNumber
	Advance  *projector.AdvanceOutput
}

// PenalizeInput contains parameters for a rating penalty
type PenalizeInput struct {
	Target models.PlayerID

	// Amount is the rating to take away
	Amount    float64
	Reason    string
	Moderator *models.PlayerID
}

// ChangeStandingInput contains parameters for a generic standing change
type ChangeStandingInput struct {
	Victims        []models.PlayerID
	DeltaRating    *float64
	DeltaDeviation *float64
	Reason         string
	Moderator      *models.PlayerID
}

// EventOutput contains the id of a recorded event and the projector run that followed
type EventOutput struct {
	EventID models.EventNumber
	Advance *projector.AdvanceOutput
}

// ListUnreviewedInput contains parameters for listing pending events
type ListUnreviewedInput struct {
	// Limit defaults to 10
	Limit int
}

// HistoryInput contains parameters for a player's history
type HistoryInput struct {
	PlayerID models.PlayerID

	// Limit caps the number of events read, defaults to 10
	Limit int
}

// HistoryEntry is one line of a player's history. Consecutive inactivity
// decays collapse into a single entry.
type HistoryEntry struct {
	Event *models.StandingEvent

	// Repeats counts the events folded into this entry
	Repeats int
}

// HistoryOutput contains a player and their events, newest first
type HistoryOutput struct {
	Player  *models.Player
	Entries []*HistoryEntry
}

// EventLogInput contains parameters for browsing the ledger
type EventLogInput struct {
	// Before is the newest event to include, nil starts at the latest
	Before *models.EventNumber

	// Limit defaults to 200
	Limit int
}

// GameLogInput contains parameters for browsing recorded games
type GameLogInput struct {
	// Before is the highest game id to include, nil starts at the latest
	Before *models.GameID

	// Limit defaults to 50
	Limit int
}

// GetGameInput identifies a recorded game
type GetGameInput struct {
	GameID models.GameID
}

// GetGameOutput contains a game and the event that recorded it.
// Players follows the ranking, with nil for ids no longer enrolled.
type GetGameOutput struct {
	Event   *models.StandingEvent
	Game    models.GameResult
	Players []*models.Player
}

// BlacklistInput identifies a player for the leaderboard blacklist
type BlacklistInput struct {
	PlayerID  models.PlayerID
	Moderator *models.PlayerID
}

// AdminInput identifies the moderator running an administrative operation
type AdminInput struct {
	Actor *models.PlayerID
}

// ListAuditInput contains parameters for listing audit entries
type ListAuditInput struct {
	Limit int
}
