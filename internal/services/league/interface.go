package league

import (
	"context"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/services/integrity"
	"github.com/KirkDiggler/ewar/internal/services/projector"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ewar/internal/services/league Service

// Service defines the interface collaborators use to write to and read from the league
type Service interface {
	// SubmitGame records a finished game, approving it right away for trusted submitters
	SubmitGame(ctx context.Context, input *SubmitGameInput) (*SubmitGameOutput, error)

	// DecideEvent approves or rejects a pending event
	DecideEvent(ctx context.Context, input *DecideEventInput) (*DecideEventOutput, error)

	// DecideGame approves or rejects the pending event of a game
	DecideGame(ctx context.Context, input *DecideGameInput) (*DecideEventOutput, error)

	// Advance moves the approval pointer as far as decisions allow
	Advance(ctx context.Context, input *AdvanceInput) (*projector.AdvanceOutput, error)

	// PreviewOutcome computes what a game would do to ratings without recording it
	PreviewOutcome(ctx context.Context, input *PreviewOutcomeInput) (*PreviewOutcomeOutput, error)

	// GetPlayer retrieves a player by league id
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// FindPlayerByHandle retrieves a player by handle
	FindPlayerByHandle(ctx context.Context, input *FindPlayerByHandleInput) (*models.Player, error)

	// FindPlayerByExternalID retrieves a player by linked chat account
	FindPlayerByExternalID(ctx context.Context, input *FindPlayerByExternalIDInput) (*models.Player, error)

	// ListByLeaderboardValue returns the standings, best first
	ListByLeaderboardValue(ctx context.Context, input *ListByLeaderboardValueInput) (*models.Leaderboard, error)

	// RunIntegrityCheck verifies the ledger, optionally repairing the checkpoint
	RunIntegrityCheck(ctx context.Context, input *RunIntegrityCheckInput) (*integrity.Report, error)

	// Register enrolls a new player under a handle
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ForceRegister enrolls a player on behalf of someone else
	ForceRegister(ctx context.Context, input *ForceRegisterInput) (*RegisterOutput, error)

	// Penalize takes rating away from a player
	Penalize(ctx context.Context, input *PenalizeInput) (*EventOutput, error)

	// ChangeStanding adds rating or deviation deltas to players
	ChangeStanding(ctx context.Context, input *ChangeStandingInput) (*EventOutput, error)

	// ListUnreviewed returns the oldest pending events
	ListUnreviewed(ctx context.Context, input *ListUnreviewedInput) ([]*models.StandingEvent, error)

	// History returns the recent events of a player
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)

	// EventLog returns the ledger newest first
	EventLog(ctx context.Context, input *EventLogInput) ([]*models.StandingEvent, error)

	// GameLog returns recorded games, highest game id first
	GameLog(ctx context.Context, input *GameLogInput) ([]*models.StandingEvent, error)

	// GetGame retrieves a game with its participants
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// AddToBlacklist hides a player from the leaderboard
	AddToBlacklist(ctx context.Context, input *BlacklistInput) error

	// RemoveFromBlacklist shows a player on the leaderboard again
	RemoveFromBlacklist(ctx context.Context, input *BlacklistInput) error

	// ListBlacklist returns the players hidden from the leaderboard
	ListBlacklist(ctx context.Context) ([]*models.Player, error)

	// ForceReprocess zeroes every rating and replays the whole ledger
	ForceReprocess(ctx context.Context, input *AdminInput) (*projector.AdvanceOutput, error)

	// PopLastEvent irreversibly removes the newest event
	PopLastEvent(ctx context.Context, input *AdminInput) (*projector.PopLastEventOutput, error)

	// ListAudit returns the administrative operations, newest first
	ListAudit(ctx context.Context, input *ListAuditInput) ([]*models.AuditEntry, error)
}
