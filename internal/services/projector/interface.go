package projector

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ewar/internal/services/projector Service

// Service defines the interface for applying decided events to player state
type Service interface {
	// Advance applies decided events from the cursor until the first pending one
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// ForceReprocess zeroes every rating and replays the whole ledger
	ForceReprocess(ctx context.Context, input *ForceReprocessInput) (*AdvanceOutput, error)

	// PopLastEvent deletes the newest event and replays if it had been applied
	PopLastEvent(ctx context.Context, input *PopLastEventInput) (*PopLastEventOutput, error)
}
