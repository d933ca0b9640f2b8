package integrity

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ewar/internal/services/integrity Service

// Service defines the interface for verifying the ledger
type Service interface {
	// Run replays the whole ledger and reports every discrepancy
	Run(ctx context.Context, input *RunInput) (*Report, error)
}
