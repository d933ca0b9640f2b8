package decay

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/ewar/internal/services/decay Service

// Service defines the interface for the inactivity decay job
type Service interface {
	// Name identifies the job in logs and schedules
	Name() string

	// Run decays the deviation of every inactive player once
	Run(ctx context.Context) (*RunOutput, error)
}
