package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/ewar/internal/common/uuid UUID

// UUID generates identifiers for audit entries
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random v4 identifiers
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
