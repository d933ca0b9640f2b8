package projector

// ProjectorError is a custom error type for projection failures
type ProjectorError string

// Error implements the error interface
func (e ProjectorError) Error() string {
	return string(e)
}

const (
	ErrUnsupportedPayload      ProjectorError = "payload kind cannot be applied"
	ErrMissingReferencedPlayer ProjectorError = "event references a player that does not exist"
	ErrInvalidPayload          ProjectorError = "payload is malformed"
	ErrCursorMoved             ProjectorError = "cursor was moved by another writer"
	ErrNilConfig               ProjectorError = "config cannot be nil"
	ErrNilLedgerRepo           ProjectorError = "ledger repository cannot be nil"
	ErrNilPlayerRepo           ProjectorError = "player repository cannot be nil"
	ErrNilClock                ProjectorError = "clock cannot be nil"
	ErrNilUUIDGenerator        ProjectorError = "UUID generator cannot be nil"
)
