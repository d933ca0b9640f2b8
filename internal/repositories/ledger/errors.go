package ledger

import "errors"

var (
	// ErrIDReservationFailed is returned when the store could not reserve ids. It is retryable.
	ErrIDReservationFailed = errors.New("failed to reserve ledger ids")

	// ErrDuplicateEventID is returned when an event id is already stored
	ErrDuplicateEventID = errors.New("event id already exists")

	// ErrEventNotFound is returned when an event is not found
	ErrEventNotFound = errors.New("event not found")

	// ErrAlreadyDecided is returned when an event already has a decision
	ErrAlreadyDecided = errors.New("event already decided")

	// ErrCheckpointConflict is returned when the checkpoint changed since it was read
	ErrCheckpointConflict = errors.New("checkpoint changed concurrently")

	// ErrCorruptEvent is returned when a stored event cannot be decoded
	ErrCorruptEvent = errors.New("stored event cannot be decoded")
)
