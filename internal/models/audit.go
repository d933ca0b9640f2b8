package models

import (
	"time"
)

// AuditAction names an administrative operation on the ledger
type AuditAction string

const (
	// AuditActionPopEvent records the removal of the latest event
	AuditActionPopEvent AuditAction = "pop_event"

	// AuditActionForceReprocess records a full replay from event zero
	AuditActionForceReprocess AuditAction = "force_reprocess"

	// AuditActionRepair records an integrity repair of the checkpoint
	AuditActionRepair AuditAction = "repair"

	// AuditActionBlacklist records a leaderboard blacklist change
	AuditActionBlacklist AuditAction = "blacklist"
)

// AuditEntry records who ran an administrative operation and what it did
type AuditEntry struct {
	// ID is the unique identifier of the entry
	ID string `json:"id"`

	// Action is the operation that ran
	Action AuditAction `json:"action"`

	// Actor is the player that ran the operation, nil for system jobs
	Actor *PlayerID `json:"actor,omitempty"`

	// Detail is a human readable description
	Detail string `json:"detail"`

	// At is when the operation ran
	At time.Time `json:"at"`
}
