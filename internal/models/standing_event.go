package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventNumber is the dense, monotonic identifier of a standing event
type EventNumber uint32

// Decision is the moderator verdict on a standing event
type Decision struct {
	// Approved indicates the event should affect ratings
	Approved bool `json:"approved"`

	// Reviewer is the deciding moderator, nil for system jobs
	Reviewer *PlayerID `json:"reviewer,omitempty"`
}

// StandingEvent is one entry of the league ledger
type StandingEvent struct {
	// ID is the event number
	ID EventNumber

	// Decision is nil while the event awaits review
	Decision *Decision

	// Payload is the league-affecting fact
	Payload Payload

	// OccurredAt is when the event was submitted
	OccurredAt time.Time
}

// IsPending reports whether the event still awaits a decision
func (e *StandingEvent) IsPending() bool {
	return e.Decision == nil
}

// IsApproved reports whether the event was decided and approved
func (e *StandingEvent) IsApproved() bool {
	return e.Decision != nil && e.Decision.Approved
}

type payloadEnvelope struct {
	Kind PayloadKind     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type standingEventJSON struct {
	ID         EventNumber     `json:"id"`
	Decision   *Decision       `json:"decision,omitempty"`
	Payload    payloadEnvelope `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// MarshalJSON encodes the payload as a tagged envelope
func (e StandingEvent) MarshalJSON() ([]byte, error) {
	if e.Payload == nil {
		return nil, fmt.Errorf("event %d has no payload", e.ID)
	}
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", e.Payload.Kind(), err)
	}
	return json.Marshal(standingEventJSON{
		ID:         e.ID,
		Decision:   e.Decision,
		Payload:    payloadEnvelope{Kind: e.Payload.Kind(), Data: data},
		OccurredAt: e.OccurredAt,
	})
}

// UnmarshalJSON decodes a tagged payload envelope
func (e *StandingEvent) UnmarshalJSON(b []byte) error {
	var raw standingEventJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	payload, err := DecodePayload(raw.Payload.Kind, raw.Payload.Data)
	if err != nil {
		return err
	}
	e.ID = raw.ID
	e.Decision = raw.Decision
	e.Payload = payload
	e.OccurredAt = raw.OccurredAt
	return nil
}

// DecodePayload decodes data into the variant named by kind
func DecodePayload(kind PayloadKind, data []byte) (Payload, error) {
	var (
		payload Payload
		err     error
	)
	switch kind {
	case PayloadKindGameResult:
		var p GameResult
		err = json.Unmarshal(data, &p)
		payload = p
	case PayloadKindPenalty:
		var p Penalty
		err = json.Unmarshal(data, &p)
		payload = p
	case PayloadKindInactivityDecay:
		var p InactivityDecay
		err = json.Unmarshal(data, &p)
		payload = p
	case PayloadKindJoinLeague:
		var p JoinLeague
		err = json.Unmarshal(data, &p)
		payload = p
	case PayloadKindSetStanding:
		var p SetStanding
		err = json.Unmarshal(data, &p)
		payload = p
	case PayloadKindChangeStanding:
		var p ChangeStanding
		err = json.Unmarshal(data, &p)
		payload = p
	default:
		return nil, fmt.Errorf("unknown payload kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", kind, err)
	}
	return payload, nil
}
