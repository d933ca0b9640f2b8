package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingEventJSONKeepsPayloadVariant(t *testing.T) {
	reviewer := PlayerID(7)
	delta := -5.0
	at := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	events := []StandingEvent{
		{ID: 3, Payload: GameResult{GameID: 2, Ranking: []PlayerID{5, 6, 7}, DurationSeconds: 900}, OccurredAt: at},
		{ID: 4, Decision: &Decision{Approved: true, Reviewer: &reviewer}, Payload: ChangeStanding{Victims: []PlayerID{5}, DeltaRating: &delta, Reason: "stalling"}, OccurredAt: at},
		{ID: 5, Decision: &Decision{Approved: false}, Payload: JoinLeague{
			Victims: []PlayerID{9}, InitialRating: 18, InitialDeviation: 9,
			Profiles: []Profile{{PlayerID: 9, DisplayName: "ren", ExternalIDs: []string{"discord:1"}}},
		}, OccurredAt: at},
	}

	for _, event := range events {
		data, err := json.Marshal(event)
		require.NoError(t, err)

		var decoded StandingEvent
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, event, decoded)
	}
}

func TestDecodePayloadRejectsUnknownKind(t *testing.T) {
	_, err := DecodePayload("tournament", []byte(`{}`))
	assert.Error(t, err)
}

func TestMarshalWithoutPayload(t *testing.T) {
	_, err := json.Marshal(StandingEvent{ID: 1})
	assert.Error(t, err)
}

func TestEventState(t *testing.T) {
	pending := &StandingEvent{}
	assert.True(t, pending.IsPending())
	assert.False(t, pending.IsApproved())

	rejected := &StandingEvent{Decision: &Decision{Approved: false}}
	assert.False(t, rejected.IsPending())
	assert.False(t, rejected.IsApproved())

	approved := &StandingEvent{Decision: &Decision{Approved: true}}
	assert.True(t, approved.IsApproved())
}

func TestPenaltyAsChangeStanding(t *testing.T) {
	p := Penalty{Victims: []PlayerID{1, 2}, DeltaRating: -2.5, Reason: "slap without cause"}
	c := p.AsChangeStanding()

	require.NotNil(t, c.DeltaRating)
	assert.Equal(t, -2.5, *c.DeltaRating)
	assert.Nil(t, c.DeltaDeviation)
	assert.Equal(t, p.Victims, c.Victims)
}

func TestTouchLastPlayedNeverMovesBackwards(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)

	p := &Player{}
	p.TouchLastPlayed(late)
	p.TouchLastPlayed(early)
	require.NotNil(t, p.LastPlayed)
	assert.Equal(t, late, *p.LastPlayed)
}

func TestCheckpointBlacklist(t *testing.T) {
	c := &LedgerCheckpoint{LeaderboardBlacklist: []PlayerID{4}}
	assert.True(t, c.IsBlacklisted(4))
	assert.False(t, c.IsBlacklisted(5))
}
