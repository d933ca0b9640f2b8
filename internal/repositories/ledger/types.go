package ledger

import "github.com/KirkDiggler/ewar/internal/models"

// ReserveIDsInput contains the number of ids to reserve per counter
type ReserveIDsInput struct {
	Events  int
	Games   int
	Players int
}

// ReserveIDsOutput contains the first id of every reserved range
type ReserveIDsOutput struct {
	FirstEventID  models.EventNumber
	FirstGameID   models.GameID
	FirstPlayerID models.PlayerID
}

// AppendEventInput contains the event to store. A non-nil decision is
// stored with the event, which is how trusted submitters self-approve.
type AppendEventInput struct {
	Event *models.StandingEvent
}

// DecideEventInput contains parameters for deciding an event
type DecideEventInput struct {
	EventID  models.EventNumber
	Approved bool
	Reviewer *models.PlayerID
}

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID models.EventNumber
}

// GetEventByGameIDInput contains parameters for retrieving a game's event
type GetEventByGameIDInput struct {
	GameID models.GameID
}

// ListUndecidedInput contains parameters for listing pending events
type ListUndecidedInput struct {
	Limit int
}

// ListEventsForPlayerInput contains parameters for a player's history
type ListEventsForPlayerInput struct {
	PlayerID models.PlayerID
	Limit    int
}

// ListEventsInput contains parameters for browsing the ledger. Before is
// inclusive.
type ListEventsInput struct {
	Before *models.EventNumber
	Limit  int
}

// ListGamesInput contains parameters for browsing recorded games. Before is
// inclusive.
type ListGamesInput struct {
	Before *models.GameID
	Limit  int
}

// ListEventsOutput contains a list of events
type ListEventsOutput struct {
	Events []*models.StandingEvent
}

// ScanFromInput contains parameters for scanning the ledger
type ScanFromInput struct {
	From     models.EventNumber
	PageSize int
}

// AdvanceCursorInput contains the cursor target
type AdvanceCursorInput struct {
	To models.EventNumber
}

// ReplaceCheckpointInput contains the counters to write and the version
// they were derived from
type ReplaceCheckpointInput struct {
	ExpectedVersion int64
	NextEventID     models.EventNumber
	NextGameID      models.GameID
	NextPlayerID    models.PlayerID
	Cursor          models.EventNumber
}

// BlacklistInput identifies a player for the leaderboard blacklist
type BlacklistInput struct {
	PlayerID models.PlayerID
}

// AppendAuditInput contains the entry to record
type AppendAuditInput struct {
	Entry *models.AuditEntry
}

// ListAuditInput contains parameters for listing audit entries
type ListAuditInput struct {
	Limit int
}
