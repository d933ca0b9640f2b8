package integrity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/metrics"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
)

// service implements the Service interface
type service struct {
	ledgerRepo    ledgerRepo.Repository
	playerRepo    playerRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new integrity checker
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		ledgerRepo:    cfg.LedgerRepo,
		playerRepo:    cfg.PlayerRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("component", "integrity"),
	}, nil
}

// replay tracks what a scan from event zero derives
type replay struct {
	report *Report

	nextEvent      models.EventNumber
	nextGame       models.GameID
	firstEventGap  *models.EventNumber
	firstGameGap   *models.GameID
	firstUndecided *models.EventNumber

	// applied approved events name these players
	referenced map[models.PlayerID][]models.EventNumber
}

func (r *replay) issue(format string, args ...any) {
	r.report.Issues = append(r.report.Issues, fmt.Sprintf(format, args...))
}

func (r *replay) undecided(id models.EventNumber) {
	if r.firstUndecided == nil {
		r.firstUndecided = &id
	}
}

// skipTo reports ids between the expected one and id as missing
func (r *replay) skipTo(id models.EventNumber) {
	if id <= r.nextEvent {
		return
	}
	if id == r.nextEvent+1 {
		r.issue("event %d is missing", r.nextEvent)
	} else {
		r.issue("events %d to %d are missing", r.nextEvent, id-1)
	}
	if r.firstEventGap == nil {
		gap := r.nextEvent
		r.firstEventGap = &gap
	}
	// a missing event counts as not yet decided
	r.undecided(r.nextEvent)
}

func (r *replay) game(id models.EventNumber, game models.GameResult) {
	switch {
	case game.GameID < r.nextGame:
		r.issue("event %d records game %d out of order", id, game.GameID)
		return
	case game.GameID == r.nextGame+1:
		r.issue("game %d is missing", r.nextGame)
	case game.GameID > r.nextGame:
		r.issue("games %d to %d are missing", r.nextGame, game.GameID-1)
	}
	if game.GameID > r.nextGame && r.firstGameGap == nil {
		gap := r.nextGame
		r.firstGameGap = &gap
	}
	r.nextGame = game.GameID + 1
}

// Run replays the ledger from event zero. With Repair set and issues found,
// the checkpoint counters are clamped down to the derived values and the
// cursor is moved to the first undecided event. Ratings are never touched.
func (s *service) Run(ctx context.Context, input *RunInput) (*Report, error) {
	if input == nil {
		input = &RunInput{}
	}

	checkpoint, err := s.ledgerRepo.GetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Issues: []string{},
		Stored: Counters{
			NextEventID: checkpoint.NextEventID,
			NextGameID:  checkpoint.NextGameID,
			Cursor:      checkpoint.Cursor,
		},
	}
	r := &replay{
		report:     report,
		referenced: map[models.PlayerID][]models.EventNumber{},
	}

	for event, err := range s.ledgerRepo.ScanFrom(ctx, &ledgerRepo.ScanFromInput{}) {
		if err != nil {
			if event == nil || !errors.Is(err, ledgerRepo.ErrCorruptEvent) {
				return nil, err
			}
			report.EventsScanned++
			r.skipTo(event.ID)
			r.issue("event %d cannot be decoded: %v", event.ID, err)
			r.undecided(event.ID)
			r.nextEvent = event.ID + 1
			continue
		}

		report.EventsScanned++
		r.skipTo(event.ID)
		r.nextEvent = event.ID + 1

		if event.IsPending() {
			r.undecided(event.ID)
		}

		if game, ok := event.Payload.(models.GameResult); ok {
			r.game(event.ID, game)
			if event.IsApproved() && event.ID < checkpoint.Cursor {
				for _, id := range game.Ranking {
					r.referenced[id] = append(r.referenced[id], event.ID)
				}
			}
		}
	}

	report.Derived = Counters{
		NextEventID: r.nextEvent,
		NextGameID:  r.nextGame,
		Cursor:      r.nextEvent,
	}
	if r.firstEventGap != nil {
		report.Derived.NextEventID = *r.firstEventGap
	}
	if r.firstGameGap != nil {
		report.Derived.NextGameID = *r.firstGameGap
	}
	if r.firstUndecided != nil {
		report.Derived.Cursor = *r.firstUndecided
	}

	if err := s.checkReferences(ctx, r); err != nil {
		return nil, err
	}

	if report.Stored.NextEventID != report.Derived.NextEventID {
		r.issue("checkpoint next_event_id %d != derived %d", report.Stored.NextEventID, report.Derived.NextEventID)
	}
	if report.Stored.NextGameID != report.Derived.NextGameID {
		r.issue("checkpoint next_game_id %d != derived %d", report.Stored.NextGameID, report.Derived.NextGameID)
	}
	if report.Stored.Cursor != report.Derived.Cursor {
		r.issue("checkpoint cursor %d != derived %d", report.Stored.Cursor, report.Derived.Cursor)
	}

	metrics.IntegrityIssues.Set(float64(len(report.Issues)))
	s.logger.Info("integrity check finished",
		"events", report.EventsScanned,
		"issues", len(report.Issues),
		"repair", input.Repair,
	)

	if input.Repair && !report.OK() {
		if err := s.repair(ctx, checkpoint, report, input.Actor); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *service) checkReferences(ctx context.Context, r *replay) error {
	if len(r.referenced) == 0 {
		return nil
	}

	ids := make([]models.PlayerID, 0, len(r.referenced))
	for id := range r.referenced {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	found, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{PlayerIDs: ids})
	if err != nil {
		return err
	}

	for _, id := range found.Missing {
		r.issue("player %d referenced by applied event %d does not exist", id, r.referenced[id][0])
	}

	return nil
}

func (s *service) repair(ctx context.Context, checkpoint *models.LedgerCheckpoint, report *Report, actor *models.PlayerID) error {
	repaired := Counters{
		NextEventID: min(report.Stored.NextEventID, report.Derived.NextEventID),
		NextGameID:  min(report.Stored.NextGameID, report.Derived.NextGameID),
		Cursor:      report.Derived.Cursor,
	}

	_, err := s.ledgerRepo.ReplaceCheckpoint(ctx, &ledgerRepo.ReplaceCheckpointInput{
		ExpectedVersion: checkpoint.Version,
		NextEventID:     repaired.NextEventID,
		NextGameID:      repaired.NextGameID,
		NextPlayerID:    checkpoint.NextPlayerID,
		Cursor:          repaired.Cursor,
	})
	if err != nil {
		return fmt.Errorf("failed to repair checkpoint: %w", err)
	}
	report.Repaired = &repaired

	err = s.ledgerRepo.AppendAudit(ctx, &ledgerRepo.AppendAuditInput{Entry: &models.AuditEntry{
		ID:     s.uuidGenerator.NewUUID(),
		Action: models.AuditActionRepair,
		Actor:  actor,
		Detail: fmt.Sprintf("checkpoint %s repaired to %s", report.Stored, repaired),
		At:     s.clock.Now(),
	}})
	if err != nil {
		s.logger.Error("failed to record audit entry", "action", models.AuditActionRepair, "error", err)
	}

	s.logger.Warn("checkpoint repaired", "from", report.Stored.String(), "to", repaired.String())
	return nil
}
