package projector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/metrics"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
)

const defaultPageSize = 100

// service implements the Service interface
type service struct {
	ledgerRepo    ledgerRepo.Repository
	playerRepo    playerRepo.Repository
	engine        *rating.Engine
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
	pageSize      int

	// lock serializes every writer of player ratings and the cursor
	lock *semaphore.Weighted
}

// New creates a new projector
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

	engine := cfg.Engine
	if engine == nil {
		engine = rating.Default
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &service{
		ledgerRepo:    cfg.LedgerRepo,
		playerRepo:    cfg.PlayerRepo,
		engine:        engine,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("component", "projector"),
		pageSize:      pageSize,
		lock:          semaphore.NewWeighted(1),
	}, nil
}

// Advance applies decided events in id order starting at the cursor. It stops
// at the first pending or missing event, at StopBefore, or at the end of the
// ledger. Every event is committed together with the cursor move past it.
func (s *service) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.lock.Release(1)

	var stopBefore *models.EventNumber
	if input != nil {
		stopBefore = input.StopBefore
	}

	return s.advance(ctx, stopBefore, "advance")
}

// ForceReprocess drops every projected player, rewinds the cursor and
// replays the whole ledger
func (s *service) ForceReprocess(ctx context.Context, input *ForceReprocessInput) (*AdvanceOutput, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.lock.Release(1)

	var actor *models.PlayerID
	if input != nil {
		actor = input.Actor
	}

	return s.reprocess(ctx, actor, "players dropped and cursor reset to 0")
}

// PopLastEvent removes the newest event. A removed enrollment gives its
// handles and accounts back. If the effect had already been applied the
// ledger is replayed so no trace of it remains.
func (s *service) PopLastEvent(ctx context.Context, input *PopLastEventInput) (*PopLastEventOutput, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.lock.Release(1)

	var actor *models.PlayerID
	if input != nil {
		actor = input.Actor
	}

	checkpoint, err := s.ledgerRepo.GetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	event, err := s.ledgerRepo.PopLastEvent(ctx)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, models.AuditActionPopEvent, actor,
		fmt.Sprintf("removed event %d (%s)", event.ID, event.Payload.Kind()))
	s.logger.Warn("removed last event", "event_id", event.ID, "kind", event.Payload.Kind())

	output := &PopLastEventOutput{Event: event}
	if join, ok := event.Payload.(models.JoinLeague); ok && (event.IsPending() || event.IsApproved()) {
		// rejected enrollments never held the claims
		if err := s.releaseEnrollment(ctx, join); err != nil {
			return output, err
		}
	}

	if event.ID < checkpoint.Cursor && event.IsApproved() {
		replay, err := s.reprocess(ctx, actor, fmt.Sprintf("replay after removing event %d", event.ID))
		if err != nil {
			return output, err
		}
		output.Replay = replay
	}

	return output, nil
}

func (s *service) releaseEnrollment(ctx context.Context, join models.JoinLeague) error {
	for _, profile := range join.Profiles {
		err := s.playerRepo.ReleaseIdentity(ctx, &playerRepo.ClaimIdentityInput{
			PlayerID:    profile.PlayerID,
			Handle:      profile.DisplayName,
			ExternalIDs: profile.ExternalIDs,
		})
		if err != nil {
			return err
		}
		s.logger.Info("released identity of removed enrollment", "player", profile.PlayerID, "handle", profile.DisplayName)
	}
	return nil
}

func (s *service) reprocess(ctx context.Context, actor *models.PlayerID, detail string) (*AdvanceOutput, error) {
	if err := s.playerRepo.ResetProjection(ctx); err != nil {
		return nil, err
	}
	s.audit(ctx, models.AuditActionForceReprocess, actor, detail)

	return s.advance(ctx, nil, "reprocess")
}

// advance must be called with the lock held
func (s *service) advance(ctx context.Context, stopBefore *models.EventNumber, mode string) (*AdvanceOutput, error) {
	timer := prometheus.NewTimer(metrics.AdvanceDuration.WithLabelValues(mode))
	defer timer.ObserveDuration()

	logger := s.logger.With("run_id", s.uuidGenerator.NewUUID(), "mode", mode)

	checkpoint, err := s.ledgerRepo.GetCheckpoint(ctx)
	if err != nil {
		metrics.AdvanceErrors.Inc()
		return nil, err
	}

	start := checkpoint.Cursor
	output := &AdvanceOutput{Cursor: start}

	fail := func(err error) (*AdvanceOutput, error) {
		metrics.AdvanceErrors.Inc()
		metrics.Cursor.Set(float64(output.Cursor))
		logger.Error("projector stopped", "cursor", output.Cursor, "error", err)
		return output, err
	}

	for event, err := range s.ledgerRepo.ScanFrom(ctx, &ledgerRepo.ScanFromInput{From: start, PageSize: s.pageSize}) {
		if stopBefore != nil && output.Cursor >= *stopBefore {
			break
		}
		if err != nil {
			if event != nil && event.ID > output.Cursor {
				// the undecodable event is not reached yet, a gap comes first
				blocked := output.Cursor
				output.BlockedAt = &blocked
				break
			}
			return fail(err)
		}

		if event.ID != output.Cursor || event.IsPending() {
			// missing ids count as not yet decided
			blocked := output.Cursor
			output.BlockedAt = &blocked
			break
		}

		var players []*models.Player
		if event.IsApproved() {
			players, err = s.effect(ctx, event)
			if err != nil {
				return fail(fmt.Errorf("event %d: %w", event.ID, err))
			}
		}

		commit, err := s.playerRepo.CommitEffect(ctx, &playerRepo.CommitEffectInput{
			Players: players,
			Cursor:  event.ID + 1,
		})
		if err != nil {
			return fail(err)
		}
		if !commit.Applied {
			output.Cursor = commit.Cursor
			return fail(fmt.Errorf("%w: expected %d, found %d", ErrCursorMoved, event.ID, commit.Cursor))
		}
		output.Cursor = commit.Cursor

		decision := "rejected"
		if event.IsApproved() {
			decision = "approved"
			output.Applied++
		} else {
			output.Rejected++
		}
		metrics.EventsProcessed.WithLabelValues(string(event.Payload.Kind()), decision).Inc()
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	metrics.Cursor.Set(float64(output.Cursor))
	if output.Cursor != start {
		logger.Info("advanced approval cursor",
			"from", start,
			"to", output.Cursor,
			"applied", output.Applied,
			"rejected", output.Rejected,
		)
	}

	return output, nil
}

func (s *service) audit(ctx context.Context, action models.AuditAction, actor *models.PlayerID, detail string) {
	err := s.ledgerRepo.AppendAudit(ctx, &ledgerRepo.AppendAuditInput{Entry: &models.AuditEntry{
		ID:     s.uuidGenerator.NewUUID(),
		Action: action,
		Actor:  actor,
		Detail: detail,
		At:     s.clock.Now(),
	}})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("failed to record audit entry", "action", action, "error", err)
	}
}
