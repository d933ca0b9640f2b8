package decay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/metrics"
	"github.com/KirkDiggler/ewar/internal/models"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/projector"
)

// service implements the Service interface
type service struct {
	ledgerRepo     ledgerRepo.Repository
	playerRepo     playerRepo.Repository
	projector      projector.Service
	clock          clock.Clock
	logger         *slog.Logger
	inactiveAfter  time.Duration
	deltaDeviation float64
}

// New creates a new decay job
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

	if cfg.Projector == nil {
		return nil, ErrNilProjector
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.DeltaDeviation < 0 {
		return nil, ErrBadAmount
	}

	inactiveAfter := cfg.InactiveAfter
	if inactiveAfter <= 0 {
		inactiveAfter = DefaultInactiveAfter
	}

	deltaDeviation := cfg.DeltaDeviation
	if deltaDeviation == 0 {
		deltaDeviation = DefaultDeltaDeviation
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		ledgerRepo:     cfg.LedgerRepo,
		playerRepo:     cfg.PlayerRepo,
		projector:      cfg.Projector,
		clock:          cfg.Clock,
		logger:         logger.With("component", "decay"),
		inactiveAfter:  inactiveAfter,
		deltaDeviation: deltaDeviation,
	}, nil
}

// Name implements Service
func (s *service) Name() string {
	return "inactivity_decay"
}

// Run records one self-approved decay for every player whose last game is
// older than the inactivity window, then lets the projector apply it.
// Players that never played are left alone.
func (s *service) Run(ctx context.Context) (*RunOutput, error) {
	now := s.clock.Now()

	inactive, err := s.playerRepo.ListInactive(ctx, &playerRepo.ListInactiveInput{
		PlayedBefore: now.Add(-s.inactiveAfter),
	})
	if err != nil {
		return nil, err
	}

	output := &RunOutput{Victims: make([]models.PlayerID, 0, len(inactive.Players))}
	for _, player := range inactive.Players {
		output.Victims = append(output.Victims, player.ID)
	}

	if len(output.Victims) == 0 {
		s.logger.Info("no inactive players")
		return output, nil
	}

	reserved, err := s.ledgerRepo.ReserveIDs(ctx, &ledgerRepo.ReserveIDsInput{Events: 1})
	if err != nil {
		return nil, err
	}

	event := &models.StandingEvent{
		ID:       reserved.FirstEventID,
		Decision: &models.Decision{Approved: true},
		Payload: models.InactivityDecay{
			Victims:        output.Victims,
			DeltaDeviation: s.deltaDeviation,
		},
		OccurredAt: now,
	}
	if err := s.ledgerRepo.AppendEvent(ctx, &ledgerRepo.AppendEventInput{Event: event}); err != nil {
		if !errors.Is(err, ledgerRepo.ErrDuplicateEventID) {
			// a rejected copy keeps the reserved id from blocking the projector
			filler := *event
			filler.Decision = &models.Decision{Approved: false}
			if fillErr := s.ledgerRepo.AppendEvent(ctx, &ledgerRepo.AppendEventInput{Event: &filler}); fillErr != nil {
				s.logger.Error("failed to fill reserved event", "event", event.ID, "error", fillErr)
			} else {
				s.logger.Warn("decay event filled as rejected", "event", event.ID, "cause", err)
			}
		}
		return nil, err
	}
	output.EventID = &event.ID

	metrics.EventsAppended.WithLabelValues(string(models.PayloadKindInactivityDecay)).Inc()
	metrics.DecayVictims.Add(float64(len(output.Victims)))
	s.logger.Info("inactivity decay recorded", "event", event.ID, "victims", len(output.Victims))

	output.Advance, err = s.projector.Advance(ctx, &projector.AdvanceInput{})
	if err != nil {
		return output, fmt.Errorf("decay event %d was stored but the projector failed: %w", event.ID, err)
	}

	return output, nil
}
