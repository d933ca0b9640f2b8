package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/metrics"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/integrity"
	"github.com/KirkDiggler/ewar/internal/services/projector"
)

const (
	defaultListLimit     = 10
	defaultAuditLimit    = 50
	defaultEventLogLimit = 200
	defaultGameLogLimit  = 50
)

var handlePattern = regexp.MustCompile(`^[a-z\d_.]{1,32}$`)

// service implements the Service interface
type service struct {
	ledgerRepo       ledgerRepo.Repository
	playerRepo       playerRepo.Repository
	projector        projector.Service
	integrityChecker integrity.Service
	engine           *rating.Engine
	clock            clock.Clock
	uuidGenerator    uuid.UUID
	logger           *slog.Logger
	moderators       map[models.PlayerID]struct{}
}

// New creates a new league service
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

	if cfg.IntegrityChecker == nil {
		return nil, ErrNilIntegrityChecker
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

	moderators := make(map[models.PlayerID]struct{}, len(cfg.Moderators))
	for _, id := range cfg.Moderators {
		moderators[id] = struct{}{}
	}

	return &service{
		ledgerRepo:       cfg.LedgerRepo,
		playerRepo:       cfg.PlayerRepo,
		projector:        cfg.Projector,
		integrityChecker: cfg.IntegrityChecker,
		engine:           engine,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
		logger:           logger.With("component", "league"),
		moderators:       moderators,
	}, nil
}

// SubmitGame records a finished game. Trusted submissions are stored already
// approved and the projector runs right away, everything else waits for review.
func (s *service) SubmitGame(ctx context.Context, input *SubmitGameInput) (*SubmitGameOutput, error) {
	if input == nil || len(input.Ranking) < 2 {
		return nil, ErrNotEnoughParticipants
	}

	if err := checkDistinct(input.Ranking); err != nil {
		return nil, err
	}

	if input.Trusted {
		if err := s.requireModerator(input.Submitter); err != nil {
			return nil, err
		}
	} else if input.Submitter != nil && !slices.Contains(input.Ranking, *input.Submitter) {
		return nil, ErrSubmitterNotInGame
	}

	if err := s.requireRegistered(ctx, input.Ranking); err != nil {
		return nil, err
	}

	var decision *models.Decision
	if input.Trusted {
		decision = &models.Decision{Approved: true, Reviewer: input.Submitter}
	}

	var gameID models.GameID
	event, err := s.record(ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Games: 1}, decision,
		func(reserved *ledgerRepo.ReserveIDsOutput) models.Payload {
			gameID = reserved.FirstGameID
			return models.GameResult{
				GameID:          reserved.FirstGameID,
				Ranking:         slices.Clone(input.Ranking),
				DurationSeconds: input.DurationSeconds,
			}
		})
	if err != nil {
		return nil, err
	}

	output := &SubmitGameOutput{
		EventID:  event.ID,
		GameID:   gameID,
		Approved: input.Trusted,
	}
	if !input.Trusted {
		return output, nil
	}

	output.Advance, err = s.advance(ctx, event.ID)
	return output, err
}

// DecideEvent records the decision of a pending event and moves the approval
// pointer. A caller that loses a race gets ledger.ErrAlreadyDecided.
func (s *service) DecideEvent(ctx context.Context, input *DecideEventInput) (*DecideEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.requireModerator(input.Reviewer); err != nil {
		return nil, err
	}

	return s.decide(ctx, input.EventID, input.Approved, input.Reviewer)
}

// DecideGame decides the event that recorded a game
func (s *service) DecideGame(ctx context.Context, input *DecideGameInput) (*DecideEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.requireModerator(input.Reviewer); err != nil {
		return nil, err
	}

	event, err := s.ledgerRepo.GetEventByGameID(ctx, &ledgerRepo.GetEventByGameIDInput{GameID: input.GameID})
	if err != nil {
		return nil, err
	}

	if _, ok := event.Payload.(models.GameResult); !ok {
		return nil, fmt.Errorf("%w: event %d", ErrNotAGame, event.ID)
	}

	return s.decide(ctx, event.ID, input.Approved, input.Reviewer)
}

func (s *service) decide(ctx context.Context, id models.EventNumber, approved bool, reviewer *models.PlayerID) (*DecideEventOutput, error) {
	event, err := s.ledgerRepo.DecideEvent(ctx, &ledgerRepo.DecideEventInput{
		EventID:  id,
		Approved: approved,
		Reviewer: reviewer,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event decided", "event", id, "approved", approved, "kind", event.Payload.Kind())

	output := &DecideEventOutput{Event: event}
	output.Advance, err = s.advance(ctx, id)
	return output, err
}

// Advance moves the approval pointer
func (s *service) Advance(ctx context.Context, input *AdvanceInput) (*projector.AdvanceOutput, error) {
	var advanceInput projector.AdvanceInput
	if input != nil {
		if err := s.requireModerator(input.Actor); err != nil {
			return nil, err
		}
		advanceInput.StopBefore = input.StopBefore
	}

	return s.projector.Advance(ctx, &advanceInput)
}

// advance runs the projector after event was written. The write already
// succeeded, so a failing run is reported alongside it.
func (s *service) advance(ctx context.Context, event models.EventNumber) (*projector.AdvanceOutput, error) {
	output, err := s.projector.Advance(ctx, &projector.AdvanceInput{})
	if err != nil {
		return nil, fmt.Errorf("event %d was stored but the projector failed: %w", event, err)
	}
	return output, nil
}

// PreviewOutcome computes the ratings a game would produce from the current projection
func (s *service) PreviewOutcome(ctx context.Context, input *PreviewOutcomeInput) (*PreviewOutcomeOutput, error) {
	if input == nil || len(input.Ranking) < 2 {
		return nil, ErrNotEnoughParticipants
	}

	if err := checkDistinct(input.Ranking); err != nil {
		return nil, err
	}

	found, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{PlayerIDs: input.Ranking})
	if err != nil {
		return nil, err
	}
	if len(found.Missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPlayer, found.Missing)
	}

	old := make([]models.Rating, len(input.Ranking))
	for i, id := range input.Ranking {
		old[i] = found.Players[id].Rating
	}

	updated, err := s.engine.ApplyGameOutcome(old)
	if err != nil {
		return nil, err
	}
	chances := s.engine.ExpectedWinProbabilities(old)

	output := &PreviewOutcomeOutput{Entries: make([]*PreviewEntry, len(input.Ranking))}
	for i, id := range input.Ranking {
		output.Entries[i] = &PreviewEntry{
			Player:           found.Players[id],
			New:              updated[i],
			LeaderboardDelta: rating.LeaderboardValue(updated[i]) - rating.LeaderboardValue(old[i]),
			WinProbability:   chances[i],
		}
		output.RatingSupplyDelta += updated[i].Mean - old[i].Mean
	}

	return output, nil
}

// GetPlayer retrieves a player by league id
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID})
}

// FindPlayerByHandle retrieves a player by handle
func (s *service) FindPlayerByHandle(ctx context.Context, input *FindPlayerByHandleInput) (*models.Player, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.playerRepo.FindByHandle(ctx, &playerRepo.FindByHandleInput{Handle: strings.ToLower(input.Handle)})
}

// FindPlayerByExternalID retrieves a player by linked chat account
func (s *service) FindPlayerByExternalID(ctx context.Context, input *FindPlayerByExternalIDInput) (*models.Player, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.playerRepo.FindByExternalID(ctx, &playerRepo.FindByExternalIDInput{ExternalID: input.ExternalID})
}

// ListByLeaderboardValue returns the standings without blacklisted players.
// Provisional players are left out unless asked for.
func (s *service) ListByLeaderboardValue(ctx context.Context, input *ListByLeaderboardValueInput) (*models.Leaderboard, error) {
	if input == nil {
		input = &ListByLeaderboardValueInput{}
	}

	checkpoint, err := s.ledgerRepo.GetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := s.playerRepo.ListByLeaderboard(ctx, &playerRepo.ListByLeaderboardInput{})
	if err != nil {
		return nil, err
	}

	leaderboard := &models.Leaderboard{
		IncludesProvisional: input.IncludeProvisional,
		Entries:             []*models.LeaderboardEntry{},
	}
	for _, player := range ranked.Players {
		if checkpoint.IsBlacklisted(player.ID) {
			continue
		}

		provisional := rating.IsProvisional(player.Rating)
		if provisional && !input.IncludeProvisional {
			continue
		}

		leaderboard.Entries = append(leaderboard.Entries, &models.LeaderboardEntry{
			Position:    len(leaderboard.Entries) + 1,
			Player:      player,
			Value:       rating.LeaderboardValue(player.Rating),
			Provisional: provisional,
		})

		if input.Limit > 0 && len(leaderboard.Entries) == input.Limit {
			break
		}
	}

	return leaderboard, nil
}

// RunIntegrityCheck verifies the ledger
func (s *service) RunIntegrityCheck(ctx context.Context, input *RunIntegrityCheckInput) (*integrity.Report, error) {
	if input == nil {
		input = &RunIntegrityCheckInput{}
	}

	if err := s.requireModerator(input.Actor); err != nil {
		return nil, err
	}

	return s.integrityChecker.Run(ctx, &integrity.RunInput{Repair: input.Repair, Actor: input.Actor})
}

// Register enrolls a player under a validated handle. The enrollment is
// self-approved, so the player exists once the projector has caught up.
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	handle := strings.ToLower(input.Handle)
	if !handlePattern.MatchString(handle) {
		return nil, ErrInvalidHandle
	}

	return s.enroll(ctx, handle, input.ExternalID, nil)
}

// ForceRegister enrolls a player on behalf of someone else. The handle is
// only lower-cased.
func (s *service) ForceRegister(ctx context.Context, input *ForceRegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.requireModerator(input.Moderator); err != nil {
		return nil, err
	}

	handle := strings.ToLower(strings.TrimSpace(input.Handle))
	if handle == "" {
		return nil, ErrInvalidHandle
	}

	return s.enroll(ctx, handle, input.ExternalID, input.Moderator)
}

func (s *service) enroll(ctx context.Context, handle, externalID string, reviewer *models.PlayerID) (*RegisterOutput, error) {
	reserved, err := s.ledgerRepo.ReserveIDs(ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Players: 1})
	if err != nil {
		return nil, err
	}

	claim := &playerRepo.ClaimIdentityInput{
		PlayerID: reserved.FirstPlayerID,
		Handle:   handle,
	}
	if externalID != "" {
		claim.ExternalIDs = []string{externalID}
	}

	join := models.JoinLeague{
		Victims:          []models.PlayerID{reserved.FirstPlayerID},
		InitialRating:    rating.DefaultRating.Mean,
		InitialDeviation: rating.DefaultRating.Uncertainty,
		Profiles: []models.Profile{{
			PlayerID:    reserved.FirstPlayerID,
			DisplayName: handle,
			ExternalIDs: claim.ExternalIDs,
		}},
	}

	event := &models.StandingEvent{
		ID:         reserved.FirstEventID,
		Decision:   &models.Decision{Approved: true, Reviewer: reviewer},
		Payload:    join,
		OccurredAt: s.clock.Now(),
	}

	if claimErr := s.playerRepo.ClaimIdentity(ctx, claim); claimErr != nil {
		s.fillReserved(ctx, event, claimErr)
		return nil, claimErr
	}

	if err := s.appendEvent(ctx, event); err != nil {
		if releaseErr := s.playerRepo.ReleaseIdentity(ctx, claim); releaseErr != nil {
			s.logger.Error("failed to release identity", "player", claim.PlayerID, "error", releaseErr)
		}
		s.fillReserved(ctx, event, err)
		return nil, err
	}

	s.logger.Info("player registered", "player", reserved.FirstPlayerID, "handle", handle, "event", event.ID)

	output := &RegisterOutput{
		PlayerID: reserved.FirstPlayerID,
		EventID:  event.ID,
	}
	output.Advance, err = s.advance(ctx, event.ID)
	return output, err
}

// Penalize records an approved penalty taking Amount rating from Target
func (s *service) Penalize(ctx context.Context, input *PenalizeInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.requireModerator(input.Moderator); err != nil {
		return nil, err
	}

	if err := s.requireRegistered(ctx, []models.PlayerID{input.Target}); err != nil {
		return nil, err
	}

	return s.recordApproved(ctx, input.Moderator, models.Penalty{
		Victims:     []models.PlayerID{input.Target},
		DeltaRating: -input.Amount,
		Reason:      input.Reason,
	})
}

// ChangeStanding records an approved standing change
func (s *service) ChangeStanding(ctx context.Context, input *ChangeStandingInput) (*EventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.requireModerator(input.Moderator); err != nil {
		return nil, err
	}

	if len(input.Victims) == 0 {
		return nil, ErrNoVictims
	}

	if input.DeltaRating == nil && input.DeltaDeviation == nil {
		return nil, ErrEmptyChange
	}

	if err := checkDistinct(input.Victims); err != nil {
		return nil, err
	}

	if err := s.requireRegistered(ctx, input.Victims); err != nil {
		return nil, err
	}

	return s.recordApproved(ctx, input.Moderator, models.ChangeStanding{
		Victims:        slices.Clone(input.Victims),
		DeltaRating:    input.DeltaRating,
		DeltaDeviation: input.DeltaDeviation,
		Reason:         input.Reason,
	})
}

func (s *service) recordApproved(ctx context.Context, reviewer *models.PlayerID, payload models.Payload) (*EventOutput, error) {
	event, err := s.record(ctx, &ledgerRepo.ReserveIDsInput{Events: 1},
		&models.Decision{Approved: true, Reviewer: reviewer},
		func(*ledgerRepo.ReserveIDsOutput) models.Payload { return payload })
	if err != nil {
		return nil, err
	}

	output := &EventOutput{EventID: event.ID}
	output.Advance, err = s.advance(ctx, event.ID)
	return output, err
}

// ListUnreviewed returns the oldest pending events
func (s *service) ListUnreviewed(ctx context.Context, input *ListUnreviewedInput) ([]*models.StandingEvent, error) {
	limit := defaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	output, err := s.ledgerRepo.ListUndecided(ctx, &ledgerRepo.ListUndecidedInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return output.Events, nil
}

// History returns a player with their most recent events. Runs of inactivity
// decay collapse into one entry.
func (s *service) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	limit := defaultListLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	events, err := s.ledgerRepo.ListEventsForPlayer(ctx, &ledgerRepo.ListEventsForPlayerInput{
		PlayerID: input.PlayerID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	output := &HistoryOutput{Player: player, Entries: []*HistoryEntry{}}
	for _, event := range events.Events {
		if n := len(output.Entries); n > 0 {
			last := output.Entries[n-1]
			_, lastDecay := last.Event.Payload.(models.InactivityDecay)
			_, decay := event.Payload.(models.InactivityDecay)
			if lastDecay && decay {
				last.Repeats++
				continue
			}
		}
		output.Entries = append(output.Entries, &HistoryEntry{Event: event, Repeats: 1})
	}

	return output, nil
}

// EventLog returns the ledger newest first
func (s *service) EventLog(ctx context.Context, input *EventLogInput) ([]*models.StandingEvent, error) {
	if input == nil {
		input = &EventLogInput{}
	}

	limit := defaultEventLogLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	output, err := s.ledgerRepo.ListEvents(ctx, &ledgerRepo.ListEventsInput{Before: input.Before, Limit: limit})
	if err != nil {
		return nil, err
	}

	return output.Events, nil
}

// GameLog returns recorded games, highest game id first
func (s *service) GameLog(ctx context.Context, input *GameLogInput) ([]*models.StandingEvent, error) {
	if input == nil {
		input = &GameLogInput{}
	}

	limit := defaultGameLogLimit
	if input.Limit > 0 {
		limit = input.Limit
	}

	output, err := s.ledgerRepo.ListGames(ctx, &ledgerRepo.ListGamesInput{Before: input.Before, Limit: limit})
	if err != nil {
		return nil, err
	}

	return output.Events, nil
}

// GetGame retrieves a game with its participants in placement order
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.ledgerRepo.GetEventByGameID(ctx, &ledgerRepo.GetEventByGameIDInput{GameID: input.GameID})
	if err != nil {
		return nil, err
	}

	game, ok := event.Payload.(models.GameResult)
	if !ok {
		return nil, fmt.Errorf("%w: event %d", ErrNotAGame, event.ID)
	}

	found, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{PlayerIDs: game.Ranking})
	if err != nil {
		return nil, err
	}

	output := &GetGameOutput{Event: event, Game: game, Players: make([]*models.Player, len(game.Ranking))}
	for i, id := range game.Ranking {
		output.Players[i] = found.Players[id]
	}

	return output, nil
}

// AddToBlacklist hides a player from the leaderboard
func (s *service) AddToBlacklist(ctx context.Context, input *BlacklistInput) error {
	return s.changeBlacklist(ctx, input, true)
}

// RemoveFromBlacklist shows a player on the leaderboard again
func (s *service) RemoveFromBlacklist(ctx context.Context, input *BlacklistInput) error {
	return s.changeBlacklist(ctx, input, false)
}

func (s *service) changeBlacklist(ctx context.Context, input *BlacklistInput, add bool) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.requireModerator(input.Moderator); err != nil {
		return err
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	checkpoint, err := s.ledgerRepo.GetCheckpoint(ctx)
	if err != nil {
		return err
	}

	listed := checkpoint.IsBlacklisted(player.ID)
	var detail string
	switch {
	case add && listed:
		return ErrAlreadyBlacklisted
	case !add && !listed:
		return ErrNotBlacklisted
	case add:
		err = s.ledgerRepo.AddToBlacklist(ctx, &ledgerRepo.BlacklistInput{PlayerID: player.ID})
		detail = fmt.Sprintf("%s (%d) blacklisted from leaderboard", player.DisplayName, player.ID)
	default:
		err = s.ledgerRepo.RemoveFromBlacklist(ctx, &ledgerRepo.BlacklistInput{PlayerID: player.ID})
		detail = fmt.Sprintf("%s (%d) no longer blacklisted from leaderboard", player.DisplayName, player.ID)
	}
	if err != nil {
		return err
	}

	s.audit(ctx, models.AuditActionBlacklist, input.Moderator, detail)
	return nil
}

// ListBlacklist returns the blacklisted players in id order
func (s *service) ListBlacklist(ctx context.Context) ([]*models.Player, error) {
	checkpoint, err := s.ledgerRepo.GetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{PlayerIDs: checkpoint.LeaderboardBlacklist})
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(found.Players))
	for _, id := range checkpoint.LeaderboardBlacklist {
		if player, ok := found.Players[id]; ok {
			players = append(players, player)
		}
	}

	return players, nil
}

// ForceReprocess zeroes every rating and replays the whole ledger
func (s *service) ForceReprocess(ctx context.Context, input *AdminInput) (*projector.AdvanceOutput, error) {
	actor := actorOf(input)
	if err := s.requireModerator(actor); err != nil {
		return nil, err
	}

	return s.projector.ForceReprocess(ctx, &projector.ForceReprocessInput{Actor: actor})
}

// PopLastEvent irreversibly removes the newest event
func (s *service) PopLastEvent(ctx context.Context, input *AdminInput) (*projector.PopLastEventOutput, error) {
	actor := actorOf(input)
	if err := s.requireModerator(actor); err != nil {
		return nil, err
	}

	return s.projector.PopLastEvent(ctx, &projector.PopLastEventInput{Actor: actor})
}

// ListAudit returns the administrative operations, newest first
func (s *service) ListAudit(ctx context.Context, input *ListAuditInput) ([]*models.AuditEntry, error) {
	limit := defaultAuditLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	return s.ledgerRepo.ListAudit(ctx, &ledgerRepo.ListAuditInput{Limit: limit})
}

// record reserves ids, builds the payload from them and appends the event
func (s *service) record(ctx context.Context, reserve *ledgerRepo.ReserveIDsInput, decision *models.Decision, build func(*ledgerRepo.ReserveIDsOutput) models.Payload) (*models.StandingEvent, error) {
	reserved, err := s.ledgerRepo.ReserveIDs(ctx, reserve)
	if err != nil {
		return nil, err
	}

	event := &models.StandingEvent{
		ID:         reserved.FirstEventID,
		Decision:   decision,
		Payload:    build(reserved),
		OccurredAt: s.clock.Now(),
	}
	if err := s.appendEvent(ctx, event); err != nil {
		s.fillReserved(ctx, event, err)
		return nil, err
	}

	s.logger.Info("event recorded",
		"event", event.ID,
		"kind", event.Payload.Kind(),
		"approved", event.IsApproved(),
	)

	return event, nil
}

// fillReserved stores a rejected copy of an event that could not be stored as
// intended. A reserved id left empty would block the projector for good.
func (s *service) fillReserved(ctx context.Context, event *models.StandingEvent, cause error) {
	if errors.Is(cause, ledgerRepo.ErrDuplicateEventID) {
		return
	}

	filler := *event
	filler.Decision = &models.Decision{Approved: false}
	if event.Decision != nil {
		filler.Decision.Reviewer = event.Decision.Reviewer
	}

	if err := s.appendEvent(ctx, &filler); err != nil {
		s.logger.Error("failed to fill reserved event", "event", event.ID, "error", err)
		return
	}
	s.logger.Warn("reserved event filled as rejected", "event", event.ID, "kind", event.Payload.Kind(), "cause", cause)

	if _, err := s.advance(ctx, event.ID); err != nil {
		s.logger.Error("failed to advance past filled event", "event", event.ID, "error", err)
	}
}

func (s *service) appendEvent(ctx context.Context, event *models.StandingEvent) error {
	if err := s.ledgerRepo.AppendEvent(ctx, &ledgerRepo.AppendEventInput{Event: event}); err != nil {
		return err
	}

	metrics.EventsAppended.WithLabelValues(string(event.Payload.Kind())).Inc()
	return nil
}

func (s *service) audit(ctx context.Context, action models.AuditAction, actor *models.PlayerID, detail string) {
	err := s.ledgerRepo.AppendAudit(ctx, &ledgerRepo.AppendAuditInput{Entry: &models.AuditEntry{
		ID:     s.uuidGenerator.NewUUID(),
		Action: action,
		Actor:  actor,
		Detail: detail,
		At:     s.clock.Now(),
	}})
	if err != nil {
		s.logger.Error("failed to record audit entry", "action", action, "error", err)
	}
}

// requireModerator lets system jobs (nil actor) and configured moderators through
func (s *service) requireModerator(actor *models.PlayerID) error {
	if actor == nil {
		return nil
	}
	if _, ok := s.moderators[*actor]; !ok {
		return ErrNotModerator
	}
	return nil
}

// requireRegistered checks ids against enrollment claims, so players whose
// enrollment is not projected yet still count
func (s *service) requireRegistered(ctx context.Context, ids []models.PlayerID) error {
	missing, err := s.playerRepo.MissingRegistrations(ctx, &playerRepo.MissingRegistrationsInput{PlayerIDs: ids})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownPlayer, missing)
	}
	return nil
}

func checkDistinct(ids []models.PlayerID) error {
	seen := make(map[models.PlayerID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateParticipant, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func actorOf(input *AdminInput) *models.PlayerID {
	if input == nil {
		return nil
	}
	return input.Actor
}
