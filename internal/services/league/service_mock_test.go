package league

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/ewar/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/ewar/internal/common/uuid/mocks"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/ewar/internal/repositories/ledger/mocks"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/ewar/internal/repositories/player/mocks"
	"github.com/KirkDiggler/ewar/internal/services/integrity"
	integrityMocks "github.com/KirkDiggler/ewar/internal/services/integrity/mocks"
	"github.com/KirkDiggler/ewar/internal/services/projector"
	projectorMocks "github.com/KirkDiggler/ewar/internal/services/projector/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeagueMockTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockLedgerRepo *ledgerMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockProjector  *projectorMocks.MockService
	mockChecker    *integrityMocks.MockService
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	league         Service
	ctx            context.Context
	testTime       time.Time
}

func (s *LeagueMockTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockProjector = projectorMocks.NewMockService(s.mockCtrl)
	s.mockChecker = integrityMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(s.config())
	s.Require().NoError(err)
	s.league = svc
}

func (s *LeagueMockTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeagueMockTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueMockTestSuite))
}

func (s *LeagueMockTestSuite) config() *Config {
	return &Config{
		LedgerRepo:       s.mockLedgerRepo,
		PlayerRepo:       s.mockPlayerRepo,
		Projector:        s.mockProjector,
		IntegrityChecker: s.mockChecker,
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
	}
}

func (s *LeagueMockTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	cases := []struct {
		strip func(*Config)
		want  error
	}{
		{func(c *Config) { c.LedgerRepo = nil }, ErrNilLedgerRepo},
		{func(c *Config) { c.PlayerRepo = nil }, ErrNilPlayerRepo},
		{func(c *Config) { c.Projector = nil }, ErrNilProjector},
		{func(c *Config) { c.IntegrityChecker = nil }, ErrNilIntegrityChecker},
		{func(c *Config) { c.Clock = nil }, ErrNilClock},
		{func(c *Config) { c.UUIDGenerator = nil }, ErrNilUUIDGenerator},
	}
	for _, tc := range cases {
		cfg := s.config()
		tc.strip(cfg)
		_, err := New(cfg)
		s.ErrorIs(err, tc.want)
	}
}

func (s *LeagueMockTestSuite) TestSubmitGameReportsProjectorFailure() {
	ranking := []models.PlayerID{4, 2}

	s.mockPlayerRepo.EXPECT().
		MissingRegistrations(s.ctx, &playerRepo.MissingRegistrationsInput{PlayerIDs: ranking}).
		Return([]models.PlayerID{}, nil)
	s.mockLedgerRepo.EXPECT().
		ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Games: 1}).
		Return(&ledgerRepo.ReserveIDsOutput{FirstEventID: 7, FirstGameID: 3}, nil)
	s.mockLedgerRepo.EXPECT().
		AppendEvent(s.ctx, &ledgerRepo.AppendEventInput{Event: &models.StandingEvent{
			ID:         7,
			Decision:   &models.Decision{Approved: true},
			Payload:    models.GameResult{GameID: 3, Ranking: ranking, DurationSeconds: 300},
			OccurredAt: s.testTime,
		}}).
		Return(nil)
	s.mockProjector.EXPECT().
		Advance(s.ctx, &projector.AdvanceInput{}).
		Return(nil, projector.ErrMissingReferencedPlayer)

	output, err := s.league.SubmitGame(s.ctx, &SubmitGameInput{Ranking: ranking, DurationSeconds: 300, Trusted: true})
	s.ErrorIs(err, projector.ErrMissingReferencedPlayer)
	s.Require().NotNil(output)
	s.Equal(models.EventNumber(7), output.EventID)
	s.Equal(models.GameID(3), output.GameID)
	s.Nil(output.Advance)
}

func (s *LeagueMockTestSuite) TestSubmitGameReservationFailure() {
	s.mockPlayerRepo.EXPECT().MissingRegistrations(gomock.Any(), gomock.Any()).Return([]models.PlayerID{}, nil)
	s.mockLedgerRepo.EXPECT().ReserveIDs(gomock.Any(), gomock.Any()).Return(nil, ledgerRepo.ErrIDReservationFailed)

	_, err := s.league.SubmitGame(s.ctx, &SubmitGameInput{Ranking: []models.PlayerID{1, 2}})
	s.ErrorIs(err, ledgerRepo.ErrIDReservationFailed)
}

func (s *LeagueMockTestSuite) TestRegisterReleasesClaimWhenAppendFails() {
	claim := &playerRepo.ClaimIdentityInput{
		PlayerID:    9,
		Handle:      "alice",
		ExternalIDs: []string{"discord-1"},
	}
	join := models.JoinLeague{
		Victims:          []models.PlayerID{9},
		InitialRating:    rating.DefaultRating.Mean,
		InitialDeviation: rating.DefaultRating.Uncertainty,
		Profiles:         []models.Profile{{PlayerID: 9, DisplayName: "alice", ExternalIDs: []string{"discord-1"}}},
	}
	storeDown := errors.New("connection refused")

	s.mockLedgerRepo.EXPECT().
		ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Players: 1}).
		Return(&ledgerRepo.ReserveIDsOutput{FirstEventID: 12, FirstPlayerID: 9}, nil)
	s.mockPlayerRepo.EXPECT().ClaimIdentity(s.ctx, claim).Return(nil)
	s.mockLedgerRepo.EXPECT().
		AppendEvent(s.ctx, &ledgerRepo.AppendEventInput{Event: &models.StandingEvent{
			ID:         12,
			Decision:   &models.Decision{Approved: true},
			Payload:    join,
			OccurredAt: s.testTime,
		}}).
		Return(storeDown)
	s.mockPlayerRepo.EXPECT().ReleaseIdentity(s.ctx, claim).Return(nil)
	s.mockLedgerRepo.EXPECT().
		AppendEvent(s.ctx, &ledgerRepo.AppendEventInput{Event: &models.StandingEvent{
			ID:         12,
			Decision:   &models.Decision{Approved: false},
			Payload:    join,
			OccurredAt: s.testTime,
		}}).
		Return(storeDown)

	_, err := s.league.Register(s.ctx, &RegisterInput{Handle: "Alice", ExternalID: "discord-1"})
	s.ErrorIs(err, storeDown)
}

func (s *LeagueMockTestSuite) TestRecordFillsReservedIDWhenAppendFails() {
	moderator := models.PlayerID(5)
	penalty := models.Penalty{Victims: []models.PlayerID{2}, DeltaRating: -3, Reason: "smurfing"}
	appendErr := errors.New("write timed out")

	s.mockPlayerRepo.EXPECT().MissingRegistrations(s.ctx, gomock.Any()).Return([]models.PlayerID{}, nil)
	s.mockLedgerRepo.EXPECT().
		ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1}).
		Return(&ledgerRepo.ReserveIDsOutput{FirstEventID: 8}, nil)
	gomock.InOrder(
		s.mockLedgerRepo.EXPECT().
			AppendEvent(s.ctx, &ledgerRepo.AppendEventInput{Event: &models.StandingEvent{
				ID:         8,
				Decision:   &models.Decision{Approved: true, Reviewer: &moderator},
				Payload:    penalty,
				OccurredAt: s.testTime,
			}}).
			Return(appendErr),
		s.mockLedgerRepo.EXPECT().
			AppendEvent(s.ctx, &ledgerRepo.AppendEventInput{Event: &models.StandingEvent{
				ID:         8,
				Decision:   &models.Decision{Approved: false, Reviewer: &moderator},
				Payload:    penalty,
				OccurredAt: s.testTime,
			}}).
			Return(nil),
		s.mockProjector.EXPECT().
			Advance(s.ctx, &projector.AdvanceInput{}).
			Return(&projector.AdvanceOutput{Cursor: 9, Rejected: 1}, nil),
	)

	cfg := s.config()
	cfg.Moderators = []models.PlayerID{moderator}
	svc, err := New(cfg)
	s.Require().NoError(err)

	_, err = svc.Penalize(s.ctx, &PenalizeInput{Target: 2, Amount: 3, Reason: "smurfing", Moderator: &moderator})
	s.ErrorIs(err, appendErr)
}

func (s *LeagueMockTestSuite) TestRecordLeavesTakenIDAlone() {
	s.mockPlayerRepo.EXPECT().MissingRegistrations(s.ctx, gomock.Any()).Return([]models.PlayerID{}, nil)
	s.mockLedgerRepo.EXPECT().
		ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Games: 1}).
		Return(&ledgerRepo.ReserveIDsOutput{FirstEventID: 4, FirstGameID: 1}, nil)
	s.mockLedgerRepo.EXPECT().
		AppendEvent(s.ctx, gomock.Any()).
		Return(ledgerRepo.ErrDuplicateEventID).
		Times(1)

	_, err := s.league.SubmitGame(s.ctx, &SubmitGameInput{Ranking: []models.PlayerID{1, 2}})
	s.ErrorIs(err, ledgerRepo.ErrDuplicateEventID)
}

func (s *LeagueMockTestSuite) TestRunIntegrityCheckPassesRepair() {
	report := &integrity.Report{Issues: []string{"event 3 is missing"}}
	s.mockChecker.EXPECT().Run(s.ctx, &integrity.RunInput{Repair: true}).Return(report, nil)

	got, err := s.league.RunIntegrityCheck(s.ctx, &RunIntegrityCheckInput{Repair: true})
	s.Require().NoError(err)
	s.Same(report, got)
}

func (s *LeagueMockTestSuite) TestBlacklistAuditEntry() {
	s.mockUUID.EXPECT().NewUUID().Return("audit-1")
	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: 3}).
		Return(&models.Player{ID: 3, DisplayName: "carol"}, nil)
	s.mockLedgerRepo.EXPECT().GetCheckpoint(s.ctx).Return(&models.LedgerCheckpoint{}, nil)
	s.mockLedgerRepo.EXPECT().AddToBlacklist(s.ctx, &ledgerRepo.BlacklistInput{PlayerID: 3}).Return(nil)
	s.mockLedgerRepo.EXPECT().
		AppendAudit(s.ctx, &ledgerRepo.AppendAuditInput{Entry: &models.AuditEntry{
			ID:     "audit-1",
			Action: models.AuditActionBlacklist,
			Detail: "carol (3) blacklisted from leaderboard",
			At:     s.testTime,
		}}).
		Return(nil)

	s.Require().NoError(s.league.AddToBlacklist(s.ctx, &BlacklistInput{PlayerID: 3}))
}

func (s *LeagueMockTestSuite) TestLogsUseDefaultLimits() {
	events := []*models.StandingEvent{{ID: 4}}
	s.mockLedgerRepo.EXPECT().
		ListEvents(s.ctx, &ledgerRepo.ListEventsInput{Limit: 200}).
		Return(&ledgerRepo.ListEventsOutput{Events: events}, nil)
	s.mockLedgerRepo.EXPECT().
		ListGames(s.ctx, &ledgerRepo.ListGamesInput{Limit: 50}).
		Return(&ledgerRepo.ListEventsOutput{Events: events}, nil)

	got, err := s.league.EventLog(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(events, got)

	got, err = s.league.GameLog(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(events, got)
}

func (s *LeagueMockTestSuite) TestGetGameKeepsPlacementOrder() {
	event := &models.StandingEvent{
		ID:      6,
		Payload: models.GameResult{GameID: 2, Ranking: []models.PlayerID{4, 1}, DurationSeconds: 600},
	}
	bob := &models.Player{ID: 4, DisplayName: "bob"}
	s.mockLedgerRepo.EXPECT().
		GetEventByGameID(s.ctx, &ledgerRepo.GetEventByGameIDInput{GameID: 2}).
		Return(event, nil)
	s.mockPlayerRepo.EXPECT().
		GetPlayers(s.ctx, &playerRepo.GetPlayersInput{PlayerIDs: []models.PlayerID{4, 1}}).
		Return(&playerRepo.GetPlayersOutput{
			Players: map[models.PlayerID]*models.Player{4: bob},
			Missing: []models.PlayerID{1},
		}, nil)

	output, err := s.league.GetGame(s.ctx, &GetGameInput{GameID: 2})
	s.Require().NoError(err)
	s.Same(event, output.Event)
	s.Equal([]*models.Player{bob, nil}, output.Players)
}

func (s *LeagueMockTestSuite) TestGetGameStoreFailure() {
	storeDown := errors.New("connection refused")
	s.mockLedgerRepo.EXPECT().
		GetEventByGameID(s.ctx, &ledgerRepo.GetEventByGameIDInput{GameID: 2}).
		Return(nil, storeDown)

	_, err := s.league.GetGame(s.ctx, &GetGameInput{GameID: 2})
	s.ErrorIs(err, storeDown)
}
