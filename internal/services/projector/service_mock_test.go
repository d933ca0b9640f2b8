package projector

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/ewar/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/ewar/internal/common/uuid/mocks"
	"github.com/KirkDiggler/ewar/internal/models"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/ewar/internal/repositories/ledger/mocks"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/ewar/internal/repositories/player/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProjectorMockTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockLedgerRepo *ledgerMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	projector      Service
	ctx            context.Context
	testTime       time.Time
}

func (s *ProjectorMockTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-run-id").AnyTimes()

	svc, err := New(&Config{
		LedgerRepo:    s.mockLedgerRepo,
		PlayerRepo:    s.mockPlayerRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.projector = svc
}

func (s *ProjectorMockTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProjectorMockTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectorMockTestSuite))
}

func events(list ...*models.StandingEvent) iter.Seq2[*models.StandingEvent, error] {
	return func(yield func(*models.StandingEvent, error) bool) {
		for _, event := range list {
			if !yield(event, nil) {
				return
			}
		}
	}
}

func (s *ProjectorMockTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{PlayerRepo: s.mockPlayerRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilLedgerRepo)

	_, err = New(&Config{LedgerRepo: s.mockLedgerRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilPlayerRepo)

	_, err = New(&Config{LedgerRepo: s.mockLedgerRepo, PlayerRepo: s.mockPlayerRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{LedgerRepo: s.mockLedgerRepo, PlayerRepo: s.mockPlayerRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *ProjectorMockTestSuite) TestCursorMovedByAnotherWriter() {
	rejected := &models.StandingEvent{
		ID:       4,
		Decision: &models.Decision{Approved: false},
		Payload:  models.Penalty{Victims: []models.PlayerID{1}, DeltaRating: -1},
	}

	s.mockLedgerRepo.EXPECT().GetCheckpoint(gomock.Any()).Return(&models.LedgerCheckpoint{Cursor: 4, NextEventID: 5}, nil)
	s.mockLedgerRepo.EXPECT().ScanFrom(gomock.Any(), &ledgerRepo.ScanFromInput{From: 4, PageSize: defaultPageSize}).Return(events(rejected))
	s.mockPlayerRepo.EXPECT().CommitEffect(gomock.Any(), &playerRepo.CommitEffectInput{Cursor: 5}).
		Return(&playerRepo.CommitEffectOutput{Cursor: 9, Applied: false}, nil)

	output, err := s.projector.Advance(s.ctx, nil)
	s.ErrorIs(err, ErrCursorMoved)
	s.Equal(models.EventNumber(9), output.Cursor)
}

func (s *ProjectorMockTestSuite) TestCommitFailureKeepsCursor() {
	penalty := &models.StandingEvent{
		ID:       0,
		Decision: &models.Decision{Approved: true},
		Payload:  models.Penalty{Victims: []models.PlayerID{1}, DeltaRating: -2},
	}
	commitErr := errors.New("connection reset")

	s.mockLedgerRepo.EXPECT().GetCheckpoint(gomock.Any()).Return(&models.LedgerCheckpoint{NextEventID: 1}, nil)
	s.mockLedgerRepo.EXPECT().ScanFrom(gomock.Any(), gomock.Any()).Return(events(penalty))
	s.mockPlayerRepo.EXPECT().GetPlayers(gomock.Any(), &playerRepo.GetPlayersInput{PlayerIDs: []models.PlayerID{1}}).
		Return(&playerRepo.GetPlayersOutput{
			Players: map[models.PlayerID]*models.Player{1: {ID: 1, Rating: models.Rating{Mean: 20, Uncertainty: 3}}},
		}, nil)
	s.mockPlayerRepo.EXPECT().CommitEffect(gomock.Any(), &playerRepo.CommitEffectInput{
		Players: []*models.Player{{ID: 1, Rating: models.Rating{Mean: 18, Uncertainty: 3}}},
		Cursor:  1,
	}).Return(nil, commitErr)

	output, err := s.projector.Advance(s.ctx, nil)
	s.ErrorIs(err, commitErr)
	s.Equal(models.EventNumber(0), output.Cursor)
}

func (s *ProjectorMockTestSuite) TestPopLastEventWithoutReplay() {
	event := &models.StandingEvent{
		ID:      7,
		Payload: models.GameResult{GameID: 3, Ranking: []models.PlayerID{1, 2}},
	}
	actor := models.PlayerID(2)

	s.mockLedgerRepo.EXPECT().GetCheckpoint(gomock.Any()).Return(&models.LedgerCheckpoint{Cursor: 7, NextEventID: 8}, nil)
	s.mockLedgerRepo.EXPECT().PopLastEvent(gomock.Any()).Return(event, nil)
	s.mockLedgerRepo.EXPECT().AppendAudit(gomock.Any(), &ledgerRepo.AppendAuditInput{Entry: &models.AuditEntry{
		ID:     "test-run-id",
		Action: models.AuditActionPopEvent,
		Actor:  &actor,
		Detail: "removed event 7 (game_result)",
		At:     s.testTime,
	}}).Return(nil)

	output, err := s.projector.PopLastEvent(s.ctx, &PopLastEventInput{Actor: &actor})
	s.Require().NoError(err)
	s.Equal(event, output.Event)
	s.Nil(output.Replay)
}

func (s *ProjectorMockTestSuite) TestPopLastEventReleasesPendingEnrollment() {
	event := &models.StandingEvent{
		ID: 4,
		Payload: models.JoinLeague{
			Victims:          []models.PlayerID{2},
			InitialRating:    18,
			InitialDeviation: 9,
			Profiles:         []models.Profile{{PlayerID: 2, DisplayName: "carol", ExternalIDs: []string{"discord:3"}}},
		},
	}

	s.mockLedgerRepo.EXPECT().GetCheckpoint(gomock.Any()).Return(&models.LedgerCheckpoint{Cursor: 4, NextEventID: 5}, nil)
	s.mockLedgerRepo.EXPECT().PopLastEvent(gomock.Any()).Return(event, nil)
	s.mockLedgerRepo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().ReleaseIdentity(gomock.Any(), &playerRepo.ClaimIdentityInput{
		PlayerID:    2,
		Handle:      "carol",
		ExternalIDs: []string{"discord:3"},
	}).Return(nil)

	output, err := s.projector.PopLastEvent(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(output.Replay)
}

func (s *ProjectorMockTestSuite) TestPopLastEventKeepsClaimsOfRejectedEnrollment() {
	// a rejected enrollment fills the id of a failed claim, the handle belongs to someone else
	event := &models.StandingEvent{
		ID:       4,
		Decision: &models.Decision{Approved: false},
		Payload: models.JoinLeague{
			Victims:  []models.PlayerID{2},
			Profiles: []models.Profile{{PlayerID: 2, DisplayName: "alice"}},
		},
	}

	s.mockLedgerRepo.EXPECT().GetCheckpoint(gomock.Any()).Return(&models.LedgerCheckpoint{Cursor: 5, NextEventID: 5}, nil)
	s.mockLedgerRepo.EXPECT().PopLastEvent(gomock.Any()).Return(event, nil)
	s.mockLedgerRepo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.projector.PopLastEvent(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(output.Replay)
}

func (s *ProjectorMockTestSuite) TestPopLastEventReleaseFailure() {
	event := &models.StandingEvent{
		ID: 0,
		Payload: models.JoinLeague{
			Victims:  []models.PlayerID{0},
			Profiles: []models.Profile{{PlayerID: 0, DisplayName: "alice"}},
		},
	}
	releaseErr := errors.New("redis down")

	s.mockLedgerRepo.EXPECT().GetCheckpoint(gomock.Any()).Return(&models.LedgerCheckpoint{NextEventID: 1}, nil)
	s.mockLedgerRepo.EXPECT().PopLastEvent(gomock.Any()).Return(event, nil)
	s.mockLedgerRepo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlayerRepo.EXPECT().ReleaseIdentity(gomock.Any(), gomock.Any()).Return(releaseErr)

	output, err := s.projector.PopLastEvent(s.ctx, nil)
	s.ErrorIs(err, releaseErr)
	s.Equal(event, output.Event)
}
