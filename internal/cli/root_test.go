package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/ewar/internal/config"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/decay"
	decayMocks "github.com/KirkDiggler/ewar/internal/services/decay/mocks"
	"github.com/KirkDiggler/ewar/internal/services/integrity"
	"github.com/KirkDiggler/ewar/internal/services/league"
	leagueMocks "github.com/KirkDiggler/ewar/internal/services/league/mocks"
	"github.com/KirkDiggler/ewar/internal/services/messaging"
	"github.com/KirkDiggler/ewar/internal/services/projector"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CLITestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLeague *leagueMocks.MockService
	mockDecay  *decayMocks.MockService
	opened     int
	closed     int
	ctx        context.Context
}

func (s *CLITestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLeague = leagueMocks.NewMockService(s.mockCtrl)
	s.mockDecay = decayMocks.NewMockService(s.mockCtrl)
	s.opened = 0
	s.closed = 0
	s.ctx = context.Background()
}

func (s *CLITestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) open(ctx context.Context) (*App, error) {
	s.opened++
	messages, err := messaging.NewService(&messaging.ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)

	return &App{
		Config:   &config.Config{DecaySchedule: decay.DefaultSchedule},
		Logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		League:   s.mockLeague,
		Decay:    s.mockDecay,
		Messages: messages,
		Close: func() error {
			s.closed++
			return nil
		},
	}, nil
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	return s.executeContext(s.ctx, args...)
}

func (s *CLITestSuite) executeContext(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand(s.open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func id(v models.PlayerID) *models.PlayerID {
	return &v
}

func (s *CLITestSuite) TestCommandPresence() {
	cmd := NewRootCommand(s.open)
	for _, name := range []string{
		"serve", "register", "submit", "approve", "reject", "preview", "penalize", "change",
		"leaderboard", "player", "unreviewed", "audit", "blacklist", "advance", "fsck",
		"reprocess", "pop-event", "decay", "log", "games", "game",
	} {
		sub, _, err := cmd.Find([]string{name})
		s.Require().NoError(err, name)
		s.Equal(name, sub.Name())
	}

	asFlag := cmd.PersistentFlags().Lookup("as")
	s.Require().NotNil(asFlag)
	s.Equal("-1", asFlag.DefValue)
}

func (s *CLITestSuite) TestRegister() {
	s.mockLeague.EXPECT().
		Register(gomock.Any(), &league.RegisterInput{Handle: "Alice", ExternalID: "discord:1"}).
		Return(&league.RegisterOutput{PlayerID: 3, EventID: 7}, nil)

	out, err := s.execute("register", "Alice", "--external-id", "discord:1")
	s.Require().NoError(err)
	s.Contains(out, "alice (3)")
	s.Contains(out, "alice (3) enrolled by event 7\n")
	s.Equal(1, s.opened)
	s.Equal(1, s.closed)
}

func (s *CLITestSuite) TestForceRegisterRunsAsModerator() {
	s.mockLeague.EXPECT().
		ForceRegister(gomock.Any(), &league.ForceRegisterInput{Handle: "bob", Moderator: id(100)}).
		Return(&league.RegisterOutput{PlayerID: 4, EventID: 8}, nil)

	out, err := s.execute("register", "bob", "--force", "--as", "100")
	s.Require().NoError(err)
	s.Contains(out, "bob (4) enrolled by event 8\n")
}

func (s *CLITestSuite) TestSubmitPending() {
	s.mockLeague.EXPECT().
		SubmitGame(gomock.Any(), &league.SubmitGameInput{
			Ranking:         []models.PlayerID{2, 1, 3},
			DurationSeconds: 600,
			Submitter:       id(1),
		}).
		Return(&league.SubmitGameOutput{EventID: 9, GameID: 4}, nil)

	out, err := s.execute("submit", "2", "1", "#3", "--duration", "600", "--as", "1")
	s.Require().NoError(err)
	s.Equal("recorded game 4 as event 9, pending review\n", out)
}

func (s *CLITestSuite) TestSubmitReportsProjectorFailureAfterRecording() {
	s.mockLeague.EXPECT().
		SubmitGame(gomock.Any(), gomock.Any()).
		Return(&league.SubmitGameOutput{EventID: 9, GameID: 4, Approved: true}, errors.New("projector down"))

	out, err := s.execute("submit", "1", "2", "--trusted", "--as", "100")
	s.EqualError(err, "projector down")
	s.Contains(out, "recorded game 4 as event 9, approved")
	s.Contains(out, "projector did not run")
	s.Equal(ExitCommandError, GetExitCode(err))
}

func (s *CLITestSuite) TestSubmitRejectsBadIDsBeforeOpening() {
	_, err := s.execute("submit", "1", "bob")
	s.EqualError(err, `invalid player id "bob"`)
	s.Equal(0, s.opened)
}

func (s *CLITestSuite) TestApproveByGame() {
	event := &models.StandingEvent{
		ID:       5,
		Decision: &models.Decision{Approved: true, Reviewer: id(100)},
		Payload:  models.GameResult{GameID: 2, Ranking: []models.PlayerID{1, 0}, DurationSeconds: 90},
	}
	blocked := models.EventNumber(6)
	s.mockLeague.EXPECT().
		DecideGame(gomock.Any(), &league.DecideGameInput{GameID: 2, Approved: true, Reviewer: id(100)}).
		Return(&league.DecideEventOutput{
			Event:   event,
			Advance: &projector.AdvanceOutput{Cursor: 6, Applied: 1, BlockedAt: &blocked},
		}, nil)

	out, err := s.execute("approve", "2", "--game", "--as", "100")
	s.Require().NoError(err)
	s.Equal("#5 game 2: 1 > 0 (1m30s)\ncursor at 6 (applied 1, rejected 0), waiting on event 6\n", out)
}

func (s *CLITestSuite) TestRejectEvent() {
	s.mockLeague.EXPECT().
		DecideEvent(gomock.Any(), &league.DecideEventInput{EventID: 5, Approved: false, Reviewer: id(100)}).
		Return(nil, league.ErrNotModerator)

	_, err := s.execute("reject", "#5", "--as", "100")
	s.ErrorIs(err, league.ErrNotModerator)
	s.EqualError(err, league.ErrNotModerator.Error())
	s.Equal(ExitFailure, GetExitCode(err))
}

func (s *CLITestSuite) TestChangeOnlySendsGivenDeltas() {
	deviation := -1.5
	s.mockLeague.EXPECT().
		ChangeStanding(gomock.Any(), &league.ChangeStandingInput{
			Victims:        []models.PlayerID{2},
			DeltaDeviation: &deviation,
			Reason:         "fix",
			Moderator:      id(100),
		}).
		Return(&league.EventOutput{EventID: 9, Advance: &projector.AdvanceOutput{Cursor: 10, Applied: 1}}, nil)

	out, err := s.execute("change", "2", "--deviation", "-1.5", "--reason", "fix", "--as", "100")
	s.Require().NoError(err)
	s.Equal("standing change recorded as event 9\ncursor at 10 (applied 1, rejected 0)\n", out)
}

func (s *CLITestSuite) TestPenalizeJoinsReason() {
	s.mockLeague.EXPECT().
		Penalize(gomock.Any(), &league.PenalizeInput{Target: 3, Amount: 5, Reason: "left the game", Moderator: id(100)}).
		Return(&league.EventOutput{EventID: 11, Advance: &projector.AdvanceOutput{Cursor: 12, Applied: 1}}, nil)

	out, err := s.execute("penalize", "3", "5", "left", "the", "game", "--as", "100")
	s.Require().NoError(err)
	s.Contains(out, "penalty recorded as event 11")
}

func (s *CLITestSuite) TestLeaderboard() {
	alice := &models.Player{ID: 0, DisplayName: "alice", Rating: models.Rating{Mean: 25, Uncertainty: 2}}
	bob := &models.Player{ID: 1, DisplayName: "bob", Rating: models.Rating{Mean: 20, Uncertainty: 2}}
	s.mockLeague.EXPECT().
		ListByLeaderboardValue(gomock.Any(), &league.ListByLeaderboardValueInput{Limit: 5}).
		Return(&models.Leaderboard{Entries: []*models.LeaderboardEntry{
			{Position: 1, Player: alice},
			{Position: 2, Player: bob},
		}}, nil)

	out, err := s.execute("leaderboard", "-n", "5")
	s.Require().NoError(err)
	s.Equal("1. alice (0) "+rating.Format(alice.Rating)+"\n2. bob (1) "+rating.Format(bob.Rating)+"\n", out)
}

func (s *CLITestSuite) TestLeaderboardBanter() {
	alice := &models.Player{ID: 0, DisplayName: "alice", Rating: models.Rating{Mean: 25, Uncertainty: 2}}
	s.mockLeague.EXPECT().
		ListByLeaderboardValue(gomock.Any(), gomock.Any()).
		Return(&models.Leaderboard{Entries: []*models.LeaderboardEntry{{Position: 1, Player: alice}}}, nil)

	out, err := s.execute("leaderboard", "--banter")
	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 2)
	s.Contains(lines[1], "alice")
	s.Contains(lines[1], rating.Format(alice.Rating))
}

func (s *CLITestSuite) TestUnknownPlayerIsExplained() {
	s.mockLeague.EXPECT().
		FindPlayerByHandle(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("lookup: %w", playerRepo.ErrPlayerNotFound))

	_, err := s.execute("player", "nobody")
	s.EqualError(err, "could not find that player")
	s.ErrorIs(err, playerRepo.ErrPlayerNotFound)
}

func (s *CLITestSuite) TestPlayerHistoryCollapsesDecay() {
	played := time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC)
	player := &models.Player{
		ID:                2,
		DisplayName:       "carol",
		Rating:            rating.DefaultRating,
		LastPlayed:        &played,
		LinkedExternalIDs: []string{"discord:7"},
	}
	s.mockLeague.EXPECT().
		FindPlayerByHandle(gomock.Any(), &league.FindPlayerByHandleInput{Handle: "carol"}).
		Return(player, nil)
	s.mockLeague.EXPECT().
		History(gomock.Any(), &league.HistoryInput{PlayerID: 2, Limit: 10}).
		Return(&league.HistoryOutput{Player: player, Entries: []*league.HistoryEntry{
			{
				Event: &models.StandingEvent{
					ID:       8,
					Decision: &models.Decision{Approved: true},
					Payload:  models.InactivityDecay{Victims: []models.PlayerID{2}, DeltaDeviation: 0.1},
				},
				Repeats: 3,
			},
		}}, nil)

	out, err := s.execute("player", "carol")
	s.Require().NoError(err)
	s.Contains(out, "player: carol (2)\n")
	s.Contains(out, "provisional until deviation falls under 2.5\n")
	s.Contains(out, "last played: 2025-04-01T18:00:00Z\n")
	s.Contains(out, "linked accounts: discord:7\n")
	s.Contains(out, "  #8 inactivity decay +0.10 deviation for 1 players x3\n")
}

func (s *CLITestSuite) TestPlayerLookupByID() {
	s.mockLeague.EXPECT().
		GetPlayer(gomock.Any(), &league.GetPlayerInput{PlayerID: 4}).
		Return(&models.Player{ID: 4, DisplayName: "dave", Rating: rating.DefaultRating}, nil)
	s.mockLeague.EXPECT().
		History(gomock.Any(), gomock.Any()).
		Return(&league.HistoryOutput{}, nil)

	out, err := s.execute("player", "#4")
	s.Require().NoError(err)
	s.Contains(out, "last played: never\n")
}

func (s *CLITestSuite) TestFsckExitsWithFailureOnIssues() {
	report := &integrity.Report{
		EventsScanned: 4,
		Stored:        integrity.Counters{NextEventID: 5, NextGameID: 3, Cursor: 3},
		Derived:       integrity.Counters{NextEventID: 3, NextGameID: 3, Cursor: 3},
		Issues:        []string{"event 3 is missing", "checkpoint next_event_id 5 != derived 3"},
	}
	s.mockLeague.EXPECT().
		RunIntegrityCheck(gomock.Any(), &league.RunIntegrityCheckInput{}).
		Return(report, nil)

	out, err := s.execute("fsck")
	s.Equal(report.String(), out)
	s.Equal(ExitFailure, GetExitCode(err))
}

func (s *CLITestSuite) TestFsckRepairSucceeds() {
	s.mockLeague.EXPECT().
		RunIntegrityCheck(gomock.Any(), &league.RunIntegrityCheckInput{Repair: true, Actor: id(100)}).
		Return(&integrity.Report{
			Issues:   []string{"event 3 is missing"},
			Repaired: &integrity.Counters{NextEventID: 3, NextGameID: 3, Cursor: 3},
		}, nil)

	_, err := s.execute("fsck", "--repair", "--as", "100")
	s.NoError(err)
}

func (s *CLITestSuite) TestPopEventNeedsConfirmation() {
	_, err := s.execute("pop-event", "--as", "100")
	s.Equal(ExitCommandError, GetExitCode(err))
	s.Equal(0, s.opened)
}

func (s *CLITestSuite) TestPopEvent() {
	s.mockLeague.EXPECT().
		PopLastEvent(gomock.Any(), &league.AdminInput{Actor: id(100)}).
		Return(&projector.PopLastEventOutput{
			Event: &models.StandingEvent{
				ID:      7,
				Payload: models.GameResult{GameID: 3, Ranking: []models.PlayerID{0, 1}, DurationSeconds: 60},
			},
		}, nil)

	out, err := s.execute("pop-event", "--yes", "--as", "100")
	s.Require().NoError(err)
	s.Equal("removed #7 [pending] game 3: 0 > 1 (1m0s)\n", out)
}

func (s *CLITestSuite) TestAdvanceStopBefore() {
	stop := models.EventNumber(4)
	s.mockLeague.EXPECT().
		Advance(gomock.Any(), &league.AdvanceInput{StopBefore: &stop, Actor: id(100)}).
		Return(&projector.AdvanceOutput{Cursor: 4, Applied: 2}, nil)

	out, err := s.execute("advance", "--stop-before", "4", "--as", "100")
	s.Require().NoError(err)
	s.Equal("cursor at 4 (applied 2, rejected 0)\n", out)
}

func (s *CLITestSuite) TestBlacklist() {
	s.mockLeague.EXPECT().
		AddToBlacklist(gomock.Any(), &league.BlacklistInput{PlayerID: 3, Moderator: id(100)}).
		Return(nil)
	s.mockLeague.EXPECT().
		ListBlacklist(gomock.Any()).
		Return([]*models.Player{{ID: 3, DisplayName: "eve"}}, nil)

	out, err := s.execute("blacklist", "add", "3", "--as", "100")
	s.Require().NoError(err)
	s.Equal("ok\n", out)

	out, err = s.execute("blacklist", "list")
	s.Require().NoError(err)
	s.Equal("eve (3)\n", out)
}

func (s *CLITestSuite) TestBlacklistRemove() {
	s.mockLeague.EXPECT().
		RemoveFromBlacklist(gomock.Any(), &league.BlacklistInput{PlayerID: 3, Moderator: id(100)}).
		Return(nil)

	out, err := s.execute("blacklist", "remove", "3", "--as", "100")
	s.Require().NoError(err)
	s.Equal("ok\n", out)
}

func (s *CLITestSuite) TestBlacklistRemoveNotListed() {
	s.mockLeague.EXPECT().
		RemoveFromBlacklist(gomock.Any(), &league.BlacklistInput{PlayerID: 3, Moderator: id(100)}).
		Return(league.ErrNotBlacklisted)

	_, err := s.execute("blacklist", "remove", "3", "--as", "100")
	s.ErrorIs(err, league.ErrNotBlacklisted)
}

func (s *CLITestSuite) TestLogBefore() {
	before := models.EventNumber(1)
	s.mockLeague.EXPECT().
		EventLog(gomock.Any(), &league.EventLogInput{Before: &before, Limit: 200}).
		Return([]*models.StandingEvent{{
			ID:       1,
			Decision: &models.Decision{Approved: true},
			Payload:  models.Penalty{Victims: []models.PlayerID{2}, DeltaRating: -5, Reason: "afk"},
		}}, nil)

	out, err := s.execute("log", "--before", "1")
	s.Require().NoError(err)
	s.Equal("#1 penalty -5.00 for 2: afk\n", out)
}

func (s *CLITestSuite) TestGamesEmpty() {
	s.mockLeague.EXPECT().
		GameLog(gomock.Any(), &league.GameLogInput{Limit: 50}).
		Return([]*models.StandingEvent{}, nil)

	out, err := s.execute("games")
	s.Require().NoError(err)
	s.Equal("no games\n", out)
}

func (s *CLITestSuite) TestGame() {
	game := models.GameResult{GameID: 3, Ranking: []models.PlayerID{4, 1}, DurationSeconds: 754}
	s.mockLeague.EXPECT().
		GetGame(gomock.Any(), &league.GetGameInput{GameID: 3}).
		Return(&league.GetGameOutput{
			Event: &models.StandingEvent{
				ID:         9,
				Payload:    game,
				OccurredAt: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
			},
			Game:    game,
			Players: []*models.Player{{ID: 4, DisplayName: "bob"}, nil},
		}, nil)

	out, err := s.execute("game", "#3")
	s.Require().NoError(err)
	s.Equal("game 3 (event #9)\n"+
		"when: 2025-04-19T12:00:00Z\n"+
		"reviewer: not approved yet\n"+
		"length: 12:34\n"+
		"1. bob (4)\n"+
		"2. #1\n", out)
}

func (s *CLITestSuite) TestAudit() {
	s.mockLeague.EXPECT().
		ListAudit(gomock.Any(), &league.ListAuditInput{Limit: 50}).
		Return([]*models.AuditEntry{{
			ID:     "a-1",
			Action: models.AuditActionRepair,
			Detail: "checkpoint repaired",
			At:     time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
		}}, nil)

	out, err := s.execute("audit")
	s.Require().NoError(err)
	s.Equal("2025-04-19T12:00:00Z repair by system: checkpoint repaired\n", out)
}

func (s *CLITestSuite) TestDecayWithoutVictims() {
	s.mockDecay.EXPECT().Run(gomock.Any()).Return(&decay.RunOutput{}, nil)

	out, err := s.execute("decay")
	s.Require().NoError(err)
	s.Equal("no inactive players\n", out)
}

func (s *CLITestSuite) TestDecay() {
	eventID := models.EventNumber(12)
	s.mockDecay.EXPECT().Run(gomock.Any()).Return(&decay.RunOutput{
		Victims: []models.PlayerID{1, 4},
		EventID: &eventID,
		Advance: &projector.AdvanceOutput{Cursor: 13, Applied: 1},
	}, nil)

	out, err := s.execute("decay")
	s.Require().NoError(err)
	s.Equal("decayed 2 players as event 12: 1, 4\ncursor at 13 (applied 1, rejected 0)\n", out)
}

func (s *CLITestSuite) TestServeStopsWhenCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockLeague.EXPECT().
		Advance(gomock.Any(), &league.AdvanceInput{}).
		Return(&projector.AdvanceOutput{Cursor: 3}, nil)
	s.mockDecay.EXPECT().Name().Return("inactivity_decay")

	_, err := s.executeContext(ctx, "serve")
	s.NoError(err)
	s.Equal(1, s.closed)
}

func (s *CLITestSuite) TestOpenerFailure() {
	cmd := NewRootCommand(func(ctx context.Context) (*App, error) {
		return nil, errors.New("no redis")
	})
	cmd.SetArgs([]string{"leaderboard"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.ExecuteContext(s.ctx)
	s.EqualError(err, "failed to start: no redis")
	s.Equal(ExitCommandError, GetExitCode(err))
}
