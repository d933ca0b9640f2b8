package integrity

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/keyspace"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/projector"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/suite"
)

type IntegrityTestSuite struct {
	suite.Suite
	mr         *miniredis.Miniredis
	client     *redis.Client
	keys       *keyspace.Keyspace
	ledgerRepo ledgerRepo.Repository
	playerRepo playerRepo.Repository
	projector  projector.Service
	checker    Service
	ctx        context.Context
	testNow    time.Time
}

func (s *IntegrityTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})
	s.keys = keyspace.New("fsck")

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client, Keyspace: s.keys})
	s.Require().NoError(err)
	s.ledgerRepo = ledger

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client, Keyspace: s.keys})
	s.Require().NoError(err)
	s.playerRepo = players

	s.projector, err = projector.New(&projector.Config{
		LedgerRepo:    s.ledgerRepo,
		PlayerRepo:    s.playerRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	s.checker, err = New(&Config{
		LedgerRepo:    s.ledgerRepo,
		PlayerRepo:    s.playerRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
}

func (s *IntegrityTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestIntegrityTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrityTestSuite))
}

func (s *IntegrityTestSuite) assertGolden(name string, report *Report) {
	g := goldie.New(s.T(),
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(s.T(), name, []byte(report.String()))
}

func (s *IntegrityTestSuite) store(id models.EventNumber, payload models.Payload, decision *models.Decision) {
	s.Require().NoError(s.ledgerRepo.AppendEvent(s.ctx, &ledgerRepo.AppendEventInput{Event: &models.StandingEvent{
		ID:         id,
		Decision:   decision,
		Payload:    payload,
		OccurredAt: s.testNow,
	}}))
}

func (s *IntegrityTestSuite) enroll(names ...string) []models.PlayerID {
	reserved, err := s.ledgerRepo.ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Players: len(names)})
	s.Require().NoError(err)

	join := models.JoinLeague{
		InitialRating:    rating.DefaultRating.Mean,
		InitialDeviation: rating.DefaultRating.Uncertainty,
	}
	for i, name := range names {
		id := reserved.FirstPlayerID + models.PlayerID(i)
		join.Victims = append(join.Victims, id)
		join.Profiles = append(join.Profiles, models.Profile{PlayerID: id, DisplayName: name})
	}
	s.store(reserved.FirstEventID, join, &models.Decision{Approved: true})

	return join.Victims
}

func (s *IntegrityTestSuite) game(decision *models.Decision, ranking ...models.PlayerID) models.EventNumber {
	reserved, err := s.ledgerRepo.ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Games: 1})
	s.Require().NoError(err)

	s.store(reserved.FirstEventID, models.GameResult{
		GameID:          reserved.FirstGameID,
		Ranking:         ranking,
		DurationSeconds: 600,
	}, decision)

	return reserved.FirstEventID
}

func (s *IntegrityTestSuite) advance() {
	_, err := s.projector.Advance(s.ctx, nil)
	s.Require().NoError(err)
}

func (s *IntegrityTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{PlayerRepo: s.playerRepo, Clock: clock.New(), UUIDGenerator: uuid.New()})
	s.ErrorIs(err, ErrNilLedgerRepo)

	_, err = New(&Config{LedgerRepo: s.ledgerRepo, Clock: clock.New(), UUIDGenerator: uuid.New()})
	s.ErrorIs(err, ErrNilPlayerRepo)

	_, err = New(&Config{LedgerRepo: s.ledgerRepo, PlayerRepo: s.playerRepo, UUIDGenerator: uuid.New()})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{LedgerRepo: s.ledgerRepo, PlayerRepo: s.playerRepo, Clock: clock.New()})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *IntegrityTestSuite) TestEmptyLedger() {
	report, err := s.checker.Run(s.ctx, nil)
	s.Require().NoError(err)
	s.True(report.OK())
	s.Equal(0, report.EventsScanned)
	s.Equal(Counters{}, report.Derived)
}

func (s *IntegrityTestSuite) TestCleanLedger() {
	ids := s.enroll("alice", "bob")
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	report, err := s.checker.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)
	s.True(report.OK())
	s.Equal(report.Stored, report.Derived)
	s.assertGolden("clean", report)
}

func (s *IntegrityTestSuite) TestMissingEventIsReported() {
	ids := s.enroll("alice", "bob")
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.game(&models.Decision{Approved: true}, ids[1], ids[0])

	// event 3 was reserved but never written
	_, err := s.ledgerRepo.ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1})
	s.Require().NoError(err)
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	report, err := s.checker.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)
	s.False(report.OK())
	s.Equal(models.EventNumber(3), report.Derived.NextEventID)
	s.Equal(models.EventNumber(5), report.Stored.NextEventID)
	s.Equal(models.EventNumber(3), report.Derived.Cursor)
	s.Nil(report.Repaired)
	s.assertGolden("missing_event", report)

	// reporting alone never writes
	checkpoint, err := s.ledgerRepo.GetCheckpoint(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.EventNumber(5), checkpoint.NextEventID)
}

func (s *IntegrityTestSuite) TestRepairClampsCountersDown() {
	ids := s.enroll("alice", "bob")
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.game(&models.Decision{Approved: true}, ids[1], ids[0])
	_, err := s.ledgerRepo.ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1})
	s.Require().NoError(err)
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	before, err := s.ledgerRepo.GetCheckpoint(s.ctx)
	s.Require().NoError(err)
	ratings, err := s.playerRepo.GetPlayers(s.ctx, &playerRepo.GetPlayersInput{PlayerIDs: ids})
	s.Require().NoError(err)

	actor := ids[0]
	report, err := s.checker.Run(s.ctx, &RunInput{Repair: true, Actor: &actor})
	s.Require().NoError(err)
	s.Require().NotNil(report.Repaired)
	s.assertGolden("repaired", report)

	after, err := s.ledgerRepo.GetCheckpoint(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.EventNumber(3), after.NextEventID)
	s.Equal(models.GameID(3), after.NextGameID)
	s.Equal(models.EventNumber(3), after.Cursor)
	s.Equal(before.NextPlayerID, after.NextPlayerID)
	s.Greater(after.Version, before.Version)

	// ratings are left alone
	unchanged, err := s.playerRepo.GetPlayers(s.ctx, &playerRepo.GetPlayersInput{PlayerIDs: ids})
	s.Require().NoError(err)
	for _, id := range ids {
		s.Equal(ratings.Players[id].Rating, unchanged.Players[id].Rating)
	}

	audit, err := s.ledgerRepo.ListAudit(s.ctx, &ledgerRepo.ListAuditInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(audit, 1)
	s.Equal(models.AuditActionRepair, audit[0].Action)
	s.Equal(&actor, audit[0].Actor)
	s.Equal("checkpoint next_event_id=5 next_game_id=3 cursor=3 repaired to next_event_id=3 next_game_id=3 cursor=3", audit[0].Detail)
}

func (s *IntegrityTestSuite) TestRepairSkippedWhenClean() {
	ids := s.enroll("alice", "bob")
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	before, err := s.ledgerRepo.GetCheckpoint(s.ctx)
	s.Require().NoError(err)

	report, err := s.checker.Run(s.ctx, &RunInput{Repair: true})
	s.Require().NoError(err)
	s.True(report.OK())
	s.Nil(report.Repaired)

	after, err := s.ledgerRepo.GetCheckpoint(s.ctx)
	s.Require().NoError(err)
	s.Equal(before.Version, after.Version)
}

func (s *IntegrityTestSuite) TestMissingGameIsReported() {
	ids := s.enroll("alice", "bob")

	// a game id reserved alongside an event that never became a game
	reserved, err := s.ledgerRepo.ReserveIDs(s.ctx, &ledgerRepo.ReserveIDsInput{Events: 1, Games: 1})
	s.Require().NoError(err)
	s.store(reserved.FirstEventID, models.Penalty{Victims: ids[:1], DeltaRating: -1, Reason: "late"}, &models.Decision{Approved: true})
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	report, err := s.checker.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)
	s.Contains(report.Issues, "game 0 is missing")
	s.Contains(report.Issues, "checkpoint next_game_id 2 != derived 0")
	s.Equal(models.GameID(0), report.Derived.NextGameID)
}

func (s *IntegrityTestSuite) TestCursorDriftIsReported() {
	ids := s.enroll("alice", "bob")
	pending := s.game(nil, ids[0], ids[1])
	s.advance()

	// something pushed the cursor past an undecided event
	_, err := s.ledgerRepo.AdvanceCursor(s.ctx, &ledgerRepo.AdvanceCursorInput{To: pending + 1})
	s.Require().NoError(err)

	report, err := s.checker.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)
	s.Equal(pending, report.Derived.Cursor)
	s.Equal([]string{"checkpoint cursor 2 != derived 1"}, report.Issues)
}

func (s *IntegrityTestSuite) TestCorruptEventIsReported() {
	ids := s.enroll("alice", "bob")
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	s.Require().NoError(s.client.HSet(s.ctx, s.keys.Event(1), "body", "{broken").Err())

	report, err := s.checker.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)
	s.Equal(2, report.EventsScanned)
	s.Require().NotEmpty(report.Issues)
	s.Contains(report.Issues[0], "event 1 cannot be decoded")
	s.Equal(models.EventNumber(1), report.Derived.Cursor)
}

func (s *IntegrityTestSuite) TestMissingReferencedPlayerIsReported() {
	ids := s.enroll("alice", "bob")
	s.game(&models.Decision{Approved: true}, ids[0], ids[1])
	s.advance()

	s.Require().NoError(s.client.Del(s.ctx, s.keys.Player(int32(ids[1]))).Err())

	report, err := s.checker.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)
	s.Equal([]string{"player 1 referenced by applied event 1 does not exist"}, report.Issues)
}
