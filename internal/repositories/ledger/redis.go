package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/KirkDiggler/ewar/internal/common/keyspace"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Checkpoint hash fields
	fieldNextEventID  = "next_event_id"
	fieldNextGameID   = "next_game_id"
	fieldNextPlayerID = "next_player_id"
	fieldCursor       = "cursor"
	fieldVersion      = "version"

	// Event hash fields
	fieldBody     = "body"
	fieldDecision = "decision"
	fieldGameID   = "game_id"

	defaultPageSize = 100
	defaultAuditCap = 1000
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keyspace namespaces every key, defaults to the bare keyspace
	Keyspace *keyspace.Keyspace

	// AuditCap bounds the audit list, defaults to 1000 entries
	AuditCap int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	keys     *keyspace.Keyspace
	auditCap int64
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	keys := cfg.Keyspace
	if keys == nil {
		keys = keyspace.New("")
	}

	auditCap := cfg.AuditCap
	if auditCap <= 0 {
		auditCap = defaultAuditCap
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		keys:     keys,
		auditCap: int64(auditCap),
	}, nil
}

// ReserveIDs increments the counters in one transaction and returns the
// values they held before, which the caller now owns
func (r *redisRepository) ReserveIDs(ctx context.Context, input *ReserveIDsInput) (*ReserveIDsOutput, error) {
	if input == nil || input.Events < 1 || input.Games < 0 || input.Players < 0 {
		return nil, errors.New("at least one event id must be reserved")
	}

	key := r.keys.Checkpoint()
	var eventCmd, gameCmd, playerCmd *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		eventCmd = pipe.HIncrBy(ctx, key, fieldNextEventID, int64(input.Events))
		if input.Games > 0 {
			gameCmd = pipe.HIncrBy(ctx, key, fieldNextGameID, int64(input.Games))
		}
		if input.Players > 0 {
			playerCmd = pipe.HIncrBy(ctx, key, fieldNextPlayerID, int64(input.Players))
		}
		pipe.HIncrBy(ctx, key, fieldVersion, 1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIDReservationFailed, err)
	}

	nextEvent := eventCmd.Val()
	if nextEvent > math.MaxUint32 {
		return nil, fmt.Errorf("%w: event ids exhausted", ErrIDReservationFailed)
	}

	output := &ReserveIDsOutput{
		FirstEventID: models.EventNumber(nextEvent - int64(input.Events)),
	}
	if gameCmd != nil {
		output.FirstGameID = models.GameID(gameCmd.Val() - int64(input.Games))
	}
	if playerCmd != nil {
		if playerCmd.Val() > math.MaxInt32 {
			return nil, fmt.Errorf("%w: player ids exhausted", ErrIDReservationFailed)
		}
		output.FirstPlayerID = models.PlayerID(playerCmd.Val() - int64(input.Players))
	}

	return output, nil
}

// AppendEvent stores the event if its id is unused
func (r *redisRepository) AppendEvent(ctx context.Context, input *AppendEventInput) error {
	if input == nil || input.Event == nil || input.Event.Payload == nil {
		return errors.New("input, event and payload cannot be nil")
	}

	event := input.Event

	// The decision lives in its own field so it can be set exactly once
	body, err := json.Marshal(models.StandingEvent{
		ID:         event.ID,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	decision := ""
	if event.Decision != nil {
		decisionJSON, err := json.Marshal(event.Decision)
		if err != nil {
			return fmt.Errorf("failed to marshal decision: %w", err)
		}
		decision = string(decisionJSON)
	}

	gameID := ""
	if game, ok := event.Payload.(models.GameResult); ok {
		gameID = strconv.FormatInt(int64(game.GameID), 10)
	}

	keys := []string{
		r.keys.Event(uint32(event.ID)),
		r.keys.Events(),
		r.keys.Undecided(),
		r.keys.Games(),
		r.keys.GameLog(),
	}
	for _, id := range uniquePlayers(event.Payload.Participants()) {
		keys = append(keys, r.keys.PlayerEvents(int32(id)))
	}

	created, err := appendEventScript.Run(ctx, r.client, keys,
		uint32(event.ID), string(body), gameID, decision).Int()
	if err != nil {
		return fmt.Errorf("failed to append event %d: %w", event.ID, err)
	}
	if created == 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateEventID, event.ID)
	}

	return nil
}

// DecideEvent sets the decision of a pending event
func (r *redisRepository) DecideEvent(ctx context.Context, input *DecideEventInput) (*models.StandingEvent, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	decisionJSON, err := json.Marshal(&models.Decision{
		Approved: input.Approved,
		Reviewer: input.Reviewer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision: %w", err)
	}

	result, err := decideEventScript.Run(ctx, r.client,
		[]string{r.keys.Event(uint32(input.EventID)), r.keys.Undecided()},
		uint32(input.EventID), string(decisionJSON)).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to decide event %d: %w", input.EventID, err)
	}

	switch result {
	case -1:
		return nil, fmt.Errorf("%w: %d", ErrEventNotFound, input.EventID)
	case 0:
		return nil, fmt.Errorf("%w: %d", ErrAlreadyDecided, input.EventID)
	}

	return r.GetEvent(ctx, &GetEventInput{EventID: input.EventID})
}

// GetEvent retrieves an event by id
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.StandingEvent, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	fields, err := r.client.HGetAll(ctx, r.keys.Event(uint32(input.EventID))).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", input.EventID, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEventNotFound, input.EventID)
	}

	return decodeEvent(input.EventID, fields)
}

// GetEventByGameID retrieves the event that recorded a game
func (r *redisRepository) GetEventByGameID(ctx context.Context, input *GetEventByGameIDInput) (*models.StandingEvent, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	id, err := r.client.HGet(ctx, r.keys.Games(), strconv.FormatInt(int64(input.GameID), 10)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: game %d", ErrEventNotFound, input.GameID)
		}
		return nil, fmt.Errorf("failed to look up game %d: %w", input.GameID, err)
	}

	return r.GetEvent(ctx, &GetEventInput{EventID: models.EventNumber(id)})
}

// ListUndecided returns pending events, oldest first
func (r *redisRepository) ListUndecided(ctx context.Context, input *ListUndecidedInput) (*ListEventsOutput, error) {
	limit := int64(defaultPageSize)
	if input != nil && input.Limit > 0 {
		limit = int64(input.Limit)
	}

	members, err := r.client.ZRange(ctx, r.keys.Undecided(), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list undecided events: %w", err)
	}

	events, err := r.getEvents(ctx, members)
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: events}, nil
}

// ListEventsForPlayer returns events mentioning a player, newest first
func (r *redisRepository) ListEventsForPlayer(ctx context.Context, input *ListEventsForPlayerInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := int64(defaultPageSize)
	if input.Limit > 0 {
		limit = int64(input.Limit)
	}

	members, err := r.client.ZRevRange(ctx, r.keys.PlayerEvents(int32(input.PlayerID)), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events for player %d: %w", input.PlayerID, err)
	}

	events, err := r.getEvents(ctx, members)
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: events}, nil
}

// ListEvents returns events newest first, starting at Before when set
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		input = &ListEventsInput{}
	}

	upper := "+inf"
	if input.Before != nil {
		upper = strconv.FormatUint(uint64(*input.Before), 10)
	}

	return r.listByScore(ctx, r.keys.Events(), upper, input.Limit)
}

// ListGames returns game events ordered by game id, highest first, starting
// at Before when set
func (r *redisRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListEventsOutput, error) {
	if input == nil {
		input = &ListGamesInput{}
	}

	upper := "+inf"
	if input.Before != nil {
		upper = strconv.FormatInt(int64(*input.Before), 10)
	}

	return r.listByScore(ctx, r.keys.GameLog(), upper, input.Limit)
}

func (r *redisRepository) listByScore(ctx context.Context, key, upper string, limit int) (*ListEventsOutput, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	members, err := r.client.ZRevRangeByScore(ctx, key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   upper,
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", key, err)
	}

	events, err := r.getEvents(ctx, members)
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: events}, nil
}

// ScanFrom yields stored events with id >= From in ascending order, one
// page at a time. Ids missing from the store are simply not yielded.
// An event that cannot be decoded is yielded with only its ID set and an
// error wrapping ErrCorruptEvent; the scan continues if the consumer does.
// Any other error ends the scan.
func (r *redisRepository) ScanFrom(ctx context.Context, input *ScanFromInput) iter.Seq2[*models.StandingEvent, error] {
	from := int64(0)
	pageSize := int64(defaultPageSize)
	if input != nil {
		from = int64(input.From)
		if input.PageSize > 0 {
			pageSize = int64(input.PageSize)
		}
	}

	return func(yield func(*models.StandingEvent, error) bool) {
		next := from
		for {
			members, err := r.client.ZRangeByScore(ctx, r.keys.Events(), &redis.ZRangeBy{
				Min:   strconv.FormatInt(next, 10),
				Max:   "+inf",
				Count: pageSize,
			}).Result()
			if err != nil {
				yield(nil, fmt.Errorf("failed to scan events from %d: %w", next, err))
				return
			}

			ids, err := parseEventIDs(members)
			if err != nil {
				yield(nil, err)
				return
			}

			pipe := r.client.Pipeline()
			cmds := make([]*redis.MapStringStringCmd, len(ids))
			for i, id := range ids {
				cmds[i] = pipe.HGetAll(ctx, r.keys.Event(uint32(id)))
			}
			if len(ids) > 0 {
				if _, err := pipe.Exec(ctx); err != nil {
					yield(nil, fmt.Errorf("failed to load events: %w", err))
					return
				}
			}

			for i, id := range ids {
				fields := cmds[i].Val()
				if len(fields) == 0 {
					// removed since the page was read
					continue
				}
				event, err := decodeEvent(id, fields)
				if err != nil {
					if !yield(&models.StandingEvent{ID: id}, err) {
						return
					}
					continue
				}
				if !yield(event, nil) {
					return
				}
			}

			if int64(len(ids)) < pageSize {
				return
			}
			next = int64(ids[len(ids)-1]) + 1
		}
	}
}

// GetCheckpoint returns the ledger bookkeeping record. A fresh store yields
// the zero checkpoint.
func (r *redisRepository) GetCheckpoint(ctx context.Context) (*models.LedgerCheckpoint, error) {
	pipe := r.client.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, r.keys.Checkpoint())
	blacklistCmd := pipe.SMembers(ctx, r.keys.Blacklist())
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	checkpoint, err := decodeCheckpoint(fieldsCmd.Val())
	if err != nil {
		return nil, err
	}

	for _, member := range blacklistCmd.Val() {
		id, err := strconv.ParseInt(member, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid blacklist entry %q: %w", member, err)
		}
		checkpoint.LeaderboardBlacklist = append(checkpoint.LeaderboardBlacklist, models.PlayerID(id))
	}
	slices.Sort(checkpoint.LeaderboardBlacklist)

	return checkpoint, nil
}

// AdvanceCursor moves the cursor to To unless it is already further
func (r *redisRepository) AdvanceCursor(ctx context.Context, input *AdvanceCursorInput) (models.EventNumber, error) {
	if input == nil {
		return 0, errors.New("input cannot be nil")
	}

	cursor, err := advanceCursorScript.Run(ctx, r.client,
		[]string{r.keys.Checkpoint()}, uint32(input.To)).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to advance cursor: %w", err)
	}

	return models.EventNumber(cursor), nil
}

// ReplaceCheckpoint overwrites the counters and the cursor when nothing has
// written the checkpoint since ExpectedVersion was read
func (r *redisRepository) ReplaceCheckpoint(ctx context.Context, input *ReplaceCheckpointInput) (*models.LedgerCheckpoint, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := r.keys.Checkpoint()
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		version, err := tx.HGet(ctx, key, fieldVersion).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read checkpoint version: %w", err)
		}
		if version != input.ExpectedVersion {
			return fmt.Errorf("%w: expected version %d, found %d", ErrCheckpointConflict, input.ExpectedVersion, version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				fieldNextEventID, uint32(input.NextEventID),
				fieldNextGameID, int64(input.NextGameID),
				fieldNextPlayerID, int32(input.NextPlayerID),
				fieldCursor, uint32(input.Cursor),
			)
			pipe.HIncrBy(ctx, key, fieldVersion, 1)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, fmt.Errorf("%w: %w", ErrCheckpointConflict, err)
		}
		return nil, err
	}

	return r.GetCheckpoint(ctx)
}

// PopLastEvent removes event next_event_id-1, returns the reserved ids to
// the counters and pulls the cursor back to the removed id if needed
func (r *redisRepository) PopLastEvent(ctx context.Context) (*models.StandingEvent, error) {
	checkpointKey := r.keys.Checkpoint()

	var popped *models.StandingEvent
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, checkpointKey).Result()
		if err != nil {
			return fmt.Errorf("failed to read checkpoint: %w", err)
		}
		checkpoint, err := decodeCheckpoint(fields)
		if err != nil {
			return err
		}
		if checkpoint.NextEventID == 0 {
			return fmt.Errorf("%w: ledger is empty", ErrEventNotFound)
		}

		id := checkpoint.NextEventID - 1
		eventKey := r.keys.Event(uint32(id))
		eventFields, err := tx.HGetAll(ctx, eventKey).Result()
		if err != nil {
			return fmt.Errorf("failed to read event %d: %w", id, err)
		}
		if len(eventFields) == 0 {
			return fmt.Errorf("%w: %d", ErrEventNotFound, id)
		}
		event, err := decodeEvent(id, eventFields)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			member := strconv.FormatUint(uint64(id), 10)
			pipe.Del(ctx, eventKey)
			pipe.ZRem(ctx, r.keys.Events(), member)
			pipe.ZRem(ctx, r.keys.Undecided(), member)
			for _, pid := range uniquePlayers(event.Payload.Participants()) {
				pipe.ZRem(ctx, r.keys.PlayerEvents(int32(pid)), member)
			}
			pipe.HIncrBy(ctx, checkpointKey, fieldNextEventID, -1)
			if game, ok := event.Payload.(models.GameResult); ok {
				pipe.HDel(ctx, r.keys.Games(), strconv.FormatInt(int64(game.GameID), 10))
				pipe.ZRem(ctx, r.keys.GameLog(), member)
				if game.GameID+1 == checkpoint.NextGameID {
					pipe.HIncrBy(ctx, checkpointKey, fieldNextGameID, -1)
				}
			}
			if checkpoint.Cursor > id {
				pipe.HSet(ctx, checkpointKey, fieldCursor, uint32(id))
			}
			pipe.HIncrBy(ctx, checkpointKey, fieldVersion, 1)
			return nil
		})
		if err != nil {
			return err
		}

		popped = event
		return nil
	}, checkpointKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, fmt.Errorf("%w: %w", ErrCheckpointConflict, err)
		}
		return nil, err
	}

	return popped, nil
}

// AddToBlacklist hides a player from the leaderboard
func (r *redisRepository) AddToBlacklist(ctx context.Context, input *BlacklistInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.SAdd(ctx, r.keys.Blacklist(), int32(input.PlayerID)).Err(); err != nil {
		return fmt.Errorf("failed to blacklist player %d: %w", input.PlayerID, err)
	}

	return nil
}

// RemoveFromBlacklist shows a player on the leaderboard again
func (r *redisRepository) RemoveFromBlacklist(ctx context.Context, input *BlacklistInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.SRem(ctx, r.keys.Blacklist(), int32(input.PlayerID)).Err(); err != nil {
		return fmt.Errorf("failed to remove player %d from blacklist: %w", input.PlayerID, err)
	}

	return nil
}

// AppendAudit records an administrative operation, dropping the oldest
// entries beyond the cap
func (r *redisRepository) AppendAudit(ctx context.Context, input *AppendAuditInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.Entry.ID == "" {
		return errors.New("audit entry ID cannot be empty")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	key := r.keys.Audit()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, entryJSON)
		pipe.LTrim(ctx, key, 0, r.auditCap-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// ListAudit returns administrative operations, newest first
func (r *redisRepository) ListAudit(ctx context.Context, input *ListAuditInput) ([]*models.AuditEntry, error) {
	limit := int64(defaultPageSize)
	if input != nil && input.Limit > 0 {
		limit = int64(input.Limit)
	}

	values, err := r.client.LRange(ctx, r.keys.Audit(), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*models.AuditEntry, 0, len(values))
	for _, value := range values {
		var entry models.AuditEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *redisRepository) getEvents(ctx context.Context, members []string) ([]*models.StandingEvent, error) {
	ids, err := parseEventIDs(members)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.StandingEvent{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, r.keys.Event(uint32(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	events := make([]*models.StandingEvent, 0, len(ids))
	for i, id := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		event, err := decodeEvent(id, fields)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func decodeEvent(id models.EventNumber, fields map[string]string) (*models.StandingEvent, error) {
	var event models.StandingEvent
	if err := json.Unmarshal([]byte(fields[fieldBody]), &event); err != nil {
		return nil, fmt.Errorf("%w: event %d: %w", ErrCorruptEvent, id, err)
	}
	if event.ID != id {
		return nil, fmt.Errorf("%w: event %d is stored under id %d", ErrCorruptEvent, event.ID, id)
	}

	if decision, ok := fields[fieldDecision]; ok {
		var d models.Decision
		if err := json.Unmarshal([]byte(decision), &d); err != nil {
			return nil, fmt.Errorf("%w: decision of event %d: %w", ErrCorruptEvent, id, err)
		}
		event.Decision = &d
	}

	return &event, nil
}

func decodeCheckpoint(fields map[string]string) (*models.LedgerCheckpoint, error) {
	parse := func(field string, bits int) (int64, error) {
		value, ok := fields[field]
		if !ok {
			return 0, nil
		}
		n, err := strconv.ParseInt(value, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid checkpoint field %s: %w", field, err)
		}
		return n, nil
	}

	nextEvent, err := parse(fieldNextEventID, 64)
	if err != nil {
		return nil, err
	}
	nextGame, err := parse(fieldNextGameID, 64)
	if err != nil {
		return nil, err
	}
	nextPlayer, err := parse(fieldNextPlayerID, 32)
	if err != nil {
		return nil, err
	}
	cursor, err := parse(fieldCursor, 64)
	if err != nil {
		return nil, err
	}
	version, err := parse(fieldVersion, 64)
	if err != nil {
		return nil, err
	}

	return &models.LedgerCheckpoint{
		NextEventID:  models.EventNumber(nextEvent),
		NextGameID:   models.GameID(nextGame),
		NextPlayerID: models.PlayerID(nextPlayer),
		Cursor:       models.EventNumber(cursor),
		Version:      version,
	}, nil
}

func parseEventIDs(members []string) ([]models.EventNumber, error) {
	ids := make([]models.EventNumber, len(members))
	for i, member := range members {
		id, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid event index entry %q: %w", member, err)
		}
		ids[i] = models.EventNumber(id)
	}
	return ids, nil
}

func uniquePlayers(ids []models.PlayerID) []models.PlayerID {
	seen := make(map[models.PlayerID]struct{}, len(ids))
	unique := make([]models.PlayerID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
