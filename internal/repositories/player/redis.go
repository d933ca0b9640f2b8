package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ewar/internal/common/keyspace"
	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrPlayerNotFound is returned when a player is not found
	ErrPlayerNotFound = errors.New("player not found")

	// ErrHandleTaken is returned when another player already uses a handle
	ErrHandleTaken = errors.New("handle already taken")

	// ErrExternalIDTaken is returned when an account is already bound to a player
	ErrExternalIDTaken = errors.New("external id already bound to a player")

	// ErrPlayerIDTaken is returned when a player id was already claimed
	ErrPlayerIDTaken = errors.New("player id already claimed")
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keyspace namespaces every key, defaults to the bare keyspace
	Keyspace *keyspace.Keyspace
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	keys   *keyspace.Keyspace
}

// NewRedis creates a new Redis-backed player repository
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

	return &redisRepository{
		client: cfg.RedisClient,
		keys:   keys,
	}, nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	playerJSON, err := r.client.Get(ctx, r.keys.Player(int32(input.PlayerID))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, input.PlayerID)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return decodePlayer(playerJSON)
}

// GetPlayers retrieves several players in one round trip
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetPlayersOutput{
		Players: make(map[models.PlayerID]*models.Player, len(input.PlayerIDs)),
		Missing: []models.PlayerID{},
	}
	if len(input.PlayerIDs) == 0 {
		return output, nil
	}

	keys := make([]string, len(input.PlayerIDs))
	for i, id := range input.PlayerIDs {
		keys[i] = r.keys.Player(int32(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	for i, value := range values {
		id := input.PlayerIDs[i]
		playerJSON, ok := value.(string)
		if !ok {
			output.Missing = append(output.Missing, id)
			continue
		}
		player, err := decodePlayer(playerJSON)
		if err != nil {
			return nil, err
		}
		output.Players[id] = player
	}

	return output, nil
}

// FindByHandle retrieves a player by lower-case display name
func (r *redisRepository) FindByHandle(ctx context.Context, input *FindByHandleInput) (*models.Player, error) {
	if input == nil || input.Handle == "" {
		return nil, errors.New("input and handle cannot be empty")
	}

	return r.findByClaim(ctx, r.keys.Handle(input.Handle))
}

// FindByExternalID retrieves a player by linked chat-platform account
func (r *redisRepository) FindByExternalID(ctx context.Context, input *FindByExternalIDInput) (*models.Player, error) {
	if input == nil || input.ExternalID == "" {
		return nil, errors.New("input and external ID cannot be empty")
	}

	return r.findByClaim(ctx, r.keys.ExternalID(input.ExternalID))
}

func (r *redisRepository) findByClaim(ctx context.Context, key string) (*models.Player, error) {
	id, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve claim: %w", err)
	}

	// claimed players only exist once their enrollment has been projected
	return r.GetPlayer(ctx, &GetPlayerInput{PlayerID: models.PlayerID(id)})
}

// ClaimIdentity reserves the handle and external ids for a player id, all or nothing
func (r *redisRepository) ClaimIdentity(ctx context.Context, input *ClaimIdentityInput) error {
	if input == nil || input.Handle == "" {
		return errors.New("input and handle cannot be empty")
	}

	result, err := claimIdentityScript.Run(ctx, r.client, r.claimKeys(input),
		int32(input.PlayerID), strings.ToLower(input.Handle)).Int()
	if err != nil {
		return fmt.Errorf("failed to claim identity: %w", err)
	}

	switch result {
	case 0:
		return fmt.Errorf("%w: %s", ErrHandleTaken, strings.ToLower(input.Handle))
	case -1:
		return ErrExternalIDTaken
	case -2:
		return fmt.Errorf("%w: %d", ErrPlayerIDTaken, input.PlayerID)
	}

	return nil
}

// ReleaseIdentity removes the claims still held by the player id
func (r *redisRepository) ReleaseIdentity(ctx context.Context, input *ClaimIdentityInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := releaseIdentityScript.Run(ctx, r.client, r.claimKeys(input), int32(input.PlayerID)).Err(); err != nil {
		return fmt.Errorf("failed to release identity: %w", err)
	}

	return nil
}

func (r *redisRepository) claimKeys(input *ClaimIdentityInput) []string {
	keys := []string{r.keys.Registry(), r.keys.Handle(input.Handle)}
	for _, externalID := range input.ExternalIDs {
		keys = append(keys, r.keys.ExternalID(externalID))
	}
	return keys
}

// MissingRegistrations returns the ids, in request order, that no enrollment claimed
func (r *redisRepository) MissingRegistrations(ctx context.Context, input *MissingRegistrationsInput) ([]models.PlayerID, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	missing := []models.PlayerID{}
	if len(input.PlayerIDs) == 0 {
		return missing, nil
	}

	fields := make([]string, len(input.PlayerIDs))
	for i, id := range input.PlayerIDs {
		fields[i] = strconv.FormatInt(int64(id), 10)
	}

	values, err := r.client.HMGet(ctx, r.keys.Registry(), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check registrations: %w", err)
	}

	for i, value := range values {
		if value == nil {
			missing = append(missing, input.PlayerIDs[i])
		}
	}

	return missing, nil
}

// CommitEffect stores every player and moves the cursor in one script. The
// cursor must sit exactly on the committed event, otherwise another writer
// got there first and nothing is written.
func (r *redisRepository) CommitEffect(ctx context.Context, input *CommitEffectInput) (*CommitEffectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	keys := []string{
		r.keys.Checkpoint(),
		r.keys.Players(),
		r.keys.Leaderboard(),
		r.keys.LastPlayed(),
	}
	args := []interface{}{uint32(input.Cursor)}
	for _, player := range input.Players {
		if player == nil {
			return nil, errors.New("player cannot be nil")
		}

		playerJSON, err := json.Marshal(player)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal player %d: %w", player.ID, err)
		}

		lastPlayed := ""
		if player.LastPlayed != nil {
			lastPlayed = strconv.FormatInt(player.LastPlayed.Unix(), 10)
		}

		keys = append(keys, r.keys.Player(int32(player.ID)))
		args = append(args,
			int32(player.ID),
			string(playerJSON),
			strconv.FormatFloat(rating.LeaderboardValue(player.Rating), 'f', -1, 64),
			lastPlayed,
		)
	}

	result, err := commitEffectScript.Run(ctx, r.client, keys, args...).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to commit effect up to %d: %w", input.Cursor, err)
	}
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected commit result %v", result)
	}

	return &CommitEffectOutput{
		Cursor:  models.EventNumber(result[0]),
		Applied: result[1] == 1,
	}, nil
}

// ResetProjection deletes every projected player and sets the cursor to zero
// in one script. Identity claims are kept, enrollments recreate the players
// on replay.
func (r *redisRepository) ResetProjection(ctx context.Context) error {
	keys := []string{
		r.keys.Checkpoint(),
		r.keys.Players(),
		r.keys.Leaderboard(),
		r.keys.LastPlayed(),
	}

	if err := resetProjectionScript.Run(ctx, r.client, keys, r.keys.PlayerPrefix()).Err(); err != nil {
		return fmt.Errorf("failed to reset projection: %w", err)
	}

	return nil
}

// ListByLeaderboard returns players ordered by leaderboard value, best first
func (r *redisRepository) ListByLeaderboard(ctx context.Context, input *ListByLeaderboardInput) (*ListPlayersOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	members, err := r.client.ZRevRange(ctx, r.keys.Leaderboard(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	return r.loadOrdered(ctx, members)
}

// ListInactive returns players whose last game is strictly older than the cutoff, oldest first
func (r *redisRepository) ListInactive(ctx context.Context, input *ListInactiveInput) (*ListPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	members, err := r.client.ZRangeByScore(ctx, r.keys.LastPlayed(), &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(input.PlayedBefore.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list inactive players: %w", err)
	}

	return r.loadOrdered(ctx, members)
}

func (r *redisRepository) loadOrdered(ctx context.Context, members []string) (*ListPlayersOutput, error) {
	ids := make([]models.PlayerID, len(members))
	for i, member := range members {
		id, err := strconv.ParseInt(member, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid player index entry %q: %w", member, err)
		}
		ids[i] = models.PlayerID(id)
	}

	found, err := r.GetPlayers(ctx, &GetPlayersInput{PlayerIDs: ids})
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(ids))
	for _, id := range ids {
		if player, ok := found.Players[id]; ok {
			players = append(players, player)
		}
	}

	return &ListPlayersOutput{Players: players}, nil
}

func decodePlayer(playerJSON string) (*models.Player, error) {
	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}
	return &player, nil
}
