package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/ewar/internal/common/clock"
	"github.com/KirkDiggler/ewar/internal/common/keyspace"
	"github.com/KirkDiggler/ewar/internal/common/uuid"
	"github.com/KirkDiggler/ewar/internal/config"
	ledgerRepo "github.com/KirkDiggler/ewar/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/ewar/internal/repositories/player"
	"github.com/KirkDiggler/ewar/internal/services/decay"
	"github.com/KirkDiggler/ewar/internal/services/integrity"
	"github.com/KirkDiggler/ewar/internal/services/league"
	"github.com/KirkDiggler/ewar/internal/services/messaging"
	"github.com/KirkDiggler/ewar/internal/services/projector"
	"github.com/redis/go-redis/v9"
)

// App holds the wired services the commands run against
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	League   league.Service
	Decay    decay.Service
	Messages messaging.Service

	// Close releases the connections behind the services, may be nil
	Close func() error
}

// Opener builds the App for a command invocation
type Opener func(ctx context.Context) (*App, error)

// DefaultOpener loads the configuration from the environment and wires the
// Redis-backed services
func DefaultOpener(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	return Open(ctx, cfg, logger)
}

// Open connects to Redis and wires every service of the league
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	app, err := wire(cfg, logger, redisClient)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	app.Close = redisClient.Close
	return app, nil
}

func wire(cfg *config.Config, logger *slog.Logger, redisClient *redis.Client) (*App, error) {
	keys := keyspace.New(cfg.Namespace)

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
		Keyspace:    keys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger repository: %w", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
		Keyspace:    keys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}

	proj, err := projector.New(&projector.Config{
		LedgerRepo:    ledger,
		PlayerRepo:    players,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create projector: %w", err)
	}

	checker, err := integrity.New(&integrity.Config{
		LedgerRepo:    ledger,
		PlayerRepo:    players,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create integrity checker: %w", err)
	}

	leagueSvc, err := league.New(&league.Config{
		LedgerRepo:       ledger,
		PlayerRepo:       players,
		Projector:        proj,
		IntegrityChecker: checker,
		Clock:            clock.New(),
		UUIDGenerator:    uuid.New(),
		Logger:           logger,
		Moderators:       cfg.ModeratorIDs(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create league service: %w", err)
	}

	decayJob, err := decay.New(&decay.Config{
		LedgerRepo:     ledger,
		PlayerRepo:     players,
		Projector:      proj,
		Clock:          clock.New(),
		Logger:         logger,
		InactiveAfter:  cfg.DecayAfter,
		DeltaDeviation: cfg.DecayAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decay job: %w", err)
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		League:   leagueSvc,
		Decay:    decayJob,
		Messages: messages,
	}, nil
}
