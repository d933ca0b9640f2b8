package decay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own messages through slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// Schedule registers job on a UTC cron schedule. The returned cron is not
// started yet. A run still in progress when the next tick fires is skipped.
func Schedule(ctx context.Context, job Service, spec string, logger *slog.Logger) (*cron.Cron, error) {
	if spec == "" {
		spec = DefaultSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("job", job.Name())

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{logger: logger}),
		cron.WithChain(cron.Recover(cronLogger{logger: logger}), cron.SkipIfStillRunning(cronLogger{logger: logger})),
	)

	_, err := c.AddFunc(spec, func() {
		output, err := job.Run(ctx)
		if err != nil {
			logger.Error("scheduled run failed", "error", err)
			return
		}
		logger.Info("scheduled run finished", "victims", len(output.Victims))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return c, nil
}
