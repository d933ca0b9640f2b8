package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/ewar/internal/services/decay"
	"github.com/KirkDiggler/ewar/internal/services/league"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the inactivity decay schedule and expose metrics until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), serve)
		},
	}
}

func serve(ctx context.Context, app *App) error {
	logger := app.Logger.With("component", "serve")

	// catch up on anything decided while the process was down
	if output, err := app.League.Advance(ctx, &league.AdvanceInput{}); err != nil {
		logger.Error("startup advance failed", "error", err)
	} else {
		logger.Info("startup advance finished", "cursor", output.Cursor, "applied", output.Applied)
	}

	scheduler, err := decay.Schedule(ctx, app.Decay, app.Config.DecaySchedule, logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheduler.Start()
		logger.Info("decay scheduled", "schedule", app.Config.DecaySchedule)
		<-ctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	if app.Config.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:              app.Config.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info("serving metrics", "addr", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	logger.Info("shut down")
	return err
}
