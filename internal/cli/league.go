package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	"github.com/KirkDiggler/ewar/internal/services/league"
	"github.com/KirkDiggler/ewar/internal/services/messaging"
	"github.com/spf13/cobra"
)

func newRegisterCommand(opts *RootOptions) *cobra.Command {
	var externalID string
	var force bool

	cmd := &cobra.Command{
		Use:   "register <handle>",
		Short: "Enroll a new player",
		Long: `Enroll a new player under a handle of up to 32 letters, digits, "_" or ".".

With --force a moderator (see --as) enrolls the player on someone else's behalf.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				var output *league.RegisterOutput
				var err error
				if force {
					output, err = app.League.ForceRegister(ctx, &league.ForceRegisterInput{
						Handle:     args[0],
						ExternalID: externalID,
						Moderator:  opts.actor(),
					})
				} else {
					output, err = app.League.Register(ctx, &league.RegisterInput{
						Handle:     args[0],
						ExternalID: externalID,
					})
				}
				if err != nil && output == nil {
					return err
				}

				w := cmd.OutOrStdout()
				handle := strings.ToLower(args[0])
				if app.Messages != nil {
					welcome, msgErr := app.Messages.GetWelcomeMessage(ctx, &messaging.GetWelcomeMessageInput{
						PlayerName: handle,
						PlayerID:   int32(output.PlayerID),
					})
					if msgErr == nil {
						fmt.Fprintln(w, welcome.Message)
					}
				}
				fmt.Fprintf(w, "%s (%d) enrolled by event %d\n", handle, output.PlayerID, output.EventID)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&externalID, "external-id", "", "chat account to bind to the player")
	cmd.Flags().BoolVar(&force, "force", false, "enroll on someone else's behalf (moderators only)")

	return cmd
}

func newSubmitCommand(opts *RootOptions) *cobra.Command {
	var duration uint32
	var trusted bool

	cmd := &cobra.Command{
		Use:   "submit <winner> <player>...",
		Short: "Record a finished game, winner first",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranking, err := parsePlayerIDs(args)
			if err != nil {
				return err
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.SubmitGame(ctx, &league.SubmitGameInput{
					Ranking:         ranking,
					DurationSeconds: duration,
					Submitter:       opts.actor(),
					Trusted:         trusted,
				})
				if err != nil && output == nil {
					return err
				}

				w := cmd.OutOrStdout()
				if output.Approved {
					fmt.Fprintf(w, "recorded game %d as event %d, approved\n", output.GameID, output.EventID)
					fmt.Fprintln(w, describeAdvance(output.Advance))
				} else {
					fmt.Fprintf(w, "recorded game %d as event %d, pending review\n", output.GameID, output.EventID)
				}
				return err
			})
		},
	}

	cmd.Flags().Uint32Var(&duration, "duration", 0, "seconds given for the game before overtime")
	cmd.Flags().BoolVar(&trusted, "trusted", false, "approve on the spot (moderators only)")

	return cmd
}

func newDecideCommand(opts *RootOptions, use string, approved bool) *cobra.Command {
	var byGame bool

	cmd := &cobra.Command{
		Use:   use + " <event>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a pending event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(strings.TrimPrefix(args[0], "#"), 10, 32)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				var output *league.DecideEventOutput
				if byGame {
					output, err = app.League.DecideGame(ctx, &league.DecideGameInput{
						GameID:   models.GameID(id),
						Approved: approved,
						Reviewer: opts.actor(),
					})
				} else {
					output, err = app.League.DecideEvent(ctx, &league.DecideEventInput{
						EventID:  models.EventNumber(id),
						Approved: approved,
						Reviewer: opts.actor(),
					})
				}
				if err != nil && output == nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), league.Summarize(output.Event))
				fmt.Fprintln(cmd.OutOrStdout(), describeAdvance(output.Advance))
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&byGame, "game", false, "the argument is a game id instead of an event id")

	return cmd
}

func newPreviewCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <winner> <player>...",
		Short: "Show what a game would do to ratings without recording it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranking, err := parsePlayerIDs(args)
			if err != nil {
				return err
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.PreviewOutcome(ctx, &league.PreviewOutcomeInput{Ranking: ranking})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				for i, entry := range output.Entries {
					fmt.Fprintf(w, "%d. %s: %s -> %s (%+.2f), %.1f%% to win\n",
						i+1,
						playerRef(entry.Player),
						rating.Format(entry.Player.Rating),
						rating.Format(entry.New),
						entry.LeaderboardDelta,
						entry.WinProbability*100)
				}
				fmt.Fprintf(w, "rating supply change: %+.2f\n", output.RatingSupplyDelta)
				return nil
			})
		},
	}
}

func newPenalizeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "penalize <player> <amount> <reason>...",
		Short: "Take rating away from a player (moderators only)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parsePlayerIDs(args[:1])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.Penalize(ctx, &league.PenalizeInput{
					Target:    ids[0],
					Amount:    amount,
					Reason:    strings.Join(args[2:], " "),
					Moderator: opts.actor(),
				})
				if err != nil && output == nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "penalty recorded as event %d\n", output.EventID)
				fmt.Fprintln(cmd.OutOrStdout(), describeAdvance(output.Advance))
				return err
			})
		},
	}
}

func newChangeCommand(opts *RootOptions) *cobra.Command {
	var deltaRating, deltaDeviation float64
	var reason string

	cmd := &cobra.Command{
		Use:   "change <player>...",
		Short: "Add rating or deviation deltas to players (moderators only)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			victims, err := parsePlayerIDs(args)
			if err != nil {
				return err
			}

			input := &league.ChangeStandingInput{
				Victims:   victims,
				Reason:    reason,
				Moderator: opts.actor(),
			}
			if cmd.Flags().Changed("rating") {
				input.DeltaRating = &deltaRating
			}
			if cmd.Flags().Changed("deviation") {
				input.DeltaDeviation = &deltaDeviation
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.ChangeStanding(ctx, input)
				if err != nil && output == nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "standing change recorded as event %d\n", output.EventID)
				fmt.Fprintln(cmd.OutOrStdout(), describeAdvance(output.Advance))
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&deltaRating, "rating", 0, "rating delta")
	cmd.Flags().Float64Var(&deltaDeviation, "deviation", 0, "deviation delta")
	cmd.Flags().StringVar(&reason, "reason", "", "why the standing changed")

	return cmd
}
