package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/services/league"
	"github.com/spf13/cobra"
)

func newBlacklistCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist",
		Short: "Manage players hidden from the leaderboard",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List blacklisted players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				players, err := app.League.ListBlacklist(ctx)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(players) == 0 {
					fmt.Fprintln(w, "nobody is blacklisted")
					return nil
				}
				for _, player := range players {
					fmt.Fprintln(w, playerRef(player))
				}
				return nil
			})
		},
	})

	change := func(use, short string, add bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <player>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parsePlayerIDs(args)
				if err != nil {
					return err
				}

				return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
					input := &league.BlacklistInput{PlayerID: ids[0], Moderator: opts.actor()}
					if add {
						err = app.League.AddToBlacklist(ctx, input)
					} else {
						err = app.League.RemoveFromBlacklist(ctx, input)
					}
					if err != nil {
						return err
					}

					fmt.Fprintln(cmd.OutOrStdout(), "ok")
					return nil
				})
			},
		}
	}
	cmd.AddCommand(change("add", "Hide a player from the leaderboard (moderators only)", true))
	cmd.AddCommand(change("remove", "Show a player on the leaderboard again (moderators only)", false))

	return cmd
}

func newAdvanceCommand(opts *RootOptions) *cobra.Command {
	var stopBefore int64

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Apply decided events up to the first pending one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &league.AdvanceInput{Actor: opts.actor()}
			if stopBefore >= 0 {
				stop := models.EventNumber(stopBefore)
				input.StopBefore = &stop
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.Advance(ctx, input)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), describeAdvance(output))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&stopBefore, "stop-before", -1, "leave this event and everything after it untouched")

	return cmd
}

func newFsckCommand(opts *RootOptions) *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "fsck",
		Short: "Verify the ledger against its checkpoint",
		Long: `Replay the whole ledger and compare what it implies with the stored checkpoint.

With --repair the checkpoint counters are clamped to the derived values. Ratings
are not recomputed by a repair; run reprocess afterwards.

Exit codes:
  0 - no issues, or issues were repaired
  1 - issues found
  2 - command error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				report, err := app.League.RunIntegrityCheck(ctx, &league.RunIntegrityCheckInput{
					Repair: repair,
					Actor:  opts.actor(),
				})
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.OutOrStdout(), report.String())
				if !report.OK() && report.Repaired == nil {
					return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d integrity issues found", len(report.Issues))}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "clamp the checkpoint to the derived counters")

	return cmd
}

func newReprocessCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reprocess",
		Short: "Zero every rating and replay the whole ledger (moderators only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.ForceReprocess(ctx, &league.AdminInput{Actor: opts.actor()})
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), describeAdvance(output))
				return nil
			})
		},
	}
}

func newPopEventCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "pop-event",
		Short: "Irreversibly remove the newest event (moderators only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return &ExitError{Code: ExitCommandError, Message: "pop-event removes the newest event for good, pass --yes to confirm"}
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.PopLastEvent(ctx, &league.AdminInput{Actor: opts.actor()})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "removed %s\n", league.Summarize(output.Event))
				if output.Replay != nil {
					fmt.Fprintf(w, "replayed, %s\n", describeAdvance(output.Replay))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the removal")

	return cmd
}

func newDecayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decay",
		Short: "Run the inactivity decay once, now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.Decay.Run(ctx)
				if err != nil && output == nil {
					return err
				}

				w := cmd.OutOrStdout()
				if output.EventID == nil {
					fmt.Fprintln(w, "no inactive players")
					return err
				}

				victims := make([]string, len(output.Victims))
				for i, id := range output.Victims {
					victims[i] = strconv.Itoa(int(id))
				}
				fmt.Fprintf(w, "decayed %d players as event %d: %s\n", len(victims), *output.EventID, strings.Join(victims, ", "))
				if output.Advance != nil {
					fmt.Fprintln(w, describeAdvance(output.Advance))
				}
				return err
			})
		},
	}
}
