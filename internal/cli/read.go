package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/rating"
	"github.com/KirkDiggler/ewar/internal/services/league"
	"github.com/KirkDiggler/ewar/internal/services/messaging"
	"github.com/spf13/cobra"
)

func newLeaderboardCommand(opts *RootOptions) *cobra.Command {
	var limit int
	var provisional bool
	var banter bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the league standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				board, err := app.League.ListByLeaderboardValue(ctx, &league.ListByLeaderboardValueInput{
					IncludeProvisional: provisional,
					Limit:              limit,
				})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(board.Entries) == 0 {
					fmt.Fprintln(w, "nobody is ranked yet")
					return nil
				}
				for i, entry := range board.Entries {
					value := rating.Format(entry.Player.Rating)
					fmt.Fprintf(w, "%d. %s %s\n", entry.Position, playerRef(entry.Player), value)
					if !banter || app.Messages == nil {
						continue
					}

					comment, err := app.Messages.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
						PlayerName:   entry.Player.DisplayName,
						Rank:         i,
						TotalPlayers: len(board.Entries),
						Value:        value,
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "   %s\n", comment.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries, zero shows everyone")
	cmd.Flags().BoolVar(&provisional, "provisional", false, "include players whose rating is still provisional")
	cmd.Flags().BoolVar(&banter, "banter", false, "comment on every position")

	return cmd
}

func newPlayerCommand(opts *RootOptions) *cobra.Command {
	var external bool
	var limit int

	cmd := &cobra.Command{
		Use:   "player <handle|#id>",
		Short: "Show a player and their recent events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				player, err := lookupPlayer(ctx, app.League, args[0], external)
				if err != nil {
					return err
				}

				history, err := app.League.History(ctx, &league.HistoryInput{PlayerID: player.ID, Limit: limit})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "player: %s\n", playerRef(player))
				fmt.Fprintf(w, "rating: %s (mean %.2f, deviation %.2f)\n",
					rating.Format(player.Rating), player.Rating.Mean, player.Rating.Uncertainty)
				if rating.IsProvisional(player.Rating) {
					fmt.Fprintf(w, "provisional until deviation falls under %.1f\n", rating.ProvisionalThreshold)
				}
				if player.LastPlayed != nil {
					fmt.Fprintf(w, "last played: %s\n", player.LastPlayed.UTC().Format(time.RFC3339))
				} else {
					fmt.Fprintln(w, "last played: never")
				}
				if len(player.LinkedExternalIDs) > 0 {
					fmt.Fprintf(w, "linked accounts: %s\n", strings.Join(player.LinkedExternalIDs, ", "))
				}

				fmt.Fprintln(w, "recent events:")
				for _, entry := range history.Entries {
					line := league.Summarize(entry.Event)
					if entry.Repeats > 1 {
						line = fmt.Sprintf("%s x%d", line, entry.Repeats)
					}
					fmt.Fprintf(w, "  %s\n", line)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&external, "external", false, "the argument is a linked chat account")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of events to read")

	return cmd
}

func lookupPlayer(ctx context.Context, svc league.Service, ref string, external bool) (*models.Player, error) {
	if external {
		return svc.FindPlayerByExternalID(ctx, &league.FindPlayerByExternalIDInput{ExternalID: ref})
	}

	if strings.HasPrefix(ref, "#") {
		id, err := strconv.ParseInt(ref[1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q", ref)
		}
		return svc.GetPlayer(ctx, &league.GetPlayerInput{PlayerID: models.PlayerID(id)})
	}

	return svc.FindPlayerByHandle(ctx, &league.FindPlayerByHandleInput{Handle: ref})
}

func newUnreviewedCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "unreviewed",
		Short: "List the oldest events awaiting review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				events, err := app.League.ListUnreviewed(ctx, &league.ListUnreviewedInput{Limit: limit})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(events) == 0 {
					fmt.Fprintln(w, "nothing to review")
					return nil
				}
				for _, event := range events {
					fmt.Fprintln(w, league.Summarize(event))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of events")

	return cmd
}

func newAuditCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List administrative operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				entries, err := app.League.ListAudit(ctx, &league.ListAuditInput{Limit: limit})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				for _, entry := range entries {
					actor := "system"
					if entry.Actor != nil {
						actor = strconv.Itoa(int(*entry.Actor))
					}
					fmt.Fprintf(w, "%s %s by %s: %s\n", entry.At.UTC().Format(time.RFC3339), entry.Action, actor, entry.Detail)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "number of entries")

	return cmd
}

func newLogCommand(opts *RootOptions) *cobra.Command {
	var before uint32
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List the ledger, newest event first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &league.EventLogInput{Limit: limit}
			if cmd.Flags().Changed("before") {
				input.Before = (*models.EventNumber)(&before)
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				events, err := app.League.EventLog(ctx, input)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(events) == 0 {
					fmt.Fprintln(w, "no events")
					return nil
				}
				for _, event := range events {
					fmt.Fprintln(w, league.Summarize(event))
				}
				return nil
			})
		},
	}

	cmd.Flags().Uint32Var(&before, "before", 0, "newest event id to show")
	cmd.Flags().IntVarP(&limit, "limit", "n", 200, "number of events")

	return cmd
}

func newGamesCommand(opts *RootOptions) *cobra.Command {
	var before int64
	var limit int

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List recorded games, highest game id first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &league.GameLogInput{Limit: limit}
			if cmd.Flags().Changed("before") {
				input.Before = (*models.GameID)(&before)
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				events, err := app.League.GameLog(ctx, input)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(events) == 0 {
					fmt.Fprintln(w, "no games")
					return nil
				}
				for _, event := range events {
					fmt.Fprintln(w, league.Summarize(event))
				}
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&before, "before", 0, "highest game id to show")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "number of games")

	return cmd
}

func newGameCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "game <id>",
		Short: "Show a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}

			return opts.run(cmd.Context(), func(ctx context.Context, app *App) error {
				output, err := app.League.GetGame(ctx, &league.GetGameInput{GameID: models.GameID(id)})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "game %d (event #%d)\n", output.Game.GameID, output.Event.ID)
				fmt.Fprintf(w, "when: %s\n", output.Event.OccurredAt.UTC().Format(time.RFC3339))
				fmt.Fprintf(w, "reviewer: %s\n", describeReview(output.Event))
				fmt.Fprintf(w, "length: %d:%02d\n", output.Game.DurationSeconds/60, output.Game.DurationSeconds%60)
				for i, id := range output.Game.Ranking {
					name := fmt.Sprintf("#%d", id)
					if p := output.Players[i]; p != nil {
						name = playerRef(p)
					}
					fmt.Fprintf(w, "%d. %s\n", i+1, name)
				}
				return nil
			})
		},
	}
}

func describeReview(event *models.StandingEvent) string {
	switch {
	case event.IsPending():
		return "not approved yet"
	case event.Decision.Reviewer == nil && event.IsApproved():
		return "approved"
	case event.Decision.Reviewer == nil:
		return "rejected"
	case event.IsApproved():
		return fmt.Sprintf("%d", *event.Decision.Reviewer)
	default:
		return fmt.Sprintf("%d (rejected)", *event.Decision.Reviewer)
	}
}
