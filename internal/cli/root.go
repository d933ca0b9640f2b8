// Package cli implements the ewar command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/KirkDiggler/ewar/internal/services/messaging"
	"github.com/KirkDiggler/ewar/internal/services/projector"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError carries the exit code a command wants the process to end with
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// userError is a league condition explained in plain words
type userError struct {
	message string
	err     error
}

func (e *userError) Error() string {
	return e.message
}

func (e *userError) Unwrap() error {
	return e.err
}

// GetExitCode extracts the exit code from an error, ExitCommandError when
// the error carries none
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var userErr *userError
	if errors.As(err, &userErr) {
		return ExitFailure
	}
	return ExitCommandError
}

// RootOptions holds global flags for all commands
type RootOptions struct {
	// Actor is the league id of the person running the command, negative for the system
	Actor int32

	open Opener
}

// actor returns the acting player, nil for system runs
func (o *RootOptions) actor() *models.PlayerID {
	if o.Actor < 0 {
		return nil
	}
	id := models.PlayerID(o.Actor)
	return &id
}

// run opens the App for the duration of fn
func (o *RootOptions) run(ctx context.Context, fn func(ctx context.Context, app *App) error) error {
	app, err := o.open(ctx)
	if err != nil {
		return &ExitError{Code: ExitCommandError, Message: "failed to start", Err: err}
	}
	if app.Close != nil {
		defer app.Close()
	}

	if err := fn(ctx, app); err != nil {
		return explain(ctx, app.Messages, err)
	}
	return nil
}

// explain replaces league conditions with the message meant for the user
func explain(ctx context.Context, messages messaging.Service, err error) error {
	var exitErr *ExitError
	if messages == nil || errors.As(err, &exitErr) {
		return err
	}

	output, msgErr := messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil || !output.Known {
		return err
	}
	return &userError{message: output.Message, err: err}
}

// NewRootCommand creates the root command of the league CLI
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:           "ewar",
		Short:         "ewar - ranked league ledger",
		Long:          "Records league games and standing changes in an append-only ledger and keeps TrueSkill ratings projected from it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Int32Var(&opts.Actor, "as", -1, "league id of the player running the command, negative runs as the system")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newRegisterCommand(opts))
	cmd.AddCommand(newSubmitCommand(opts))
	cmd.AddCommand(newDecideCommand(opts, "approve", true))
	cmd.AddCommand(newDecideCommand(opts, "reject", false))
	cmd.AddCommand(newPreviewCommand(opts))
	cmd.AddCommand(newPenalizeCommand(opts))
	cmd.AddCommand(newChangeCommand(opts))
	cmd.AddCommand(newLeaderboardCommand(opts))
	cmd.AddCommand(newPlayerCommand(opts))
	cmd.AddCommand(newUnreviewedCommand(opts))
	cmd.AddCommand(newLogCommand(opts))
	cmd.AddCommand(newGamesCommand(opts))
	cmd.AddCommand(newGameCommand(opts))
	cmd.AddCommand(newAuditCommand(opts))
	cmd.AddCommand(newBlacklistCommand(opts))
	cmd.AddCommand(newAdvanceCommand(opts))
	cmd.AddCommand(newFsckCommand(opts))
	cmd.AddCommand(newReprocessCommand(opts))
	cmd.AddCommand(newPopEventCommand(opts))
	cmd.AddCommand(newDecayCommand(opts))

	return cmd
}

func parsePlayerIDs(args []string) ([]models.PlayerID, error) {
	ids := make([]models.PlayerID, len(args))
	for i, arg := range args {
		id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q", arg)
		}
		ids[i] = models.PlayerID(id)
	}
	return ids, nil
}

func playerRef(p *models.Player) string {
	return fmt.Sprintf("%s (%d)", p.DisplayName, p.ID)
}

func describeAdvance(a *projector.AdvanceOutput) string {
	if a == nil {
		return "projector did not run"
	}
	out := fmt.Sprintf("cursor at %d (applied %d, rejected %d)", a.Cursor, a.Applied, a.Rejected)
	if a.BlockedAt != nil {
		out += fmt.Sprintf(", waiting on event %d", *a.BlockedAt)
	}
	return out
}
