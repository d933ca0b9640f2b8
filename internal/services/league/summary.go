package league

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/ewar/internal/models"
)

// Summarize renders an event as one line of plain text
func Summarize(event *models.StandingEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d ", event.ID)

	switch {
	case event.IsPending():
		b.WriteString("[pending] ")
	case !event.IsApproved():
		b.WriteString("[rejected] ")
	}

	switch p := event.Payload.(type) {
	case models.GameResult:
		fmt.Fprintf(&b, "game %d: %s (%s)", p.GameID, joinIDs(p.Ranking, " > "),
			time.Duration(p.DurationSeconds)*time.Second)
	case models.Penalty:
		fmt.Fprintf(&b, "penalty %+.2f for %s: %s", p.DeltaRating, joinIDs(p.Victims, ", "), p.Reason)
	case models.InactivityDecay:
		fmt.Fprintf(&b, "inactivity decay %+.2f deviation for %d players", p.DeltaDeviation, len(p.Victims))
	case models.JoinLeague:
		names := make([]string, len(p.Victims))
		for i, id := range p.Victims {
			if profile, ok := p.ProfileFor(id); ok {
				names[i] = fmt.Sprintf("%s (%d)", profile.DisplayName, id)
			} else {
				names[i] = fmt.Sprintf("%d", id)
			}
		}
		fmt.Fprintf(&b, "%s joined at %.2f/%.2f", strings.Join(names, ", "), p.InitialRating, p.InitialDeviation)
	case models.SetStanding:
		fmt.Fprintf(&b, "standing set for %s: %s", joinIDs(p.Victims, ", "), p.Reason)
	case models.ChangeStanding:
		fmt.Fprintf(&b, "standing change for %s:", joinIDs(p.Victims, ", "))
		if p.DeltaRating != nil {
			fmt.Fprintf(&b, " rating %+.2f", *p.DeltaRating)
		}
		if p.DeltaDeviation != nil {
			fmt.Fprintf(&b, " deviation %+.2f", *p.DeltaDeviation)
		}
		if p.Reason != "" {
			fmt.Fprintf(&b, " (%s)", p.Reason)
		}
	default:
		b.WriteString("unknown event")
	}

	return b.String()
}

func joinIDs(ids []models.PlayerID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, sep)
}
