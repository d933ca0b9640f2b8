package league

import (
	"testing"

	"github.com/KirkDiggler/ewar/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	reviewer := models.PlayerID(1)
	delta := -1.5

	tests := []struct {
		name  string
		event *models.StandingEvent
		want  string
	}{
		{
			name: "pending game",
			event: &models.StandingEvent{ID: 4, Payload: models.GameResult{
				GameID: 2, Ranking: []models.PlayerID{3, 1, 2}, DurationSeconds: 754,
			}},
			want: "#4 [pending] game 2: 3 > 1 > 2 (12m34s)",
		},
		{
			name: "approved penalty",
			event: &models.StandingEvent{ID: 5, Decision: &models.Decision{Approved: true, Reviewer: &reviewer},
				Payload: models.Penalty{Victims: []models.PlayerID{3}, DeltaRating: -5, Reason: "afk"}},
			want: "#5 penalty -5.00 for 3: afk",
		},
		{
			name: "rejected decay",
			event: &models.StandingEvent{ID: 6, Decision: &models.Decision{},
				Payload: models.InactivityDecay{Victims: []models.PlayerID{1, 2}, DeltaDeviation: 0.1}},
			want: "#6 [rejected] inactivity decay +0.10 deviation for 2 players",
		},
		{
			name: "enrollment",
			event: &models.StandingEvent{ID: 0, Decision: &models.Decision{Approved: true},
				Payload: models.JoinLeague{
					Victims: []models.PlayerID{0, 1}, InitialRating: 18, InitialDeviation: 9,
					Profiles: []models.Profile{{PlayerID: 0, DisplayName: "alice"}},
				}},
			want: "#0 alice (0), 1 joined at 18.00/9.00",
		},
		{
			name: "standing change",
			event: &models.StandingEvent{ID: 9, Decision: &models.Decision{Approved: true},
				Payload: models.ChangeStanding{Victims: []models.PlayerID{2}, DeltaDeviation: &delta, Reason: "fix"}},
			want: "#9 standing change for 2: deviation -1.50 (fix)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.event))
		})
	}
}
