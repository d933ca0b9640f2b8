package models

import (
	"time"
)

// PlayerID is the stable league identifier assigned at enrollment
type PlayerID int32

// Rating is a player's skill estimate
type Rating struct {
	// Mean is the estimated skill
	Mean float64 `json:"mean"`

	// Uncertainty is the standard deviation of the skill estimate
	Uncertainty float64 `json:"uncertainty"`
}

// Player is the projected state of a league member
type Player struct {
	// ID is the league identifier of the player
	ID PlayerID `json:"id"`

	// DisplayName is the unique lower-case handle of the player
	DisplayName string `json:"display_name"`

	// Rating is the current skill estimate
	Rating Rating `json:"rating"`

	// LastPlayed is when the player last took part in an approved game
	LastPlayed *time.Time `json:"last_played,omitempty"`

	// LinkedExternalIDs are chat-platform account ids bound to this player
	LinkedExternalIDs []string `json:"linked_external_ids,omitempty"`
}

// TouchLastPlayed moves LastPlayed forward to at, never backwards
func (p *Player) TouchLastPlayed(at time.Time) {
	if p.LastPlayed == nil || at.After(*p.LastPlayed) {
		t := at
		p.LastPlayed = &t
	}
}
