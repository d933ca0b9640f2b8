package models

// PayloadKind tags the variant of a standing event payload
type PayloadKind string

const (
	PayloadKindGameResult      PayloadKind = "game_result"
	PayloadKindPenalty         PayloadKind = "penalty"
	PayloadKindInactivityDecay PayloadKind = "inactivity_decay"
	PayloadKindJoinLeague      PayloadKind = "join_league"
	PayloadKindSetStanding     PayloadKind = "set_standing"
	PayloadKindChangeStanding  PayloadKind = "change_standing"
)

// Payload is the league-affecting fact carried by a standing event.
// The set of variants is closed: only types in this package implement it.
type Payload interface {
	// Kind returns the variant tag used for persistence
	Kind() PayloadKind

	// Participants returns every player the payload refers to
	Participants() []PlayerID

	isPayload()
}

// Penalty removes rating from players for foul play
type Penalty struct {
	Victims     []PlayerID `json:"victims"`
	DeltaRating float64    `json:"delta_rating"`
	Reason      string     `json:"reason"`
}

func (Penalty) Kind() PayloadKind          { return PayloadKindPenalty }
func (p Penalty) Participants() []PlayerID { return p.Victims }
func (Penalty) isPayload()                 {}

// AsChangeStanding returns the generic form of the penalty
func (p Penalty) AsChangeStanding() ChangeStanding {
	delta := p.DeltaRating
	return ChangeStanding{
		Victims:     p.Victims,
		DeltaRating: &delta,
		Reason:      p.Reason,
	}
}

// InactivityDecay adds uncertainty to players who stopped playing
type InactivityDecay struct {
	Victims        []PlayerID `json:"victims"`
	DeltaDeviation float64    `json:"delta_deviation"`
}

func (InactivityDecay) Kind() PayloadKind          { return PayloadKindInactivityDecay }
func (d InactivityDecay) Participants() []PlayerID { return d.Victims }
func (InactivityDecay) isPayload()                 {}

// Profile is the identity of a player created by enrollment
type Profile struct {
	PlayerID    PlayerID `json:"player_id"`
	DisplayName string   `json:"display_name"`
	ExternalIDs []string `json:"external_ids,omitempty"`
}

// JoinLeague enrolls players with an initial rating
type JoinLeague struct {
	Victims          []PlayerID `json:"victims"`
	InitialRating    float64    `json:"initial_rating"`
	InitialDeviation float64    `json:"initial_deviation"`

	// Profiles describe victims that have no player record yet
	Profiles []Profile `json:"profiles,omitempty"`
}

func (JoinLeague) Kind() PayloadKind          { return PayloadKindJoinLeague }
func (j JoinLeague) Participants() []PlayerID { return j.Victims }
func (JoinLeague) isPayload()                 {}

// ProfileFor returns the enrollment profile of id, if present
func (j JoinLeague) ProfileFor(id PlayerID) (Profile, bool) {
	for _, p := range j.Profiles {
		if p.PlayerID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// SetStanding overwrites rating fields. It cannot be applied yet.
type SetStanding struct {
	Victims      []PlayerID `json:"victims"`
	NewRating    *float64   `json:"new_rating,omitempty"`
	NewDeviation *float64   `json:"new_deviation,omitempty"`
	Reason       string     `json:"reason"`
}

func (SetStanding) Kind() PayloadKind          { return PayloadKindSetStanding }
func (s SetStanding) Participants() []PlayerID { return s.Victims }
func (SetStanding) isPayload()                 {}

// ChangeStanding adds deltas to rating fields
type ChangeStanding struct {
	Victims        []PlayerID `json:"victims"`
	DeltaRating    *float64   `json:"delta_rating,omitempty"`
	DeltaDeviation *float64   `json:"delta_deviation,omitempty"`
	Reason         string     `json:"reason"`
}

func (ChangeStanding) Kind() PayloadKind          { return PayloadKindChangeStanding }
func (c ChangeStanding) Participants() []PlayerID { return c.Victims }
func (ChangeStanding) isPayload()                 {}
