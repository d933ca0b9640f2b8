package models

// GameID is the dense identifier of a submitted game
type GameID int64

// GameResult is the outcome of a finished game
type GameResult struct {
	// GameID is the league game number
	GameID GameID `json:"game_id"`

	// Ranking lists participants in placement order, winner first
	Ranking []PlayerID `json:"ranking"`

	// DurationSeconds is the time given for the game before overtime
	DurationSeconds uint32 `json:"duration_seconds"`
}

// Kind implements Payload
func (GameResult) Kind() PayloadKind { return PayloadKindGameResult }

// Participants implements Payload
func (g GameResult) Participants() []PlayerID { return g.Ranking }

func (GameResult) isPayload() {}
