package league

// LeagueError is a custom error type for league-related errors
type LeagueError string

// Error implements the error interface
func (e LeagueError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotEnoughParticipants LeagueError = "a game needs at least two participants"
	ErrDuplicateParticipant  LeagueError = "same player given twice, each player has exactly one placement"
	ErrUnknownPlayer         LeagueError = "player is not registered"
	ErrSubmitterNotInGame    LeagueError = "you must be a party to a game to log it"
	ErrNotModerator          LeagueError = "must be league moderator to do this"
	ErrInvalidHandle         LeagueError = "handle must be 1 to 32 characters of a-z, 0-9, _ or ."
	ErrNotAGame              LeagueError = "event does not record a game"
	ErrNoVictims             LeagueError = "at least one player must be affected"
	ErrEmptyChange           LeagueError = "a standing change needs a rating or deviation delta"
	ErrAlreadyBlacklisted    LeagueError = "player is already blacklisted"
	ErrNotBlacklisted        LeagueError = "player is not blacklisted"
	ErrNilConfig             LeagueError = "config cannot be nil"
	ErrNilLedgerRepo         LeagueError = "ledger repository cannot be nil"
	ErrNilPlayerRepo         LeagueError = "player repository cannot be nil"
	ErrNilProjector          LeagueError = "projector cannot be nil"
	ErrNilIntegrityChecker   LeagueError = "integrity checker cannot be nil"
	ErrNilClock              LeagueError = "clock cannot be nil"
	ErrNilUUIDGenerator      LeagueError = "UUID generator cannot be nil"
)
