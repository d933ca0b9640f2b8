// Package keyspace names every Redis key used by the league so that
// instances with different namespaces can share one server.
package keyspace

import (
	"fmt"
	"strings"
)

const root = "ewar"

// Keyspace builds namespaced Redis keys
type Keyspace struct {
	prefix string
}

// New creates a keyspace. An empty namespace uses the bare root prefix.
func New(namespace string) *Keyspace {
	namespace = strings.Trim(namespace, ": ")
	if namespace == "" {
		return &Keyspace{prefix: root + ":"}
	}
	return &Keyspace{prefix: fmt.Sprintf("%s:%s:", root, namespace)}
}

// Prefix returns the prefix shared by every key of this keyspace
func (k *Keyspace) Prefix() string {
	return k.prefix
}

// Event is the hash holding one standing event
func (k *Keyspace) Event(id uint32) string {
	return fmt.Sprintf("%sevent:%d", k.prefix, id)
}

// Events is the sorted set of every stored event id
func (k *Keyspace) Events() string {
	return k.prefix + "events"
}

// Undecided is the sorted set of event ids awaiting a decision
func (k *Keyspace) Undecided() string {
	return k.prefix + "events:undecided"
}

// Games maps game ids to the event that recorded them
func (k *Keyspace) Games() string {
	return k.prefix + "games"
}

// GameLog is the sorted set of game events scored by game id
func (k *Keyspace) GameLog() string {
	return k.prefix + "games:log"
}

// PlayerEvents is the sorted set of events that mention a player
func (k *Keyspace) PlayerEvents(playerID int32) string {
	return fmt.Sprintf("%splayer_events:%d", k.prefix, playerID)
}

// Checkpoint is the ledger bookkeeping hash
func (k *Keyspace) Checkpoint() string {
	return k.prefix + "checkpoint"
}

// Blacklist is the set of players hidden from the leaderboard
func (k *Keyspace) Blacklist() string {
	return k.prefix + "blacklist"
}

// Audit is the capped list of administrative operations
func (k *Keyspace) Audit() string {
	return k.prefix + "audit"
}

// Player is the projected state of one player
func (k *Keyspace) Player(id int32) string {
	return fmt.Sprintf("%s%d", k.PlayerPrefix(), id)
}

// PlayerPrefix is shared by every player key, for scripts that visit them all
func (k *Keyspace) PlayerPrefix() string {
	return k.prefix + "player:"
}

// Players is the sorted set of every projected player id
func (k *Keyspace) Players() string {
	return k.prefix + "players"
}

// Leaderboard orders players by leaderboard value
func (k *Keyspace) Leaderboard() string {
	return k.prefix + "leaderboard"
}

// LastPlayed orders players by the unix time of their last game
func (k *Keyspace) LastPlayed() string {
	return k.prefix + "last_played"
}

// Registry maps claimed player ids to their handle
func (k *Keyspace) Registry() string {
	return k.prefix + "registry"
}

// Handle claims a lower-case display name for a player
func (k *Keyspace) Handle(handle string) string {
	return k.prefix + "handle:" + strings.ToLower(handle)
}

// ExternalID claims a chat-platform account for a player
func (k *Keyspace) ExternalID(externalID string) string {
	return k.prefix + "external:" + externalID
}
