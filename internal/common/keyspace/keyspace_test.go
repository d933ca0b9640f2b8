package keyspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespacesDoNotCollide(t *testing.T) {
	bare := New("")
	a := New("a")
	b := New(":b:")

	assert.Equal(t, "ewar:event:3", bare.Event(3))
	assert.Equal(t, "ewar:a:event:3", a.Event(3))
	assert.Equal(t, "ewar:b:checkpoint", b.Checkpoint())
	assert.NotEqual(t, a.Player(1), b.Player(1))
}

func TestHandleIsCaseInsensitive(t *testing.T) {
	k := New("league")
	assert.Equal(t, k.Handle("ren"), k.Handle("REN"))
	assert.Equal(t, "ewar:league:external:discord:42", k.ExternalID("discord:42"))
}

func TestPlayerKeysShareAPrefix(t *testing.T) {
	k := New("league")
	assert.Equal(t, "ewar:league:player:7", k.Player(7))
	assert.Equal(t, k.PlayerPrefix()+"7", k.Player(7))
	assert.NotEqual(t, k.Games(), k.GameLog())
}
