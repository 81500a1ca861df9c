package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceJoinOrder(t *testing.T) {
	p := NewPresence()
	p.Add(&Member{ID: "c1", Username: "alice"})
	p.Add(&Member{ID: "c2", Username: "bob"})
	p.Add(&Member{ID: "c3", Username: "carol"})

	assert.Equal(t, []string{"alice", "bob", "carol"}, p.Usernames())
	assert.Equal(t, 3, p.Len())

	assert.True(t, p.Remove("c2"))
	assert.Equal(t, []string{"alice", "carol"}, p.Usernames())

	assert.False(t, p.Remove("c2"))
}

func TestPresenceReAddKeepsPosition(t *testing.T) {
	p := NewPresence()
	p.Add(&Member{ID: "c1", Username: "alice"})
	p.Add(&Member{ID: "c2", Username: "bob"})

	p.SetCursor("c1", []float64{3, 4})
	p.Add(&Member{ID: "c1", Username: "alicia"})

	assert.Equal(t, []string{"alicia", "bob"}, p.Usernames())
	assert.Equal(t, 2, p.Len())
	// Re-adding replaces the record wholesale, cursor included.
	assert.Nil(t, p.Members()[0].Cursor)
}

func TestPresenceCursor(t *testing.T) {
	p := NewPresence()
	p.Add(&Member{ID: "c1", Username: "alice"})

	assert.Nil(t, p.Members()[0].Cursor)
	assert.True(t, p.SetCursor("c1", []float64{10, 20}))
	assert.Equal(t, []float64{10, 20}, p.Members()[0].Cursor)

	assert.False(t, p.SetCursor("ghost", []float64{0, 0}))
}

func TestPresenceUsernameOf(t *testing.T) {
	p := NewPresence()
	p.Add(&Member{ID: "c1", Username: "alice"})

	assert.Equal(t, "alice", p.UsernameOf("c1"))
	assert.Equal(t, "", p.UsernameOf("ghost"))
	assert.True(t, p.Has("c1"))
	assert.False(t, p.Has("ghost"))
}
