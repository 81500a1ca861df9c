package models

// Member is one connected user of a room.
type Member struct {
	ID       string
	Username string
	Cursor   []float64 // nil until the first cursor_update
	Conn     Sender
}

// Presence tracks which connections are in a room, in join order. Like
// OpLog it relies on the owning Room for serialization.
type Presence struct {
	members map[string]*Member
	order   []string
}

// NewPresence creates an empty presence set.
func NewPresence() *Presence {
	return &Presence{
		members: make(map[string]*Member),
	}
}

// Add registers a member. Re-adding an existing identity replaces its
// record but keeps its original position in the join order.
func (p *Presence) Add(m *Member) {
	if _, exists := p.members[m.ID]; !exists {
		p.order = append(p.order, m.ID)
	}
	p.members[m.ID] = m
}

// Remove drops a member and reports whether it was present.
func (p *Presence) Remove(id string) bool {
	if _, exists := p.members[id]; !exists {
		return false
	}
	delete(p.members, id)
	for i, other := range p.order {
		if other == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// SetCursor records a member's last known cursor position and reports
// whether the member exists.
func (p *Presence) SetCursor(id string, position []float64) bool {
	m, exists := p.members[id]
	if !exists {
		return false
	}
	m.Cursor = position
	return true
}

// Usernames returns the display names of all members in join order.
func (p *Presence) Usernames() []string {
	names := make([]string, 0, len(p.order))
	for _, id := range p.order {
		names = append(names, p.members[id].Username)
	}
	return names
}

// UsernameOf returns a member's display name, or "" if absent.
func (p *Presence) UsernameOf(id string) string {
	if m, exists := p.members[id]; exists {
		return m.Username
	}
	return ""
}

// Has reports whether the identity is a member.
func (p *Presence) Has(id string) bool {
	_, exists := p.members[id]
	return exists
}

// Members returns all members in join order.
func (p *Presence) Members() []*Member {
	out := make([]*Member, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.members[id])
	}
	return out
}

// Len returns the member count.
func (p *Presence) Len() int { return len(p.members) }
