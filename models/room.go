package models

import "sync"

// Room is one isolated collaboration session: its member set and its
// operation history. The room's mutex is the serialization boundary for
// everything inside it. Presence and log mutations for one room never
// interleave, while distinct rooms proceed in parallel.
type Room struct {
	ID       string
	Mutex    sync.RWMutex
	presence *Presence
	log      *OpLog
	defunct  bool // retired from the registry; refuses joins
}

// NewRoom creates an empty room for the given key.
func NewRoom(id string) *Room {
	return &Room{
		ID:       id,
		presence: NewPresence(),
		log:      NewOpLog(),
	}
}

// Join adds a member and returns the resulting username list in join order.
// ok is false if the room has been retired from the registry in the
// meantime; the caller must look the key up again and retry.
func (r *Room) Join(m *Member) (users []string, ok bool) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.defunct {
		return nil, false
	}
	r.presence.Add(m)
	return r.presence.Usernames(), true
}

// RetireIfEmpty marks the room defunct if it has no members, so a join
// racing the teardown is refused instead of landing in an unregistered
// room. Reports whether the room was retired.
func (r *Room) RetireIfEmpty() bool {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.presence.Len() > 0 {
		return false
	}
	r.defunct = true
	return true
}

// Leave removes a member. It reports whether the member was present, the
// remaining username list, and whether the room is now empty.
func (r *Room) Leave(id string) (removed bool, users []string, empty bool) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if !r.presence.Remove(id) {
		return false, nil, r.presence.Len() == 0
	}
	return true, r.presence.Usernames(), r.presence.Len() == 0
}

// UpdateCursor records a member's cursor position and returns the member's
// username. ok is false if the identity is not a member.
func (r *Room) UpdateCursor(id string, position []float64) (username string, ok bool) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if !r.presence.SetCursor(id, position) {
		return "", false
	}
	return r.presence.UsernameOf(id), true
}

// AppendOperation stamps the operation with the current time if it has no
// timestamp and appends it to the log. The caller validates first.
func (r *Room) AppendOperation(op Operation) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if !op.HasTimestamp() {
		op.Stamp(Now())
	}
	r.log.Append(op)
}

// Undo moves the newest operation to the redo buffer. On success it returns
// the resulting snapshot; ok is false if the log was empty.
func (r *Room) Undo() (canvas []Operation, ok bool) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.log.Undo() == nil {
		return nil, false
	}
	return r.log.Snapshot(), true
}

// Redo restores the most recently undone operation. On success it returns
// the resulting snapshot; ok is false if the redo buffer was empty.
func (r *Room) Redo() (canvas []Operation, ok bool) {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	if r.log.Redo() == nil {
		return nil, false
	}
	return r.log.Snapshot(), true
}

// ClearCanvas empties the log and the redo buffer.
func (r *Room) ClearCanvas() {
	r.Mutex.Lock()
	defer r.Mutex.Unlock()

	r.log.Clear()
}

// Snapshot returns the timestamp-sorted copy of the room's log.
func (r *Room) Snapshot() []Operation {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.log.Snapshot()
}

// Members returns the current member set in join order.
func (r *Room) Members() []*Member {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.presence.Members()
}

// Usernames returns the current username list in join order.
func (r *Room) Usernames() []string {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.presence.Usernames()
}

// Has reports whether the identity is a member of the room.
func (r *Room) Has(id string) bool {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.presence.Has(id)
}

// Empty reports whether the room has no members.
func (r *Room) Empty() bool {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.presence.Len() == 0
}

// OpCount returns the log length.
func (r *Room) OpCount() int {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.log.Len()
}

// RedoCount returns the redo buffer length.
func (r *Room) RedoCount() int {
	r.Mutex.RLock()
	defer r.Mutex.RUnlock()

	return r.log.RedoLen()
}
