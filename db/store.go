package db

import (
	"log"
	"sync"

	"github.com/vishveshmodcoicar/join-whiteboard/models"
)

// Store is the in-memory registry of live rooms. Rooms are created lazily
// on first join and discarded the moment their last member leaves; nothing
// survives a process restart.
type Store struct {
	rooms map[string]*models.Room
	mutex sync.RWMutex
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*models.Room),
	}
}

// EnsureRoom returns the room for the given key, creating it if unknown.
func (s *Store) EnsureRoom(roomID string) *models.Room {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if room, exists := s.rooms[roomID]; exists {
		return room
	}

	room := models.NewRoom(roomID)
	s.rooms[roomID] = room
	log.Printf("room %s created", roomID)
	return room
}

// GetRoom returns a room by key.
func (s *Store) GetRoom(roomID string) (*models.Room, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	room, exists := s.rooms[roomID]
	return room, exists
}

// RemoveIfEmpty discards the room if it has no members, and reports
// whether it was removed. The room is retired under its own lock before
// the key is dropped, so a join holding a stale reference is refused
// rather than stranded in an unregistered room.
func (s *Store) RemoveIfEmpty(roomID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	room, exists := s.rooms[roomID]
	if !exists || !room.RetireIfEmpty() {
		return false
	}

	delete(s.rooms, roomID)
	log.Printf("room %s removed (empty)", roomID)
	return true
}

// Rooms returns a snapshot of all live rooms. Disconnect handling sweeps
// this to find every room a connection belongs to.
func (s *Store) Rooms() []*models.Room {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rooms := make([]*models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// Len returns the number of live rooms.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.rooms)
}
