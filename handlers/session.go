package handlers

import (
	"encoding/json"
	"log"

	"github.com/vishveshmodcoicar/join-whiteboard/db"
	"github.com/vishveshmodcoicar/join-whiteboard/models"
)

// SessionHandler binds inbound transport events to room state: join, leave,
// disconnect, draw, cursor moves, undo, redo, clear.
type SessionHandler struct {
	store *db.Store
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(store *db.Store) *SessionHandler {
	return &SessionHandler{
		store: store,
	}
}

// client is one live connection: its identity plus its outbound side.
type client struct {
	id   string
	conn models.Sender
}

// dispatch routes one decoded envelope to its event handler. Payloads that
// fail to decode are dropped; only draw_operation surfaces errors to the
// client, and that path reports them itself.
func (h *SessionHandler) dispatch(cl *client, env models.Envelope) {
	switch env.Event {
	case models.EventJoinRoom:
		var p models.JoinPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			log.Printf("join_room from %s: %v", cl.id, err)
			return
		}
		h.handleJoin(cl, p)
	case models.EventLeaveRoom:
		var p models.RoomPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			log.Printf("leave_room from %s: %v", cl.id, err)
			return
		}
		h.handleLeave(cl, p.Room)
	case models.EventDraw:
		var p models.DrawPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			h.rejectDraw(cl)
			return
		}
		h.handleDraw(cl, p)
	case models.EventCursor:
		var p models.CursorPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			log.Printf("cursor_update from %s: %v", cl.id, err)
			return
		}
		h.handleCursor(cl, p)
	case models.EventUndo:
		var p models.RoomPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return
		}
		h.handleUndo(p.Room)
	case models.EventRedo:
		var p models.RoomPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return
		}
		h.handleRedo(p.Room)
	case models.EventClearCanvas:
		var p models.RoomPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return
		}
		h.handleClear(p.Room)
	default:
		log.Printf("unknown event %q from %s", env.Event, cl.id)
	}
}

// handleJoin adds the connection to the room, creating the room if the key
// is unknown. Everyone in the room gets the new user list; the joiner alone
// gets the current canvas snapshot.
func (h *SessionHandler) handleJoin(cl *client, p models.JoinPayload) {
	member := &models.Member{
		ID:       cl.id,
		Username: p.Username,
		Conn:     cl.conn,
	}

	// A teardown emptying the room can retire it between the registry
	// lookup and the membership add; when the join is refused, look the
	// key up again for a fresh room.
	var room *models.Room
	var users []string
	for {
		room = h.store.EnsureRoom(p.Room)
		var ok bool
		if users, ok = room.Join(member); ok {
			break
		}
	}
	log.Printf("%s (%s) joined room %s", p.Username, cl.id, p.Room)

	broadcast(room, "", models.EventUserList, models.UserListPayload{Users: users})

	if err := cl.conn.Send(models.EventCanvasState, models.CanvasStatePayload{Canvas: room.Snapshot()}); err != nil {
		log.Printf("canvas_state to %s failed: %v", cl.id, err)
	}
}

// handleLeave removes the connection from the room, tearing the room down
// if it is now empty. Unknown room or non-member is a silent no-op.
func (h *SessionHandler) handleLeave(cl *client, roomID string) {
	room, exists := h.store.GetRoom(roomID)
	if !exists {
		return
	}

	removed, users, empty := room.Leave(cl.id)
	if !removed {
		return
	}
	log.Printf("%s left room %s", cl.id, roomID)

	if empty {
		h.store.RemoveIfEmpty(roomID)
		return
	}
	broadcast(room, "", models.EventUserList, models.UserListPayload{Users: users})
}

// handleDisconnect removes the connection from every room it belongs to,
// not just one, and tears down any room it leaves empty.
func (h *SessionHandler) handleDisconnect(cl *client) {
	for _, room := range h.store.Rooms() {
		removed, users, empty := room.Leave(cl.id)
		if !removed {
			continue
		}
		if empty {
			h.store.RemoveIfEmpty(room.ID)
			continue
		}
		broadcast(room, "", models.EventUserList, models.UserListPayload{Users: users})
	}
	log.Printf("connection %s disconnected", cl.id)
}

// handleDraw validates and appends a drawing operation, then relays the raw
// operation to the rest of the room in arrival order. An unknown room and a
// malformed operation produce the same error response.
func (h *SessionHandler) handleDraw(cl *client, p models.DrawPayload) {
	room, exists := h.store.GetRoom(p.Room)
	if !exists || p.Operation == nil || !p.Operation.Valid() {
		h.rejectDraw(cl)
		return
	}

	room.AppendOperation(p.Operation)

	broadcast(room, cl.id, models.EventDraw, p.Operation)
}

// rejectDraw reports a failed draw_operation to its sender only.
func (h *SessionHandler) rejectDraw(cl *client) {
	if err := cl.conn.Send(models.EventError, models.ErrorPayload{Message: models.InvalidDrawMessage}); err != nil {
		log.Printf("error event to %s failed: %v", cl.id, err)
	}
}

// handleCursor records the member's cursor position and relays it to the
// rest of the room. Unknown room or non-member is a silent no-op.
func (h *SessionHandler) handleCursor(cl *client, p models.CursorPayload) {
	room, exists := h.store.GetRoom(p.Room)
	if !exists {
		return
	}

	username, ok := room.UpdateCursor(cl.id, p.Position)
	if !ok {
		return
	}

	broadcast(room, cl.id, models.EventCursor, models.CursorBroadcast{
		User:     username,
		Position: p.Position,
	})
}

// handleUndo moves the room's newest operation to the redo buffer and sends
// the resulting snapshot to the whole room. Empty log or unknown room emits
// nothing.
func (h *SessionHandler) handleUndo(roomID string) {
	room, exists := h.store.GetRoom(roomID)
	if !exists {
		return
	}

	canvas, ok := room.Undo()
	if !ok {
		return
	}
	broadcast(room, "", models.EventCanvasState, models.CanvasStatePayload{Canvas: canvas})
}

// handleRedo restores the most recently undone operation and sends the
// resulting snapshot to the whole room. Empty redo buffer or unknown room
// emits nothing.
func (h *SessionHandler) handleRedo(roomID string) {
	room, exists := h.store.GetRoom(roomID)
	if !exists {
		return
	}

	canvas, ok := room.Redo()
	if !ok {
		return
	}
	broadcast(room, "", models.EventCanvasState, models.CanvasStatePayload{Canvas: canvas})
}

// handleClear discards the room's log and redo buffer and tells the whole
// room the canvas is empty. Unknown room is a silent no-op.
func (h *SessionHandler) handleClear(roomID string) {
	room, exists := h.store.GetRoom(roomID)
	if !exists {
		return
	}

	room.ClearCanvas()
	broadcast(room, "", models.EventCanvasState, models.CanvasStatePayload{Canvas: []models.Operation{}})
}
