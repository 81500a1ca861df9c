package models

import "encoding/json"

// Sender delivers one named event to a single connection. The websocket
// layer implements it; tests substitute an in-memory fake.
type Sender interface {
	Send(event string, data any) error
}

// Envelope is the wire framing for every event in both directions:
// an event name plus its payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound payloads

// JoinPayload is the data of a join_room event.
type JoinPayload struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

// RoomPayload is the data of leave_room, undo, redo and clear_canvas events.
type RoomPayload struct {
	Room string `json:"room"`
}

// DrawPayload is the data of a draw_operation event.
type DrawPayload struct {
	Room      string    `json:"room"`
	Operation Operation `json:"operation"`
}

// CursorPayload is the data of a cursor_update event.
type CursorPayload struct {
	Room     string    `json:"room"`
	Position []float64 `json:"position"`
}

// Outbound payloads

// UserListPayload carries a room's usernames in join order.
type UserListPayload struct {
	Users []string `json:"users"`
}

// CanvasStatePayload carries a timestamp-sorted snapshot of a room's log.
type CanvasStatePayload struct {
	Canvas []Operation `json:"canvas"`
}

// CursorBroadcast is the relayed form of a cursor_update.
type CursorBroadcast struct {
	User     string    `json:"user"`
	Position []float64 `json:"position"`
}

// ErrorPayload carries the free-text message of an error event.
type ErrorPayload struct {
	Message string `json:"message"`
}
