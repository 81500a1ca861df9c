package models

// Inbound event names (client -> server)
const (
	EventJoinRoom    = "join_room"
	EventLeaveRoom   = "leave_room"
	EventDraw        = "draw_operation"
	EventCursor      = "cursor_update"
	EventUndo        = "undo"
	EventRedo        = "redo"
	EventClearCanvas = "clear_canvas"
)

// Outbound event names (server -> client(s)).
// EventDraw and EventCursor are reused on the outbound side.
const (
	EventUserList    = "user_list"
	EventCanvasState = "canvas_state"
	EventError       = "error"
)

// Operation kinds
const (
	KindLine   = "line"
	KindRect   = "rect"
	KindCircle = "circle"
	KindText   = "text"
	KindImage  = "image"
)

// Operation field keys. The wire discriminator is "type".
const (
	FieldKind      = "type"
	FieldTimestamp = "timestamp"
)
