package models

import "errors"

// Common errors
var (
	ErrRoomNotFound = errors.New("room not found")
)

// InvalidDrawMessage is the one user-visible error text on the wire.
// Malformed operations and unknown rooms on draw_operation are deliberately
// not distinguished to the client.
const InvalidDrawMessage = "Invalid room or operation"
