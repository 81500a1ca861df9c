package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishveshmodcoicar/join-whiteboard/db"
	"github.com/vishveshmodcoicar/join-whiteboard/models"
)

// standardResponse sends a consistent JSON response
func standardResponse(c *gin.Context, code int, status string, data interface{}, err string) {
	response := gin.H{"status": status}

	if data != nil {
		response["data"] = data
	}

	if err != "" {
		response["error"] = err
	}

	c.JSON(code, response)
}

// RoomHandler serves read-only room information over HTTP. All mutation
// goes through the websocket session; these endpoints only observe.
type RoomHandler struct {
	store *db.Store
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(store *db.Store) *RoomHandler {
	return &RoomHandler{
		store: store,
	}
}

// GetRoom returns a room's member list and history depth
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID := c.Param("id")

	room, exists := h.store.GetRoom(roomID)
	if !exists {
		standardResponse(c, http.StatusNotFound, "error", nil, models.ErrRoomNotFound.Error())
		return
	}

	standardResponse(c, http.StatusOK, "ok", gin.H{
		"room":       room.ID,
		"users":      room.Usernames(),
		"operations": room.OpCount(),
		"redoDepth":  room.RedoCount(),
	}, "")
}
