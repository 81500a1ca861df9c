package handlers

import (
	"log"

	"github.com/vishveshmodcoicar/join-whiteboard/models"
)

// includeOrigin is the fanout policy per outbound event: whether the
// originating connection receives its own event back. Full-state events go
// to everyone; live relays skip the sender, who already holds that state
// locally. Fixed by policy, not client-configurable.
var includeOrigin = map[string]bool{
	models.EventUserList:    true,
	models.EventCanvasState: true,
	models.EventDraw:        false,
	models.EventCursor:      false,
}

// broadcast delivers an event to the room's current members per the
// includeOrigin policy. origin is the originating connection identity, or
// "" when the event has no originator. Delivery is fire-and-forget: a
// failed send is logged and does not affect the remaining members.
func broadcast(room *models.Room, origin string, event string, data any) {
	for _, m := range room.Members() {
		if m.ID == origin && !includeOrigin[event] {
			continue
		}
		if err := m.Conn.Send(event, data); err != nil {
			log.Printf("broadcast %s to %s in room %s failed: %v", event, m.ID, room.ID, err)
		}
	}
}
