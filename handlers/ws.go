package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vishveshmodcoicar/join-whiteboard/models"
)

// Package-level WebSocket upgrader
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// wsSender is the outbound half of one websocket connection. The mutex
// keeps concurrent room broadcasts from interleaving writes on the wire.
type wsSender struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// outEnvelope mirrors models.Envelope for the write path, where the
// payload is a value rather than raw JSON.
type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func (s *wsSender) Send(event string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(outEnvelope{Event: event, Data: data})
}

func (s *wsSender) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.PingMessage, []byte{})
}

// WebSocket upgrades the connection, assigns it a fresh identity, and
// pumps inbound envelopes into the event dispatch until the peer goes
// away, at which point the disconnect sweep runs.
func (h *SessionHandler) WebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sender := &wsSender{conn: conn}
	cl := &client{id: uuid.New().String(), conn: sender}
	log.Printf("connection %s established", cl.id)

	// Keep-alive pings
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sender.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, buf, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var env models.Envelope
		if err := json.Unmarshal(buf, &env); err != nil {
			log.Printf("bad envelope from %s: %v", cl.id, err)
			continue
		}

		h.dispatch(cl, env)
	}

	h.handleDisconnect(cl)
}
