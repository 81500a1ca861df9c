package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/vishveshmodcoicar/join-whiteboard/db"
	"github.com/vishveshmodcoicar/join-whiteboard/handlers"
)

func main() {
	// Create a new Gin router
	router := gin.Default()

	// Create the room registry
	store := db.NewStore()

	sessionHandler := handlers.NewSessionHandler(store)
	roomHandler := handlers.NewRoomHandler(store)

	// WebSocket endpoint for the realtime session protocol
	router.GET("/ws", sessionHandler.WebSocket)

	// Read-only API
	api := router.Group("/api")
	{
		api.GET("/rooms/:id", roomHandler.GetRoom)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.String(200, "whiteboard backend is running")
	})

	// Serve the built frontend, falling back to index.html so client-side
	// routes resolve
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./static"
	}
	router.Static("/static", staticDir)
	router.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})

	addr := ":" + port()
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
