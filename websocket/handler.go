package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsHandler upgrades an authed request to a websocket subscribed to
// the gamification event feed. Auth middleware runs before this, so
// userID is already in the context.
func EventsHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	client := &EventClient{
		Conn:      conn,
		SessionID: uuid.NewString(),
		UserID:    userID.(primitive.ObjectID).Hex(),
	}
	RegisterEventClient(client)

	// Reader loop only watches for close; the feed is one-way.
	go func() {
		defer UnregisterEventClient(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
