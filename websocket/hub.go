package websocket

import (
	"log"
	"sync"

	"fitquest/models"

	"github.com/gorilla/websocket"
)

// EventClient represents a client connected for live gamification updates
type EventClient struct {
	Conn      *websocket.Conn
	SessionID string
	UserID    string
	writeMu   sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (ec *EventClient) SafeWriteJSON(v interface{}) error {
	ec.writeMu.Lock()
	defer ec.writeMu.Unlock()
	return ec.Conn.WriteJSON(v)
}

// Global hub for broadcasting gamification events to all connected clients
var (
	eventClients = make(map[*EventClient]bool)
	eventMutex   sync.RWMutex
)

// RegisterEventClient registers a client for gamification updates
func RegisterEventClient(client *EventClient) {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	eventClients[client] = true
	log.Printf("Event client registered (session %s). Total clients: %d", client.SessionID, len(eventClients))
}

// UnregisterEventClient removes a client and closes its connection
func UnregisterEventClient(client *EventClient) {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	delete(eventClients, client)
	client.Conn.Close()
	log.Printf("Event client unregistered (session %s). Total clients: %d", client.SessionID, len(eventClients))
}

// BroadcastEvent broadcasts a gamification event to all connected clients
func BroadcastEvent(event models.GamificationEvent) {
	eventMutex.RLock()
	defer eventMutex.RUnlock()

	message := map[string]interface{}{
		"type":      event.Type,
		"userId":    event.UserID,
		"timestamp": event.Timestamp,
	}

	if event.BadgeName != "" {
		message["badgeName"] = event.BadgeName
	}
	if event.Points != 0 {
		message["points"] = event.Points
	}
	if event.Streak != 0 {
		message["streak"] = event.Streak
	}
	if event.Challenge != "" {
		message["challenge"] = event.Challenge
	}
	if event.Outcome != "" {
		message["outcome"] = event.Outcome
	}

	for client := range eventClients {
		if err := client.SafeWriteJSON(message); err != nil {
			log.Printf("Error broadcasting event to client: %v", err)
			// Remove client if write fails
			go UnregisterEventClient(client)
		}
	}
}
