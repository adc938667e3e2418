package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Notification is a toast pushed to its owner: booking confirmations,
// study group joins and session reminders.
type Notification struct {
	UserID      uuid.UUID `json:"-"`
	Kind        string    `json:"kind"`
	Message     string    `json:"message"`
	Description string    `json:"description,omitempty"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Notify = make(chan *Notification, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case note := <-Notify:
			clientsMu.RLock()
			conn, ok := clients[note.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(note); err != nil {
				log.Printf("Error sending notification to client %s: %v", note.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, note.UserID)
				clientsMu.Unlock()
			}
		}
	}
}

// Push queues a notification without blocking the caller; a user with
// no open socket simply misses the toast.
func Push(note *Notification) {
	select {
	case Notify <- note:
	default:
		log.Printf("Notification channel full, dropping toast for %s", note.UserID)
	}
}
