package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/SushanthKalagi/EcommerceApplication/internal/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	ActionProductCreated = "product_created"
	ActionProductUpdated = "product_updated"
	ActionProductDeleted = "product_deleted"
)

// ProductEvent is the payload pushed to websocket clients whenever the
// catalog changes.
type ProductEvent struct {
	Action  string         `json:"action"`
	Product *model.Product `json:"product,omitempty"`
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
}

type Hub struct {
	clients    map[*websocket.Conn]client
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]client),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
	}
}

// Publish queues a catalog event for broadcast. The send is non-blocking
// so a slow or absent hub never stalls a catalog write.
func (h *Hub) Publish(event ProductEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = client{id: uuid.New(), conn: conn}
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn, c := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("WS client %s dropped: %v", c.id, err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
