package ws

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/repository"
	"github.com/Azimiwizard/App-1/utils"
)

// StatusEvent is what subscribers receive on a transition. At carries
// the emitting server's clock so clients can discard out-of-order
// deliveries; the transport itself guarantees nothing about ordering.
type StatusEvent struct {
	Event   string             `json:"event"`
	OrderID uint               `json:"order_id"`
	Status  entity.OrderStatus `json:"status"`
	At      time.Time          `json:"at"`
}

// Hub fans order-status events out to the sockets subscribed to each
// order. Delivery is fire-and-forget: no acks, no backlog; a client that
// is offline during a transition must re-fetch the order.
type Hub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> subscribers
	broadcast  chan StatusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orderRepo  *repository.OrderRepository
}

type subscription struct {
	conn    *websocket.Conn
	orderID uint
}

func NewHub(orderRepo *repository.OrderRepository) *Hub {
	return &Hub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orderRepo:  orderRepo,
	}
}

// Broadcast hands an event to the local fan-out loop.
func (h *Hub) Broadcast(ev StatusEvent) {
	h.broadcast <- ev
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.orderID] == nil {
				h.clients[sub.orderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.orderID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.orderID][sub.conn]; ok {
				delete(h.clients[sub.orderID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes the caller to one order's status stream.
// Route: GET /ws/orders/:id — owner or admin only.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	orderID := uint(id64)

	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	order, err := h.orderRepo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}
	if order.UserID != ident.UserID && !ident.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, orderID: orderID}
	h.register <- sub

	// Join ack with the current status so the client starts from truth.
	_ = conn.WriteJSON(StatusEvent{
		Event: "order_joined", OrderID: orderID, Status: order.Status, At: time.Now(),
	})

	go h.listen(sub)
}

// listen drains the socket so pings and closes are noticed. Clients have
// nothing to say on this channel.
func (h *Hub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
