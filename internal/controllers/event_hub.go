package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	logrus "github.com/sirupsen/logrus"

	"trucker_profit/internal/middleware"
	"trucker_profit/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is handled at the HTTP layer
	},
}

// TripEvent is pushed to connected owner dashboards when a trip changes, so
// an open dashboard can refresh without polling.
type TripEvent struct {
	Type       string            `json:"type"` // "trip_completed" or "expense_added"
	TripID     uint              `json:"trip_id"`
	TripNumber string            `json:"trip_number"`
	Status     models.TripStatus `json:"status"`
	At         time.Time         `json:"at"`
}

// EventHub fans trip events out to connected dashboard clients. Delivery is
// best-effort: a client that cannot be written to is dropped.
type EventHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

var dashboardHub = &EventHub{clients: make(map[*websocket.Conn]bool)}

func (h *EventHub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	logrus.Info("Dashboard client connected")
}

func (h *EventHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

// Publish sends the event to every connected dashboard.
func (h *EventHub) Publish(ev TripEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			logrus.WithError(err).Warn("Dropping unresponsive dashboard client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// DashboardWebSocket upgrades an owner connection onto the event hub.
// Browsers cannot set headers on a websocket dial, so the JWT arrives as a
// query parameter instead of the usual Authorization header.
func DashboardWebSocket(c *gin.Context) {
	token, err := middleware.ValidateToken(c.Query("token"))
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return
	}
	roleClaim, _ := claims["role"].(string)
	if role, valid := models.ParseRole(roleClaim); !valid || role != models.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Owner role required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Websocket upgrade failed")
		return
	}

	dashboardHub.register(conn)

	// Read loop only to detect disconnects; clients never send payloads.
	go func() {
		defer dashboardHub.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
