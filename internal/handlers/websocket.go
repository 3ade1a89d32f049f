package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"agora/internal/database"
	"agora/internal/middleware"
	ws "agora/internal/websocket"
)

// WebSocketHandler upgrades authenticated requests into live room
// feeds.
type WebSocketHandler struct {
	repo     database.Repository
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(repo database.Repository, hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		repo: repo,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origins once the frontend host is fixed
				return true
			},
		},
	}
}

// RoomFeed subscribes the connection to one room's event stream.
func (h *WebSocketHandler) RoomFeed(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	roomID, okID := paramID(c, "id")
	if !okID {
		return
	}

	if _, err := h.repo.GetRoom(roomID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.hub, conn, userID, roomID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
